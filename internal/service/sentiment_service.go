package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"sentiment-dashboard/internal/dto"
	"sentiment-dashboard/internal/mapper"
	"sentiment-dashboard/internal/pkg/logger"
	"sentiment-dashboard/pkg/classifier"
	"sentiment-dashboard/pkg/dataset"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	// ErrEmptyText is a user-correctable input error: nothing to classify.
	ErrEmptyText = errors.New("please enter some text")
	// ErrUnexpectedOutput means the extractor or predictor returned a batch of
	// the wrong size.
	ErrUnexpectedOutput = errors.New("classifier returned an unexpected number of results")
)

const moduleName = "SENTIMENT"

var tracer = otel.Tracer("sentiment-service")

type ISentimentService interface {
	Predict(ctx context.Context, text string) (*dto.PredictionResponse, error)
	PredictBulk(ctx context.Context, column string) (*dataset.Table, error)
	Dataset() *dataset.Table
	ResultColumn() string
}

type sentimentService struct {
	extractor    classifier.FeatureExtractor
	predictor    classifier.Predictor
	data         *dataset.Table
	resultColumn string
	logger       logger.ILogger
}

func NewSentimentService(bundle *classifier.Bundle, data *dataset.Table, resultColumn string, log logger.ILogger) ISentimentService {
	return &sentimentService{
		extractor:    bundle.Extractor,
		predictor:    bundle.Predictor,
		data:         data,
		resultColumn: resultColumn,
		logger:       log,
	}
}

func (s *sentimentService) Dataset() *dataset.Table {
	return s.data
}

func (s *sentimentService) ResultColumn() string {
	return s.resultColumn
}

// Predict classifies one text. Whitespace-only input returns ErrEmptyText
// without touching the classifier.
func (s *sentimentService) Predict(ctx context.Context, text string) (*dto.PredictionResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	_, span := tracer.Start(ctx, "SentimentService.Predict")
	defer span.End()
	span.SetAttributes(attribute.Int("text.chars", utf8.RuneCountInString(text)))

	labels, err := s.classify([]string{text})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(moduleName, "prediction failed", map[string]interface{}{"error": err})
		return nil, err
	}

	res := mapper.ToPredictionResponse(labels[0])
	span.SetAttributes(attribute.String("sentiment.label", res.Label), attribute.String("sentiment.class", res.Class))
	details := map[string]interface{}{
		"label": res.Label,
		"class": res.Class,
		"chars": utf8.RuneCountInString(text),
	}
	if !res.Recognized {
		s.logger.Warn(moduleName, "model label outside the known label set, shown as negative", details)
	} else {
		s.logger.Info(moduleName, "prediction served", details)
	}
	return res, nil
}

// PredictBulk classifies every row of column in one batch and returns a copy
// of the dataset with the labels appended under ResultColumn.
func (s *sentimentService) PredictBulk(ctx context.Context, column string) (*dataset.Table, error) {
	_, span := tracer.Start(ctx, "SentimentService.PredictBulk")
	defer span.End()
	span.SetAttributes(attribute.String("dataset.column", column), attribute.Int("dataset.rows", s.data.NumRows()))

	fail := func(err error) (*dataset.Table, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(moduleName, "bulk prediction failed", map[string]interface{}{"column": column, "error": err})
		return nil, err
	}

	start := time.Now()
	texts, err := s.data.Column(column)
	if err != nil {
		return fail(err)
	}
	labels, err := s.classify(texts)
	if err != nil {
		return fail(err)
	}
	result, err := s.data.WithColumn(s.resultColumn, labels)
	if err != nil {
		return fail(err)
	}

	s.logger.Info(moduleName, "bulk prediction completed", map[string]interface{}{
		"column":      column,
		"rows":        result.NumRows(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return result, nil
}

func (s *sentimentService) classify(texts []string) ([]string, error) {
	vectors, err := s.extractor.Transform(texts)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: %d vectors for %d texts", ErrUnexpectedOutput, len(vectors), len(texts))
	}
	labels, err := s.predictor.Predict(vectors)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if len(labels) != len(vectors) {
		return nil, fmt.Errorf("%w: %d labels for %d vectors", ErrUnexpectedOutput, len(labels), len(vectors))
	}
	return labels, nil
}

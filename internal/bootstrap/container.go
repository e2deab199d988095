package bootstrap

import (
	"fmt"

	"sentiment-dashboard/internal/config"
	"sentiment-dashboard/internal/controller"
	"sentiment-dashboard/internal/dashboard"
	"sentiment-dashboard/internal/pkg/logger"
	"sentiment-dashboard/internal/pkg/serverutils"
	"sentiment-dashboard/internal/repository/memory"
	"sentiment-dashboard/internal/service"
	"sentiment-dashboard/pkg/classifier"
	"sentiment-dashboard/pkg/dataset"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type Container struct {
	// Controllers
	DashboardController controller.IDashboardController
	SentimentController controller.ISentimentController

	// Shared by the HTTP server and the batch CLI
	SentimentService service.ISentimentService
	Sessions         *memory.SessionRepository
	StatusRules      []serverutils.StatusRule
	Logger           logger.ILogger
}

// Resources are the immutable handles every interaction works from.
type Resources struct {
	Bundle  *classifier.Bundle
	Dataset *dataset.Table
}

// LoadResources reads the classifier artifacts and the dataset once, in
// parallel. Any failure is fatal for the caller; nothing is served half
// loaded.
func LoadResources(cfg *config.Config, log logger.ILogger) (*Resources, error) {
	artifacts := classifier.NewLoader(classifier.ArtifactPaths{
		Vectorizer: cfg.Artifacts.VectorizerPath,
		Model:      cfg.Artifacts.ModelPath,
	})
	data := dataset.NewLoader(cfg.Artifacts.DatasetPath)

	var res Resources
	var g errgroup.Group
	g.Go(func() error {
		b, err := artifacts.Load()
		if err != nil {
			return fmt.Errorf("load classifier: %w", err)
		}
		res.Bundle = b
		return nil
	})
	g.Go(func() error {
		t, err := data.Load()
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		res.Dataset = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("BOOTSTRAP", "resources loaded", map[string]interface{}{
		"vectorizer":    cfg.Artifacts.VectorizerPath,
		"model":         cfg.Artifacts.ModelPath,
		"classes":       res.Bundle.Predictor.Classes(),
		"feature_width": res.Bundle.Extractor.Width(),
		"dataset":       cfg.Artifacts.DatasetPath,
		"rows":          res.Dataset.NumRows(),
		"columns":       res.Dataset.NumCols(),
	})
	return &res, nil
}

func StatusRules() []serverutils.StatusRule {
	return []serverutils.StatusRule{
		{Err: service.ErrEmptyText, Status: fiber.StatusUnprocessableEntity},
		{Err: dataset.ErrColumnNotFound, Status: fiber.StatusNotFound},
	}
}

func NewContainer(cfg *config.Config, res *Resources, log logger.ILogger) (*Container, error) {
	// 1. Services
	sentimentService := service.NewSentimentService(res.Bundle, res.Dataset, cfg.Dashboard.ResultColumn, log)

	// 2. Page plumbing
	renderer, err := dashboard.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}
	dispatcher := dashboard.NewDispatcher(sentimentService, dashboard.Options{
		PreviewRows:       cfg.Dashboard.PreviewRows,
		ResultPreviewRows: cfg.Dashboard.ResultPreviewRows,
	})
	sessions := memory.NewSessionRepository(cfg.Dashboard.SessionTTL)
	rules := StatusRules()

	// 3. Controllers
	return &Container{
		DashboardController: controller.NewDashboardController(dispatcher, renderer, sessions, cfg.Dashboard.SessionTTL, rules, log),
		SentimentController: controller.NewSentimentController(sentimentService, cfg.Dashboard.PreviewRows),
		SentimentService:    sentimentService,
		Sessions:            sessions,
		StatusRules:         rules,
		Logger:              log,
	}, nil
}

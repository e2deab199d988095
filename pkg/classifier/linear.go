package classifier

import (
	"fmt"
	"strings"
)

const (
	KindLinearSVC          = "linear_svc"
	KindLogisticRegression = "logistic_regression"
	KindSGD                = "sgd"
)

// LinearModelConfig is the exported state of a fitted linear classifier.
type LinearModelConfig struct {
	Kind      string      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Classes   []string    `json:"classes" yaml:"classes"`
	Coef      [][]float64 `json:"coef" yaml:"coef"`
	Intercept []float64   `json:"intercept" yaml:"intercept"`
}

// LinearModel predicts the class with the highest decision score.
type LinearModel struct {
	kind      string
	classes   []string
	coef      [][]float64
	intercept []float64
	width     int
}

var _ Predictor = (*LinearModel)(nil)

func NewLinearModel(cfg LinearModelConfig) (*LinearModel, error) {
	kind := strings.ToLower(strings.TrimSpace(cfg.Kind))
	switch kind {
	case "":
		kind = KindLinearSVC
	case KindLinearSVC, KindLogisticRegression, KindSGD:
	default:
		return nil, fmt.Errorf("%w: unsupported model kind %q", ErrInvalidArtifact, cfg.Kind)
	}
	if len(cfg.Classes) < 2 {
		return nil, fmt.Errorf("%w: need at least two classes, got %d", ErrInvalidArtifact, len(cfg.Classes))
	}
	if len(cfg.Coef) == 0 {
		return nil, fmt.Errorf("%w: empty coef", ErrInvalidArtifact)
	}
	binary := len(cfg.Classes) == 2 && len(cfg.Coef) == 1
	if !binary && len(cfg.Coef) != len(cfg.Classes) {
		return nil, fmt.Errorf("%w: %d coef rows for %d classes", ErrInvalidArtifact, len(cfg.Coef), len(cfg.Classes))
	}
	if len(cfg.Intercept) != len(cfg.Coef) {
		return nil, fmt.Errorf("%w: %d intercepts for %d coef rows", ErrInvalidArtifact, len(cfg.Intercept), len(cfg.Coef))
	}
	width := len(cfg.Coef[0])
	for i, row := range cfg.Coef {
		if len(row) != width {
			return nil, fmt.Errorf("%w: coef row %d has width %d, want %d", ErrInvalidArtifact, i, len(row), width)
		}
	}
	return &LinearModel{
		kind:      kind,
		classes:   cfg.Classes,
		coef:      cfg.Coef,
		intercept: cfg.Intercept,
		width:     width,
	}, nil
}

func (m *LinearModel) Kind() string {
	return m.kind
}

func (m *LinearModel) Width() int {
	return m.width
}

// Classes returns a copy of the label set in model order.
func (m *LinearModel) Classes() []string {
	out := make([]string, len(m.classes))
	copy(out, m.classes)
	return out
}

// Predict labels every vector. A width mismatch fails the whole batch.
func (m *LinearModel) Predict(vectors []SparseVector) ([]string, error) {
	labels := make([]string, len(vectors))
	for i, vec := range vectors {
		if vec.Width != m.width {
			return nil, fmt.Errorf("%w: row %d has width %d, model expects %d", ErrFeatureMismatch, i, vec.Width, m.width)
		}
		labels[i] = m.classes[m.decide(vec)]
	}
	return labels, nil
}

// DecisionFunction returns the raw per-row scores.
func (m *LinearModel) DecisionFunction(vec SparseVector) []float64 {
	scores := make([]float64, len(m.coef))
	for k, row := range m.coef {
		scores[k] = vec.Dot(row) + m.intercept[k]
	}
	return scores
}

func (m *LinearModel) decide(vec SparseVector) int {
	scores := m.DecisionFunction(vec)
	if len(scores) == 1 {
		if scores[0] > 0 {
			return 1
		}
		return 0
	}
	best := 0
	for k := 1; k < len(scores); k++ {
		if scores[k] > scores[best] {
			best = k
		}
	}
	return best
}

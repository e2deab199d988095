// Package classifier loads exported text-classification artifacts and runs
// them: a TF-IDF feature extractor and a linear label predictor.
package classifier

import "errors"

var (
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrInvalidArtifact  = errors.New("invalid artifact")
	ErrFeatureMismatch  = errors.New("feature width does not match model")
)

// FeatureExtractor maps raw texts to feature vectors, one per text, in order.
type FeatureExtractor interface {
	Transform(texts []string) ([]SparseVector, error)
	Width() int
}

// Predictor maps feature vectors to labels, one per vector, in order.
type Predictor interface {
	Predict(vectors []SparseVector) ([]string, error)
	Classes() []string
}

// SparseVector holds the non-zero entries of a feature row. Indices are
// strictly increasing.
type SparseVector struct {
	Width   int
	Indices []int
	Values  []float64
}

// Dot returns the inner product with a dense row of the same width.
func (v SparseVector) Dot(dense []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * dense[idx]
	}
	return sum
}

// NNZ is the number of stored entries.
func (v SparseVector) NNZ() int {
	return len(v.Indices)
}

package classifier

import (
	"fmt"
	"sync"
)

// Bundle is the loaded extractor/predictor pair. It is read-only after load
// and safe to share between requests.
type Bundle struct {
	Extractor FeatureExtractor
	Predictor Predictor
}

// ArtifactPaths locates the two artifacts on disk.
type ArtifactPaths struct {
	Vectorizer string
	Model      string
}

// Loader loads a Bundle on the first call to Load and returns the same
// instance (or the same error) on every later call.
type Loader struct {
	paths ArtifactPaths

	once   sync.Once
	bundle *Bundle
	err    error
}

func NewLoader(paths ArtifactPaths) *Loader {
	return &Loader{paths: paths}
}

func (l *Loader) Paths() ArtifactPaths {
	return l.paths
}

func (l *Loader) Load() (*Bundle, error) {
	l.once.Do(func() {
		l.bundle, l.err = LoadBundle(l.paths)
	})
	return l.bundle, l.err
}

// LoadBundle reads both artifacts and checks they agree on feature width.
func LoadBundle(paths ArtifactPaths) (*Bundle, error) {
	vec, err := LoadTfidfVectorizer(paths.Vectorizer)
	if err != nil {
		return nil, fmt.Errorf("load vectorizer: %w", err)
	}
	model, err := LoadLinearModel(paths.Model)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if vec.Width() != model.Width() {
		return nil, fmt.Errorf("%w: vectorizer produces %d features, model expects %d", ErrFeatureMismatch, vec.Width(), model.Width())
	}
	return &Bundle{Extractor: vec, Predictor: model}, nil
}

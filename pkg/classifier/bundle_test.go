package classifier_test

import (
	"os"
	"path/filepath"
	"testing"

	"sentiment-dashboard/pkg/classifier"
	"sentiment-dashboard/pkg/classifier/classifiertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoaderReturnsSameBundle(t *testing.T) {
	paths := classifiertest.WriteArtifacts(t, t.TempDir())
	loader := classifier.NewLoader(paths)

	first, err := loader.Load()
	require.NoError(t, err)
	second, err := loader.Load()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first.Extractor, second.Extractor)
	assert.Same(t, first.Predictor, second.Predictor)
}

func TestLoadedBundleClassifies(t *testing.T) {
	paths := classifiertest.WriteArtifacts(t, t.TempDir())
	bundle, err := classifier.LoadBundle(paths)
	require.NoError(t, err)

	rows, err := bundle.Extractor.Transform([]string{"great product", "it is ok", "terrible service"})
	require.NoError(t, err)
	labels, err := bundle.Predictor.Predict(rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"Positive", "Neutral", "Negative"}, labels)
}

func TestLoaderMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	paths := classifiertest.WriteArtifacts(t, dir)
	require.NoError(t, os.Remove(paths.Model))

	loader := classifier.NewLoader(paths)
	_, err := loader.Load()
	assert.ErrorIs(t, err, classifier.ErrArtifactNotFound)

	_, again := loader.Load()
	assert.Equal(t, err, again)
}

func TestLoadBundleCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	paths := classifiertest.WriteArtifacts(t, dir)
	require.NoError(t, os.WriteFile(paths.Vectorizer, []byte("{not json"), 0o644))

	_, err := classifier.LoadBundle(paths)
	assert.ErrorIs(t, err, classifier.ErrInvalidArtifact)
}

func TestLoadBundleWidthMismatch(t *testing.T) {
	dir := t.TempDir()
	paths := classifiertest.WriteArtifacts(t, dir)

	model := classifiertest.Model()
	for i := range model.Coef {
		model.Coef[i] = append(model.Coef[i], 0)
	}
	data, err := yaml.Marshal(model)
	require.NoError(t, err)
	paths.Model = filepath.Join(dir, "wide.yaml")
	require.NoError(t, os.WriteFile(paths.Model, data, 0o644))

	_, err = classifier.LoadBundle(paths)
	assert.ErrorIs(t, err, classifier.ErrFeatureMismatch)
}

func TestLoadYAMLArtifacts(t *testing.T) {
	dir := t.TempDir()
	vec := filepath.Join(dir, "vectorizer.yml")
	model := filepath.Join(dir, "model.yaml")

	vecData, err := yaml.Marshal(classifiertest.Vectorizer())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(vec, vecData, 0o644))
	modelData, err := yaml.Marshal(classifiertest.Model())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(model, modelData, 0o644))

	bundle, err := classifier.LoadBundle(classifier.ArtifactPaths{Vectorizer: vec, Model: model})
	require.NoError(t, err)
	assert.Equal(t, []string{"Negative", "Neutral", "Positive"}, bundle.Predictor.Classes())
	assert.Equal(t, 4, bundle.Extractor.Width())
}

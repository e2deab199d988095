// Package classifiertest writes small but real sentiment artifacts for tests.
package classifiertest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"sentiment-dashboard/pkg/classifier"
)

// Vectorizer knows four terms. "great product" scores Positive,
// "terrible service" scores Negative and text with no known term falls to
// Neutral through its intercept.
func Vectorizer() classifier.TfidfConfig {
	return classifier.TfidfConfig{
		Vocabulary: map[string]int{
			"great":    0,
			"product":  1,
			"terrible": 2,
			"service":  3,
		},
		IDF: []float64{1, 1, 2, 2},
	}
}

func Model() classifier.LinearModelConfig {
	return classifier.LinearModelConfig{
		Kind:    classifier.KindLinearSVC,
		Classes: []string{"Negative", "Neutral", "Positive"},
		Coef: [][]float64{
			{0, 0, 1, 1},
			{0, 0, 0, 0},
			{1, 1, 0, 0},
		},
		Intercept: []float64{0, 0.1, 0},
	}
}

// WriteArtifacts stores Vectorizer and Model as JSON files in dir.
func WriteArtifacts(t testing.TB, dir string) classifier.ArtifactPaths {
	t.Helper()
	paths := classifier.ArtifactPaths{
		Vectorizer: filepath.Join(dir, "TF-IDF.json"),
		Model:      filepath.Join(dir, "LinearSVC.json"),
	}
	writeJSON(t, paths.Vectorizer, Vectorizer())
	writeJSON(t, paths.Model, Model())
	return paths
}

// WriteDataset stores a small CSV with a "text" column and returns its path.
func WriteDataset(t testing.TB, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "final_sample_dataset.csv")
	content := "id,text,source\n" +
		"1,great product,web\n" +
		"2,it is ok,store\n" +
		"3,terrible service,web\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func writeJSON(t testing.TB, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", filepath.Base(path), err)
	}
}

package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTfidfVectorizer reads a vectorizer artifact (.json, .yaml or .yml).
func LoadTfidfVectorizer(path string) (*TfidfVectorizer, error) {
	var cfg TfidfConfig
	if err := decodeArtifact(path, &cfg); err != nil {
		return nil, err
	}
	v, err := NewTfidfVectorizer(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return v, nil
}

// LoadLinearModel reads a linear model artifact (.json, .yaml or .yml).
func LoadLinearModel(path string) (*LinearModel, error) {
	var cfg LinearModelConfig
	if err := decodeArtifact(path, &cfg); err != nil {
		return nil, err
	}
	m, err := NewLinearModel(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return m, nil
}

func decodeArtifact(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrInvalidArtifact, filepath.Base(path), err)
	}
	return nil
}

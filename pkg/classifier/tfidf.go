package classifier

import (
	"fmt"
	"math"
	"sort"
)

// TfidfConfig is the exported inference state of a fitted TF-IDF vectorizer.
// Pointer fields distinguish "absent" from an explicit false.
type TfidfConfig struct {
	Vocabulary   map[string]int `json:"vocabulary" yaml:"vocabulary"`
	IDF          []float64      `json:"idf" yaml:"idf"`
	Lowercase    *bool          `json:"lowercase,omitempty" yaml:"lowercase,omitempty"`
	StripAccents string         `json:"strip_accents,omitempty" yaml:"strip_accents,omitempty"`
	TokenPattern string         `json:"token_pattern,omitempty" yaml:"token_pattern,omitempty"`
	NgramRange   []int          `json:"ngram_range,omitempty" yaml:"ngram_range,omitempty"`
	StopWords    []string       `json:"stop_words,omitempty" yaml:"stop_words,omitempty"`
	Binary       bool           `json:"binary,omitempty" yaml:"binary,omitempty"`
	UseIDF       *bool          `json:"use_idf,omitempty" yaml:"use_idf,omitempty"`
	SublinearTF  bool           `json:"sublinear_tf,omitempty" yaml:"sublinear_tf,omitempty"`
	Norm         *string        `json:"norm,omitempty" yaml:"norm,omitempty"`
}

// TfidfVectorizer turns texts into L1/L2-normalized TF-IDF rows.
type TfidfVectorizer struct {
	vocab    map[string]int
	idf      []float64
	width    int
	analyzer *analyzer
	binary   bool
	useIDF   bool
	sublin   bool
	norm     string
}

var _ FeatureExtractor = (*TfidfVectorizer)(nil)

// NewTfidfVectorizer validates cfg and builds a ready-to-use vectorizer.
func NewTfidfVectorizer(cfg TfidfConfig) (*TfidfVectorizer, error) {
	if len(cfg.Vocabulary) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", ErrInvalidArtifact)
	}
	useIDF := cfg.UseIDF == nil || *cfg.UseIDF
	width := len(cfg.IDF)
	if !useIDF && width == 0 {
		width = maxIndex(cfg.Vocabulary) + 1
	}
	if useIDF && width == 0 {
		return nil, fmt.Errorf("%w: missing idf weights", ErrInvalidArtifact)
	}
	for term, idx := range cfg.Vocabulary {
		if idx < 0 || idx >= width {
			return nil, fmt.Errorf("%w: term %q has index %d outside [0,%d)", ErrInvalidArtifact, term, idx, width)
		}
	}
	norm := "l2"
	if cfg.Norm != nil {
		norm = *cfg.Norm
	}
	switch norm {
	case "l1", "l2", "":
	default:
		return nil, fmt.Errorf("%w: unsupported norm %q", ErrInvalidArtifact, norm)
	}
	ngramMin, ngramMax := 1, 1
	switch len(cfg.NgramRange) {
	case 0:
	case 2:
		ngramMin, ngramMax = cfg.NgramRange[0], cfg.NgramRange[1]
		if ngramMin < 1 || ngramMax < ngramMin {
			return nil, fmt.Errorf("%w: bad ngram_range %v", ErrInvalidArtifact, cfg.NgramRange)
		}
	default:
		return nil, fmt.Errorf("%w: ngram_range needs two values, got %d", ErrInvalidArtifact, len(cfg.NgramRange))
	}
	lowercase := cfg.Lowercase == nil || *cfg.Lowercase
	an, err := newAnalyzer(lowercase, cfg.StripAccents, cfg.TokenPattern, cfg.StopWords, ngramMin, ngramMax)
	if err != nil {
		return nil, err
	}
	return &TfidfVectorizer{
		vocab:    cfg.Vocabulary,
		idf:      cfg.IDF,
		width:    width,
		analyzer: an,
		binary:   cfg.Binary,
		useIDF:   useIDF,
		sublin:   cfg.SublinearTF,
		norm:     norm,
	}, nil
}

// Width is the number of feature columns.
func (v *TfidfVectorizer) Width() int {
	return v.width
}

// VocabularySize is the number of known terms.
func (v *TfidfVectorizer) VocabularySize() int {
	return len(v.vocab)
}

// Transform vectorizes every text independently. Output order matches input.
func (v *TfidfVectorizer) Transform(texts []string) ([]SparseVector, error) {
	out := make([]SparseVector, len(texts))
	for i, text := range texts {
		out[i] = v.transformOne(text)
	}
	return out, nil
}

func (v *TfidfVectorizer) transformOne(text string) SparseVector {
	counts := make(map[int]float64)
	for _, term := range v.analyzer.analyze(text) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}
	vec := SparseVector{
		Width:   v.width,
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)
	for _, idx := range vec.Indices {
		tf := counts[idx]
		switch {
		case v.binary:
			tf = 1
		case v.sublin:
			tf = 1 + math.Log(tf)
		}
		if v.useIDF {
			tf *= v.idf[idx]
		}
		vec.Values = append(vec.Values, tf)
	}
	normalize(vec.Values, v.norm)
	return vec
}

func normalize(values []float64, norm string) {
	var total float64
	switch norm {
	case "l2":
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	case "l1":
		for _, x := range values {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}

func maxIndex(vocab map[string]int) int {
	m := -1
	for _, idx := range vocab {
		if idx > m {
			m = idx
		}
	}
	return m
}

package classifier

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	StripAccentsNone    = ""
	StripAccentsASCII   = "ascii"
	StripAccentsUnicode = "unicode"
)

type analyzer struct {
	lowercase    bool
	stripAccents string
	token        *tokenizer
	stopWords    map[string]struct{}
	ngramMin     int
	ngramMax     int
}

func newAnalyzer(lowercase bool, stripAccents, tokenPattern string, stopWords []string, ngramMin, ngramMax int) (*analyzer, error) {
	switch stripAccents {
	case StripAccentsNone, StripAccentsASCII, StripAccentsUnicode:
	default:
		return nil, fmt.Errorf("%w: unsupported strip_accents %q", ErrInvalidArtifact, stripAccents)
	}
	tok, err := newTokenizer(tokenPattern)
	if err != nil {
		return nil, err
	}
	if ngramMin <= 0 {
		ngramMin = 1
	}
	if ngramMax < ngramMin {
		ngramMax = ngramMin
	}
	var stop map[string]struct{}
	if len(stopWords) > 0 {
		stop = make(map[string]struct{}, len(stopWords))
		for _, w := range stopWords {
			stop[w] = struct{}{}
		}
	}
	return &analyzer{
		lowercase:    lowercase,
		stripAccents: stripAccents,
		token:        tok,
		stopWords:    stop,
		ngramMin:     ngramMin,
		ngramMax:     ngramMax,
	}, nil
}

// analyze returns the terms of one document in order of appearance.
func (a *analyzer) analyze(doc string) []string {
	doc = a.preprocess(doc)
	tokens := a.token.tokens(doc)
	if a.stopWords != nil {
		kept := tokens[:0]
		for _, t := range tokens {
			if _, ok := a.stopWords[t]; !ok {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}
	if a.ngramMin == 1 && a.ngramMax == 1 {
		return tokens
	}
	return wordNgrams(tokens, a.ngramMin, a.ngramMax)
}

// preprocess lowercases before stripping accents.
func (a *analyzer) preprocess(doc string) string {
	if a.lowercase {
		doc = strings.ToLower(doc)
	}
	switch a.stripAccents {
	case StripAccentsUnicode:
		doc = stripAccentsUnicode(doc)
	case StripAccentsASCII:
		doc = stripAccentsASCII(doc)
	}
	return doc
}

func wordNgrams(tokens []string, minN, maxN int) []string {
	out := make([]string, 0, len(tokens)*(maxN-minN+1))
	if minN == 1 {
		out = append(out, tokens...)
		minN = 2
	}
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

func stripAccentsUnicode(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func stripAccentsASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

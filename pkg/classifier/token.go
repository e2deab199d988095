package classifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SklearnTokenPattern is the default token_pattern of a fitted TF-IDF
// vectorizer.
const SklearnTokenPattern = `(?u)\b\w\w+\b`

const (
	wordClass    = `[\p{L}\p{N}_]`
	nonWordClass = `[^\p{L}\p{N}_]`
	wordMembers  = `\p{L}\p{N}_`
)

// tokenizer runs an exported Python token_pattern with Python's Unicode
// semantics. \w, \W, \d and \D are rewritten to Unicode classes. A leading or
// trailing \b is checked against Unicode word characters after matching,
// since Go's \b only knows ASCII; a \b elsewhere in the pattern stays ASCII.
type tokenizer struct {
	re           *regexp.Regexp
	leadBoundary bool
	tailBoundary bool
	group        bool
}

func newTokenizer(pattern string) (*tokenizer, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		pattern = SklearnTokenPattern
	}
	pattern = strings.TrimPrefix(pattern, "(?u)")

	tok := &tokenizer{}
	if strings.HasPrefix(pattern, `\b`) {
		tok.leadBoundary = true
		pattern = pattern[2:]
	}
	if strings.HasSuffix(pattern, `\b`) && !escapedAt(pattern, len(pattern)-2) {
		tok.tailBoundary = true
		pattern = pattern[:len(pattern)-2]
	}

	re, err := regexp.Compile(unicodeClasses(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: token_pattern: %v", ErrInvalidArtifact, err)
	}
	switch re.NumSubexp() {
	case 0:
	case 1:
		tok.group = true
	default:
		return nil, fmt.Errorf("%w: token_pattern has %d capturing groups, at most one is allowed", ErrInvalidArtifact, re.NumSubexp())
	}
	tok.re = re
	return tok, nil
}

// escapedAt reports whether the byte at i is preceded by an odd run of
// backslashes.
func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func unicodeClasses(pattern string) string {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			next := pattern[i+1]
			i++
			switch {
			case next == 'w' && inClass:
				b.WriteString(wordMembers)
			case next == 'w':
				b.WriteString(wordClass)
			case next == 'W' && !inClass:
				b.WriteString(nonWordClass)
			case next == 'd':
				b.WriteString(`\p{Nd}`)
			case next == 'D':
				b.WriteString(`\P{Nd}`)
			default:
				b.WriteByte(c)
				b.WriteByte(next)
			}
			continue
		}
		switch c {
		case '[':
			inClass = true
		case ']':
			inClass = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (t *tokenizer) tokens(doc string) []string {
	matches := t.re.FindAllStringSubmatchIndex(doc, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		start, end := m[0], m[1]
		if t.leadBoundary && !isBoundary(doc, start) {
			continue
		}
		if t.tailBoundary && !isBoundary(doc, end) {
			continue
		}
		if t.group {
			if m[2] < 0 {
				out = append(out, "")
				continue
			}
			out = append(out, doc[m[2]:m[3]])
			continue
		}
		out = append(out, doc[start:end])
	}
	return out
}

func isBoundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

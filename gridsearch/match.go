package gridsearch

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// Matcher decides whether a formatted cell value matches the search text.
type Matcher interface {
	Match(value, text string) bool
}

// Locator is implemented by matchers that can point at the part of a value
// the search text matched, for inline highlighting.
type Locator interface {
	// Locate returns the sorted, non-overlapping byte ranges [start, end)
	// of value matched by text.
	Locate(value, text string) [][2]int
}

type MatchFunc func(value, text string) bool

func (f MatchFunc) Match(value, text string) bool { return f(value, text) }

var (
	// ContainsFold matches when text is contained in value under Unicode
	// case folding.
	ContainsFold Matcher = foldMatcher{}

	// Contains is case sensitive containment.
	Contains Matcher = exactMatcher{}

	// Fuzzy matches when the characters of text appear in order in value.
	Fuzzy Matcher = fuzzyMatcher{}
)

type foldMatcher struct{}

func (foldMatcher) Match(value, text string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(value), fold.String(text))
}

// Locate folds value rune by rune so every folded byte maps back to the
// rune it came from; folding may change byte lengths.
func (foldMatcher) Locate(value, text string) [][2]int {
	fold := cases.Fold()
	q := fold.String(text)
	if q == "" {
		return nil
	}
	var b strings.Builder
	origin := make([]int, 0, len(value)+1)
	for i, r := range value {
		f := fold.String(string(r))
		for j := 0; j < len(f); j++ {
			origin = append(origin, i)
		}
		b.WriteString(f)
	}
	origin = append(origin, len(value))

	folded := b.String()
	var out [][2]int
	for off := 0; off < len(folded); {
		idx := strings.Index(folded[off:], q)
		if idx < 0 {
			break
		}
		idx += off
		end := idx + len(q)
		if start, stop := origin[idx], origin[end]; stop > start {
			out = append(out, [2]int{start, stop})
		}
		off = end
	}
	return out
}

type exactMatcher struct{}

func (exactMatcher) Match(value, text string) bool { return strings.Contains(value, text) }

func (exactMatcher) Locate(value, text string) [][2]int {
	if text == "" {
		return nil
	}
	var out [][2]int
	for off := 0; off < len(value); {
		idx := strings.Index(value[off:], text)
		if idx < 0 {
			break
		}
		idx += off
		out = append(out, [2]int{idx, idx + len(text)})
		off = idx + len(text)
	}
	return out
}

type fuzzyMatcher struct{}

func (fuzzyMatcher) Match(value, text string) bool {
	if value == "" {
		return false
	}
	return len(fuzzy.Find(text, []string{value})) > 0
}

// Locate returns one range per matched character, adjacent characters
// merged.
func (fuzzyMatcher) Locate(value, text string) [][2]int {
	if value == "" || text == "" {
		return nil
	}
	matches := fuzzy.Find(text, []string{value})
	if len(matches) == 0 {
		return nil
	}
	var out [][2]int
	for _, idx := range matches[0].MatchedIndexes {
		if idx < 0 || idx >= len(value) {
			continue
		}
		_, size := utf8.DecodeRuneInString(value[idx:])
		if n := len(out); n > 0 && out[n-1][1] == idx {
			out[n-1][1] = idx + size
			continue
		}
		out = append(out, [2]int{idx, idx + size})
	}
	return out
}

// MatcherByName maps a configuration value to a matcher.
func MatcherByName(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "contains":
		return ContainsFold, nil
	case "case-sensitive", "exact-case":
		return Contains, nil
	case "fuzzy":
		return Fuzzy, nil
	default:
		return nil, fmt.Errorf("unknown match mode %q (want contains, case-sensitive or fuzzy)", name)
	}
}

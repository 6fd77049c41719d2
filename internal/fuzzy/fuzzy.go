// Package fuzzy ranks declared flags against a mistyped token.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

// Match is one candidate within the distance bound.
type Match struct {
	Value    string
	Distance int
	Score    float64 // Jaro-Winkler similarity, 0 to 1
}

// Matcher finds candidates within an edit-distance bound.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher returns a Matcher that accepts at most maxDistance edits.
// Inputs shorter than two characters never match.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{maxDistance: maxDistance, minLength: 2}
}

// Matches returns every candidate within the bound, best first. Comparison
// ignores case and leading dashes; exact matches are skipped.
func (m *Matcher) Matches(input string, candidates []string) []Match {
	in := normalize(input)
	if len(in) < m.minLength {
		return nil
	}

	var out []Match
	for _, c := range candidates {
		cn := normalize(c)
		if cn == in && c == input {
			continue
		}
		d := smetrics.WagnerFischer(in, cn, 1, 1, 1)
		// the dash count is part of the flag, so --x vs -x costs one edit
		d += abs(dashes(input) - dashes(c))
		if d > m.maxDistance {
			continue
		}
		out = append(out, Match{
			Value:    c,
			Distance: d,
			Score:    smetrics.JaroWinkler(in, cn, 0.7, 4),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Score > out[j].Score
	})
	return out
}

// Best returns the closest candidate, or "" when none is within the bound.
func (m *Matcher) Best(input string, candidates []string) string {
	if matches := m.Matches(input, candidates); len(matches) > 0 {
		return matches[0].Value
	}
	return ""
}

// FindBestFlag returns the declared flag closest to input.
func FindBestFlag(input string, flags []string, maxDistance int) string {
	return NewMatcher(maxDistance).Best(input, flags)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimLeft(s, "-"))
}

func dashes(s string) int {
	return len(s) - len(strings.TrimLeft(s, "-"))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

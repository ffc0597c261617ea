package corrector

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// DefaultSuggestions is the maximum number of suggestions offered.
	DefaultSuggestions = 5
	// DefaultCutoff is the minimum similarity ratio for a suggestion.
	DefaultCutoff = 0.6
)

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

type scored struct {
	word  string
	score float64
}

// Suggest returns up to n words from candidates that look like word,
// best first. A candidate must reach cutoff on difflib's similarity
// ratio; ties are broken by the candidate itself, descending.
func Suggest(word string, candidates []string, n int, cutoff float64) []string {
	if n <= 0 {
		return nil
	}

	m := difflib.NewMatcher(nil, nil)
	m.SetSeq2(runes(word))

	var hits []scored
	for _, c := range candidates {
		m.SetSeq1(runes(c))
		if m.RealQuickRatio() >= cutoff && m.QuickRatio() >= cutoff {
			if r := m.Ratio(); r >= cutoff {
				hits = append(hits, scored{word: c, score: r})
			}
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].word > hits[j].word
	})
	if len(hits) > n {
		hits = hits[:n]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.word
	}
	return out
}

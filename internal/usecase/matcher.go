package usecase

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"padaria-pedidos/internal/domain"
)

// LevenshteinScorer is the reference Scorer: edit distance normalized by
// the longer string's rune length, so 1.0 is an exact match and 0.0 shares
// nothing.
type LevenshteinScorer struct{}

// Similarity implements Scorer.
func (LevenshteinScorer) Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// MatcherConfig holds the resolution tuning knobs. The defaults are
// reasonable starting points, not fixed requirements.
type MatcherConfig struct {
	// Threshold is the minimum similarity for the best candidate to win.
	Threshold float64
	// Margin is how far the best score must exceed the runner-up's, so the
	// matcher never silently guesses between two similarly-named items
	// ("Coxinha" vs "Coxinha Grande").
	Margin float64
}

// DefaultMatcherConfig returns the reference threshold and margin.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{Threshold: 0.6, Margin: 0.05}
}

// Matcher resolves free-text item mentions against a catalog.
type Matcher struct {
	scorer Scorer
	cfg    MatcherConfig
}

// NewMatcher creates a matcher with the given scoring strategy. A nil
// scorer falls back to the Levenshtein reference.
func NewMatcher(scorer Scorer, cfg MatcherConfig) *Matcher {
	if scorer == nil {
		scorer = LevenshteinScorer{}
	}
	return &Matcher{scorer: scorer, cfg: cfg}
}

// Resolve maps a mention to its best catalog entry, or reports it
// unresolved. Exactly one of the results is non-nil. Resolution is pure:
// the same mention against the same catalog always yields the same answer.
//
// The best candidate wins only if its score meets the threshold and clears
// the next-best distinct score by the margin. Candidates tied on the exact
// top score are arbitrated by shorter canonical name; a tie on length too
// is genuinely ambiguous and stays unresolved.
func (m *Matcher) Resolve(mention domain.OrderLineMention, catalog *domain.Catalog) (*domain.ResolvedLine, *domain.UnresolvedMention) {
	key := domain.NormalizeName(mention.RawName)

	best := -1.0
	second := -1.0 // best distinct score below the top
	var top []*domain.CatalogEntry
	for _, cand := range catalog.Candidates() {
		score := m.scorer.Similarity(key, cand.Key)
		switch {
		case score > best:
			if best > second {
				second = best
			}
			best = score
			top = append(top[:0], cand.Entry)
		case score == best:
			top = append(top, cand.Entry)
		case score > second:
			second = score
		}
	}

	if len(top) == 0 || best < m.cfg.Threshold {
		return nil, &domain.UnresolvedMention{RawName: mention.RawName}
	}
	if second >= 0 && best-second < m.cfg.Margin {
		return nil, &domain.UnresolvedMention{RawName: mention.RawName}
	}

	winner := top[0]
	if len(top) > 1 {
		winner = shortestName(top)
		if winner == nil {
			return nil, &domain.UnresolvedMention{RawName: mention.RawName}
		}
	}

	line := domain.NewResolvedLine(mention.Quantity, winner)
	return &line, nil
}

// shortestName picks the unique entry with the shortest canonical name, or
// nil when the minimum length is shared.
func shortestName(entries []*domain.CatalogEntry) *domain.CatalogEntry {
	winner := entries[0]
	winnerLen := utf8.RuneCountInString(winner.Name)
	unique := true
	for _, e := range entries[1:] {
		l := utf8.RuneCountInString(e.Name)
		switch {
		case l < winnerLen:
			winner, winnerLen, unique = e, l, true
		case l == winnerLen:
			unique = false
		}
	}
	if !unique {
		return nil
	}
	return winner
}

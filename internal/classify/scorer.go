// Package classify implements the tariff classification scorer: it ranks
// tariff catalog entries against a free-text product description plus
// optional category hints. All functions are pure and safe for concurrent
// use.
package classify

import (
	"sort"
	"strings"

	"github.com/atlasfreight/exportdesk/internal/model"
)

// Scoring weights. Keyword hits are uncapped before the final clamp; the
// clamp reserves 100 for a certainty this scorer cannot structurally produce.
const (
	categoryPoints    = 40
	subcategoryPoints = 30
	keywordPoints     = 8
	maxConfidence     = 99
)

// DefaultLimit is the number of candidates Rank returns when the caller
// passes a non-positive limit.
const DefaultLimit = 4

// Score computes the match confidence of one catalog entry against a query.
// The result is always in [0, 99]. A score of 0 means nothing matched.
func Score(entry model.TariffEntry, query model.ClassificationQuery) int {
	score := 0

	if entry.Category != "" && entry.Category == query.Category {
		score += categoryPoints
	}

	if entry.Subcategory != "" && entry.Subcategory == query.Subcategory {
		score += subcategoryPoints
	}

	description := strings.ToLower(strings.TrimSpace(query.FreeTextDescription))
	if description != "" {
		for _, keyword := range entry.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(description, strings.ToLower(keyword)) {
				score += keywordPoints
			}
		}
	}

	if score > maxConfidence {
		score = maxConfidence
	}

	return score
}

// Rank scores every catalog entry against the query, drops zero scores, and
// returns the top entries ordered by descending confidence. Ties keep catalog
// order. An empty result is a valid outcome, not an error.
func Rank(query model.ClassificationQuery, entries []model.TariffEntry, limit int) model.ClassificationMatches {
	if limit <= 0 {
		limit = DefaultLimit
	}

	matches := make(model.ClassificationMatches, 0, len(entries))
	for _, entry := range entries {
		score := Score(entry, query)
		if score == 0 {
			continue
		}
		matches = append(matches, model.ClassificationMatch{
			Entry:      entry,
			Confidence: score,
		})
	}

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}

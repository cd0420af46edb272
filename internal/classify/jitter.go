package classify

import (
	"math/rand"

	"github.com/atlasfreight/exportdesk/internal/model"
)

// DisplayConfidences applies a cosmetic ±3 wobble to each match's confidence,
// clamped to [45, 99], and returns the values to display. It is a
// presentation concern only: it runs after ranking and never reorders
// matches. The random source is injected so displays can be reproduced in
// tests.
func DisplayConfidences(matches model.ClassificationMatches, rng *rand.Rand) []int {
	const (
		spread = 3
		floor  = 45
	)

	display := make([]int, len(matches))
	for i, match := range matches {
		v := match.Confidence + rng.Intn(2*spread+1) - spread
		if v < floor {
			v = floor
		}
		if v > maxConfidence {
			v = maxConfidence
		}
		display[i] = v
	}

	return display
}

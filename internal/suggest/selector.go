package suggest

import (
	"math/rand"

	"github.com/sandeepkv93/breakd/internal/model"
)

const (
	// DefaultWeight is the score assigned to categories never acted on.
	DefaultWeight = 0.5
	// JitterSpan bounds the uniform random jitter added to every score.
	JitterSpan = 0.5
)

// Select scores every catalog entry as preference weight plus uniform jitter
// in [0, JitterSpan) and returns the highest scorer. Ties keep the earliest
// catalog entry. The rand source is injected so tests can seed it.
func Select(catalog []model.Activity, prefs map[model.Category]float64, rng *rand.Rand) (model.Activity, bool) {
	if len(catalog) == 0 {
		return model.Activity{}, false
	}
	best := catalog[0]
	bestScore := score(catalog[0], prefs, rng)
	for _, act := range catalog[1:] {
		if s := score(act, prefs, rng); s > bestScore {
			best = act
			bestScore = s
		}
	}
	return best, true
}

func score(act model.Activity, prefs map[model.Category]float64, rng *rand.Rand) float64 {
	weight, ok := prefs[act.Category]
	if !ok {
		weight = DefaultWeight
	}
	return weight + rng.Float64()*JitterSpan
}

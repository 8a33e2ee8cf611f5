package suggest

import (
	"fmt"

	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/store"
)

const (
	completeStep = 0.1
	skipStep     = 0.05
)

// Preferences is the per-category scalar weight model. Weights live in [0,1]
// and are persisted after every update.
type Preferences struct {
	conn *store.Conn
}

func NewPreferences(conn *store.Conn) *Preferences {
	return &Preferences{conn: conn}
}

// Snapshot loads the current weight map. Absent or malformed state yields an
// empty map; unseen categories default to DefaultWeight at scoring time.
func (p *Preferences) Snapshot() map[model.Category]float64 {
	weights := make(map[model.Category]float64)
	p.conn.Get(store.KeyPreferences, &weights)
	return weights
}

// Weight returns the stored weight for one category, or DefaultWeight.
func (p *Preferences) Weight(cat model.Category) float64 {
	weights := p.Snapshot()
	if w, ok := weights[cat]; ok {
		return w
	}
	return DefaultWeight
}

// Apply adjusts one category after a completed or skipped activity and
// persists the map. Complete raises the weight by 0.1, skip lowers it by
// 0.05, clamped to [0,1] in both directions.
func (p *Preferences) Apply(cat model.Category, action model.Action) (float64, error) {
	if !cat.IsValid() {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidCategory, cat)
	}
	if !action.IsValid() {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidAction, action)
	}

	weights := p.Snapshot()
	weight, ok := weights[cat]
	if !ok {
		weight = DefaultWeight
	}
	switch action {
	case model.ActionComplete:
		weight += completeStep
	case model.ActionSkip:
		weight -= skipStep
	}
	weight = clamp(weight)
	weights[cat] = weight
	if err := p.conn.Set(store.KeyPreferences, weights); err != nil {
		return weight, err
	}
	return weight, nil
}

// Reset clears every learned weight.
func (p *Preferences) Reset() error {
	return p.conn.Set(store.KeyPreferences, map[model.Category]float64{})
}

func clamp(w float64) float64 {
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}

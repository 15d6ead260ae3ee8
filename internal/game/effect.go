package game

import "fmt"

// TraitShield marks effects that absorb direct damage.
const TraitShield = "shield"

// Effect is a static registry entry for a status effect. PreAction and
// PostAction, when set, run once per resolving desk slot for every player
// holding the effect.
type Effect struct {
	ID     EffectID
	Name   string
	Traits []string

	// Persistent effects survive the round-end clear.
	Persistent bool

	PreAction  func(ctx *ActionContext)
	PostAction func(ctx *ActionContext)
}

// HasTrait reports whether the effect carries the given trait.
func (e *Effect) HasTrait(trait string) bool {
	for _, t := range e.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// NewInstance creates an instance of this effect.
func (e *Effect) NewInstance() EffectInstance {
	return EffectInstance{ID: e.ID}
}

// EffectInstance is an effect attached to a player.
type EffectInstance struct {
	ID EffectID `json:"id"`
}

// EffectRegistry is an immutable lookup table of effect definitions,
// constructed once and passed to the engine explicitly.
type EffectRegistry struct {
	byID map[EffectID]*Effect
}

// NewEffectRegistry builds a registry from the given definitions.
func NewEffectRegistry(effects ...*Effect) *EffectRegistry {
	r := &EffectRegistry{byID: make(map[EffectID]*Effect, len(effects))}
	for _, e := range effects {
		r.byID[e.ID] = e
	}
	return r
}

// ByID looks up an effect definition. Unknown ids are a programmer error.
func (r *EffectRegistry) ByID(id EffectID) *Effect {
	e, ok := r.byID[id]
	if !ok {
		panic(fmt.Sprintf("effect not found in registry: %q", id))
	}
	return e
}

// ByInstance looks up the definition behind an instance.
func (r *EffectRegistry) ByInstance(ei EffectInstance) *Effect {
	return r.ByID(ei.ID)
}

const (
	EffectHasShield   EffectID = "HAS_SHIELD"
	EffectSaintShield EffectID = "SAINT_SHIELD"
)

// DefaultEffects builds the standard effect registry.
func DefaultEffects() *EffectRegistry {
	return NewEffectRegistry(
		&Effect{
			ID:     EffectHasShield,
			Name:   "Shield",
			Traits: []string{TraitShield},
		},
		&Effect{
			ID:         EffectSaintShield,
			Name:       "Saint Shield",
			Traits:     []string{TraitShield},
			Persistent: true,
		},
	)
}

package game

import "fmt"

// Catalog is an immutable lookup table of card definitions, constructed once
// at startup and passed to the engine explicitly.
type Catalog struct {
	byID    map[CardID]*Card
	ordered []*Card
}

// NewCatalog builds a catalog from the given definitions.
func NewCatalog(cards ...*Card) *Catalog {
	c := &Catalog{byID: make(map[CardID]*Card, len(cards))}
	for _, card := range cards {
		c.byID[card.ID] = card
		c.ordered = append(c.ordered, card)
	}
	return c
}

// ByID looks up a card definition. Unknown ids are a programmer error.
func (c *Catalog) ByID(id CardID) *Card {
	card, ok := c.byID[id]
	if !ok {
		panic(fmt.Sprintf("card not found in catalog: %q", id))
	}
	return card
}

// ByInstance looks up the definition behind an instance.
func (c *Catalog) ByInstance(ci *CardInstance) *Card {
	return c.ByID(ci.ID)
}

// Cards returns all definitions in registration order.
func (c *Catalog) Cards() []*Card {
	return c.ordered
}

const (
	CardShield      CardID = "SHIELD"
	CardArrow       CardID = "ARROW"
	CardFireball    CardID = "FIREBALL"
	CardReverse     CardID = "REVERSE"
	CardRepeat      CardID = "REPEAT"
	CardSaintShield CardID = "SAINT_SHIELD"
	CardOracle      CardID = "ORACLE"
	CardImitator    CardID = "IMITATOR"
	CardElixir      CardID = "ELIXIR"
	CardPin         CardID = "PIN"
)

// dealDamage applies direct damage through the shared shield contract: a
// shield-trait effect on the opponent blocks the whole hit and leaves health
// untouched; otherwise health drops by the full amount (it may go negative —
// death is detected at round completion, not clamped here).
func dealDamage(ctx *ActionContext, damage int) {
	if _, ok := ctx.Game.shieldEffect(ctx.Opponent); ok {
		ctx.Log.DamageBlocked(ctx.Opponent.ID, ctx.Player.ID, damage)
		return
	}
	ctx.Log.Damage(ctx.Opponent.ID, ctx.Player.ID, damage)
	ctx.Opponent.Health -= damage
}

// DefaultCatalog builds the standard card set.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		&Card{
			ID:          CardShield,
			Kind:        KindSpell,
			Icon:        "shield-shaded",
			Name:        "Shield",
			Description: "Creates a shield that blocks all incoming damage until the round ends. Some spells can destroy it.",
			DrawWeight:  3,
			Action: func(ctx *ActionContext) {
				ctx.Log.EffectAdded(ctx.Player.ID, EffectHasShield)
				ctx.Player.AddEffect(ctx.Game.effects.ByID(EffectHasShield).NewInstance())
			},
		},
		&Card{
			ID:          CardArrow,
			Kind:        KindSpell,
			Icon:        "heart-arrow",
			Name:        "Magic Arrow",
			Description: "Deals 3 damage to the opponent.",
			DrawWeight:  4,
			Action: func(ctx *ActionContext) {
				dealDamage(ctx, 3)
			},
		},
		&Card{
			ID:          CardFireball,
			Kind:        KindSpell,
			Icon:        "fire",
			Name:        "Fireball",
			Description: "Destroys one of the opponent's shields. Deals 6 damage if they have none.",
			DrawWeight:  2,
			Action: func(ctx *ActionContext) {
				if effectID, ok := ctx.Game.shieldEffect(ctx.Opponent); ok {
					ctx.Opponent.RemoveEffect(effectID)
					ctx.Log.EffectRemoved(ctx.Opponent.ID, effectID)
					return
				}
				dealDamage(ctx, 6)
			},
		},
		&Card{
			ID:          CardReverse,
			Kind:        KindSpell,
			Icon:        "arrow-down-up",
			Name:        "Spell Theft",
			Description: "Steals the next spell on the desk if it belongs to the opponent.",
			DrawWeight:  2,
			Action: func(ctx *ActionContext) {
				slotID, ok := ctx.Game.nextDeskCard(ctx.SlotID)
				if !ok {
					return
				}
				ci := ctx.Game.Desk[slotID].Instance
				if ci.Owner == ctx.Player.ID {
					return
				}
				ci.Owner = ctx.Player.ID
				ctx.Log.ChangeOwner(ctx.Player.ID, ci.ID, slotID)
			},
		},
		&Card{
			ID:          CardRepeat,
			Kind:        KindSpell,
			Icon:        "arrow-clockwise",
			Name:        "Magic Repeat",
			Description: "Repeats the previous spell on your behalf.",
			DrawWeight:  2,
			Action: func(ctx *ActionContext) {
				slotID, ok := ctx.Game.prevDeskCard(ctx.SlotID)
				if !ok || slotID == ctx.SlotID {
					return
				}
				ctx.Game.replayCardAt(ctx, slotID)
			},
		},
		&Card{
			ID:          CardSaintShield,
			Kind:        KindSpell,
			Icon:        "shield-fill-plus",
			Name:        "Saint Shield",
			Description: "Creates a shield that blocks incoming damage and stays with you after the round ends. Some spells can destroy it.",
			DrawWeight:  1,
			Action: func(ctx *ActionContext) {
				ctx.Log.EffectAdded(ctx.Player.ID, EffectSaintShield)
				ctx.Player.AddEffect(ctx.Game.effects.ByID(EffectSaintShield).NewInstance())
			},
		},
		&Card{
			ID:          CardOracle,
			Kind:        KindSpell,
			Icon:        "eye",
			Name:        "Omen",
			Description: "Repeats the last spell that will be cast this round.",
			DrawWeight:  1,
			Action: func(ctx *ActionContext) {
				slotID, ok := ctx.Game.lastDeskCard()
				if !ok || slotID == ctx.SlotID {
					return
				}
				ctx.Game.replayCardAt(ctx, slotID)
			},
		},
		&Card{
			ID:          CardImitator,
			Kind:        KindSpell,
			Icon:        "front",
			Name:        "Imitator",
			Description: "Repeats the two previous spells on your behalf.",
			DrawWeight:  1,
			Action: func(ctx *ActionContext) {
				slotID := ctx.SlotID
				for i := 0; i < 2; i++ {
					prev, ok := ctx.Game.prevDeskCard(slotID)
					if !ok {
						return
					}
					ctx.Game.replayCardAt(ctx, prev)
					slotID = prev
				}
			},
		},
		&Card{
			ID:          CardElixir,
			Kind:        KindSpell,
			Icon:        "droplet-half",
			Name:        "Elixir",
			Description: "Restores 4 health to you.",
			DrawWeight:  2,
			Action: func(ctx *ActionContext) {
				ctx.Player.Health += 4
				ctx.Log.Heal(ctx.Player.ID, 4)
			},
		},
		&Card{
			ID:          CardPin,
			Kind:        KindEnchant,
			Icon:        "pin-angle",
			Name:        "Pinning",
			Description: "Pins the chosen desk card so your opponent cannot move it.",
			IsAffected: func(ctx *ActionContext) bool {
				return ctx.Game.Desk[ctx.TargetSlotID].Occupied()
			},
			ManaCost: func(ctx *ActionContext) int {
				return pinManaCost(ctx.TargetSlotID)
			},
			Action: func(ctx *ActionContext) {
				slot := &ctx.Game.Desk[ctx.TargetSlotID]
				if !slot.Occupied() {
					return
				}
				slot.Instance.Pinned = true
				ctx.Log.Pin(slot.Instance.Owner, slot.Instance.ID, ctx.TargetSlotID)
			},
		},
	)
}

// pinManaCost scales with the target slot's distance from the desk center:
// [3 2 1 1 2 3] across slots 0..5.
func pinManaCost(slotID int) int {
	if slotID >= DeskSize/2 {
		slotID = DeskSize - 1 - slotID
	}
	return DeskSize/2 - slotID
}

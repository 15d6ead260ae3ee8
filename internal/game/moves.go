package game

// Move legality and execution. Every mutator re-checks its own Can predicate
// so a stale or malicious call degrades to a silent no-op.

// CanMoveCardFromHandToDesk reports whether the player may place the card in
// hand slot handSlotID onto desk slot deskSlotID. Placement requires the
// active turn, an occupied source, an empty destination, headroom under the
// per-player desk cap, and enough mana for the card's cost at that slot.
func (g *Game) CanMoveCardFromHandToDesk(playerID string, handSlotID, deskSlotID int) bool {
	if !g.IsPlayerTurn(playerID) {
		return false
	}
	if handSlotID < 0 || handSlotID >= HandSize || deskSlotID < 0 || deskSlotID >= DeskSize {
		return false
	}
	p := g.PlayerByID(playerID)
	if !p.Hand[handSlotID].Occupied() || g.Desk[deskSlotID].Occupied() {
		return false
	}
	if g.deskCardCount(playerID) >= MaxDeskCardsPerPlayer {
		return false
	}
	return p.Mana >= g.placementCost(p, p.Hand[handSlotID].Instance, deskSlotID)
}

// MoveCardFromHandToDesk places a hand card onto the desk and debits its
// mana cost. No-op when the move is illegal.
func (g *Game) MoveCardFromHandToDesk(playerID string, handSlotID, deskSlotID int) {
	if !g.CanMoveCardFromHandToDesk(playerID, handSlotID, deskSlotID) {
		return
	}
	p := g.PlayerByID(playerID)
	ci := p.Hand[handSlotID].take()
	p.AddMana(-g.placementCost(p, ci, deskSlotID))
	g.Desk[deskSlotID].put(ci)
}

// CanMoveCardFromDeskToHand reports whether the player may take back the card
// in desk slot deskSlotID into hand slot handSlotID. Only the card's owner
// may retract it, pinned cards stay put, and the hand slot must be empty.
func (g *Game) CanMoveCardFromDeskToHand(playerID string, deskSlotID, handSlotID int) bool {
	if !g.IsPlayerTurn(playerID) {
		return false
	}
	if deskSlotID < 0 || deskSlotID >= DeskSize || handSlotID < 0 || handSlotID >= HandSize {
		return false
	}
	slot := &g.Desk[deskSlotID]
	if !slot.Occupied() || slot.Instance.Owner != playerID || slot.Instance.Pinned {
		return false
	}
	return !g.PlayerByID(playerID).Hand[handSlotID].Occupied()
}

// MoveCardFromDeskToHand retracts a desk card back into the hand and refunds
// the mana it cost to place. No-op when the move is illegal.
func (g *Game) MoveCardFromDeskToHand(playerID string, deskSlotID, handSlotID int) {
	if !g.CanMoveCardFromDeskToHand(playerID, deskSlotID, handSlotID) {
		return
	}
	p := g.PlayerByID(playerID)
	ci := g.Desk[deskSlotID].take()
	p.AddMana(g.placementCost(p, ci, deskSlotID))
	p.Hand[handSlotID].put(ci)
}

// CanMoveCardFromHandToHand reports whether the player may rearrange a hand
// card. Rearranging the hand is allowed at any point of a running match,
// including the opponent's turn.
func (g *Game) CanMoveCardFromHandToHand(playerID string, fromSlotID, toSlotID int) bool {
	if g.State == StatusWaitingForPlayers || g.State == StatusComplete {
		return false
	}
	if fromSlotID < 0 || fromSlotID >= HandSize || toSlotID < 0 || toSlotID >= HandSize {
		return false
	}
	p := g.PlayerByID(playerID)
	if p == nil {
		return false
	}
	return p.Hand[fromSlotID].Occupied() && !p.Hand[toSlotID].Occupied()
}

// MoveCardFromHandToHand rearranges a card within the player's hand. No-op
// when the move is illegal.
func (g *Game) MoveCardFromHandToHand(playerID string, fromSlotID, toSlotID int) {
	if !g.CanMoveCardFromHandToHand(playerID, fromSlotID, toSlotID) {
		return
	}
	p := g.PlayerByID(playerID)
	p.Hand[toSlotID].put(p.Hand[fromSlotID].take())
}

// CanMoveCardFromDeskToDesk reports whether the player may shift a desk card
// to another slot. Own cards move to any empty slot. An opponent's card only
// slides through territory the card's owner already holds: every slot
// strictly between source and destination must be empty or occupied by a
// card of the same owner. Pinned cards never move.
func (g *Game) CanMoveCardFromDeskToDesk(playerID string, fromSlotID, toSlotID int) bool {
	if !g.IsPlayerTurn(playerID) {
		return false
	}
	if fromSlotID < 0 || fromSlotID >= DeskSize || toSlotID < 0 || toSlotID >= DeskSize {
		return false
	}
	if fromSlotID == toSlotID {
		return false
	}
	from := &g.Desk[fromSlotID]
	if !from.Occupied() || from.Instance.Pinned || g.Desk[toSlotID].Occupied() {
		return false
	}
	if from.Instance.Owner == playerID {
		return true
	}

	dir := 1
	if toSlotID < fromSlotID {
		dir = -1
	}
	for i := fromSlotID + dir; i != toSlotID; i += dir {
		slot := &g.Desk[i]
		if slot.Occupied() && slot.Instance.Owner != from.Instance.Owner {
			return false
		}
	}
	return true
}

// MoveCardFromDeskToDesk shifts a desk card to another slot. No-op when the
// move is illegal.
func (g *Game) MoveCardFromDeskToDesk(playerID string, fromSlotID, toSlotID int) {
	if !g.CanMoveCardFromDeskToDesk(playerID, fromSlotID, toSlotID) {
		return
	}
	g.Desk[toSlotID].put(g.Desk[fromSlotID].take())
}

// CanUseEnchantOn reports whether the player may fire the enchant in
// enchantSlotID at desk slot targetSlotID.
func (g *Game) CanUseEnchantOn(playerID string, enchantSlotID, targetSlotID int) bool {
	if !g.IsPlayerTurn(playerID) {
		return false
	}
	if enchantSlotID < 0 || enchantSlotID >= EnchantSlots || targetSlotID < 0 || targetSlotID >= DeskSize {
		return false
	}
	p := g.PlayerByID(playerID)
	slot := &p.Enchants[enchantSlotID]
	if !slot.Occupied() {
		return false
	}
	card := g.catalog.ByInstance(slot.Instance)
	if card.Kind != KindEnchant {
		return false
	}

	ctx := g.enchantContext(p, slot.Instance, targetSlotID)
	if card.IsAffected != nil && !card.IsAffected(ctx) {
		return false
	}
	return p.Mana >= g.cardManaCost(card, ctx)
}

// UseEnchantOn fires an enchant at a desk slot, debits its mana cost, and
// returns the actions it produced. The enchant stays in its slot for reuse.
// No-op when the use is illegal.
func (g *Game) UseEnchantOn(playerID string, enchantSlotID, targetSlotID int) []Action {
	if !g.CanUseEnchantOn(playerID, enchantSlotID, targetSlotID) {
		return nil
	}
	p := g.PlayerByID(playerID)
	ci := p.Enchants[enchantSlotID].Instance
	card := g.catalog.ByInstance(ci)

	ctx := g.enchantContext(p, ci, targetSlotID)
	p.AddMana(-g.cardManaCost(card, ctx))
	card.Action(ctx)
	return ctx.Log.Actions()
}

func (g *Game) enchantContext(p *Player, ci *CardInstance, targetSlotID int) *ActionContext {
	return &ActionContext{
		Game:         g,
		Log:          newActionLog(g.newActionID),
		TargetSlotID: targetSlotID,
		Player:       p,
		Opponent:     g.OpponentOf(p.ID),
		Instance:     ci,
		visited:      make(map[int]bool),
	}
}

// placementCost is the mana price of putting a card onto a given desk slot.
func (g *Game) placementCost(p *Player, ci *CardInstance, deskSlotID int) int {
	card := g.catalog.ByInstance(ci)
	ctx := &ActionContext{
		Game:         g,
		TargetSlotID: deskSlotID,
		Player:       p,
		Opponent:     g.OpponentOf(p.ID),
		Instance:     ci,
	}
	return g.cardManaCost(card, ctx)
}

// cardManaCost evaluates a card's cost function; cards without one are free.
func (g *Game) cardManaCost(card *Card, ctx *ActionContext) int {
	if card.ManaCost == nil {
		return 0
	}
	return card.ManaCost(ctx)
}

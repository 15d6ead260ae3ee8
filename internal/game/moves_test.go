package game

import "testing"

// TestHandToDesk: the active player places a hand card onto an empty desk
// slot.
func TestHandToDesk(t *testing.T) {
	g := newTestGame(t)
	g.MoveCardFromHandToDesk("p1", 0, 2)

	if !g.Desk[2].Occupied() {
		t.Fatal("desk slot 2 should hold the placed card")
	}
	if g.Desk[2].Instance.Owner != "p1" {
		t.Errorf("placed card owner = %s, want p1", g.Desk[2].Instance.Owner)
	}
	if g.PlayerByID("p1").Hand[0].Occupied() {
		t.Error("hand slot 0 should be empty after placing")
	}
}

// TestHandToDeskGuards: placement is refused off-turn, from an empty hand
// slot, onto an occupied desk slot, and past the per-player desk cap.
func TestHandToDeskGuards(t *testing.T) {
	g := newTestGame(t)

	g.MoveCardFromHandToDesk("p2", 0, 0)
	if g.Desk[0].Occupied() {
		t.Error("off-turn placement should be a no-op")
	}

	placeCard(t, g, 1, CardShield, "p2")
	g.MoveCardFromHandToDesk("p1", 0, 1)
	if g.Desk[1].Instance.Owner != "p2" {
		t.Error("placement onto an occupied slot should be a no-op")
	}

	p1 := g.PlayerByID("p1")
	p1.Hand[5].take()
	g.MoveCardFromHandToDesk("p1", 5, 0)
	if g.Desk[0].Occupied() {
		t.Error("placement from an empty hand slot should be a no-op")
	}

	// Three own desk cards is the cap.
	g.MoveCardFromHandToDesk("p1", 0, 0)
	g.MoveCardFromHandToDesk("p1", 1, 2)
	g.MoveCardFromHandToDesk("p1", 2, 3)
	g.MoveCardFromHandToDesk("p1", 3, 4)
	if g.Desk[4].Occupied() {
		t.Error("fourth own desk card should be refused")
	}
}

// TestDeskToHandRoundTrip: the owner retracts their desk card into a free
// hand slot.
func TestDeskToHandRoundTrip(t *testing.T) {
	g := newTestGame(t)
	g.MoveCardFromHandToDesk("p1", 0, 3)
	g.MoveCardFromDeskToHand("p1", 3, 0)

	if g.Desk[3].Occupied() {
		t.Error("desk slot should be empty after retraction")
	}
	if !g.PlayerByID("p1").Hand[0].Occupied() {
		t.Error("hand slot should hold the retracted card")
	}
}

// TestDeskToHandGuards: only the owner retracts, never a pinned card, and
// never into an occupied hand slot.
func TestDeskToHandGuards(t *testing.T) {
	g := newTestGame(t)
	p1 := g.PlayerByID("p1")
	p1.Hand[0].take()
	p1.Hand[1].take()

	placeCard(t, g, 0, CardShield, "p2")
	g.MoveCardFromDeskToHand("p1", 0, 0)
	if !g.Desk[0].Occupied() {
		t.Error("retracting the opponent's card should be a no-op")
	}

	own := placeCard(t, g, 1, CardArrow, "p1")
	own.Pinned = true
	g.MoveCardFromDeskToHand("p1", 1, 0)
	if !g.Desk[1].Occupied() {
		t.Error("retracting a pinned card should be a no-op")
	}

	placeCard(t, g, 2, CardArrow, "p1")
	g.MoveCardFromDeskToHand("p1", 2, 5)
	if !g.Desk[2].Occupied() {
		t.Error("retracting into an occupied hand slot should be a no-op")
	}
	g.MoveCardFromDeskToHand("p1", 2, 0)
	if g.Desk[2].Occupied() {
		t.Error("legal retraction should succeed")
	}
}

// TestHandToHandAnyTime: rearranging the hand works even on the opponent's
// turn.
func TestHandToHandAnyTime(t *testing.T) {
	g := newTestGame(t)
	p2 := g.PlayerByID("p2")
	p2.Hand[5].take()

	// p1 is active; p2 rearranges anyway.
	g.MoveCardFromHandToHand("p2", 0, 5)
	if p2.Hand[0].Occupied() || !p2.Hand[5].Occupied() {
		t.Error("hand rearrangement should work off-turn")
	}

	g.MoveCardFromHandToHand("p2", 1, 2)
	if !p2.Hand[1].Occupied() {
		t.Error("moving onto an occupied hand slot should be a no-op")
	}
}

// TestDeskToDeskOwnCard: the active player slides their own card to any empty
// slot.
func TestDeskToDeskOwnCard(t *testing.T) {
	g := newTestGame(t)
	placeCard(t, g, 0, CardArrow, "p1")
	placeCard(t, g, 3, CardShield, "p2")

	g.MoveCardFromDeskToDesk("p1", 0, 5)
	if g.Desk[0].Occupied() || !g.Desk[5].Occupied() {
		t.Error("own card should move over the opponent's card freely")
	}
}

// TestDeskToDeskOpponentCardBlocked: an opponent's card cannot be dragged
// past a slot held by its mover's side.
func TestDeskToDeskOpponentCardBlocked(t *testing.T) {
	g := newTestGame(t)
	placeCard(t, g, 0, CardArrow, "p2")
	placeCard(t, g, 2, CardShield, "p1")

	// p1 drags p2's card from 0 toward 4; slot 2 holds p1's own card, which
	// does not belong to the moved card's owner.
	g.MoveCardFromDeskToDesk("p1", 0, 4)
	if !g.Desk[0].Occupied() {
		t.Error("blocked drag should be a no-op")
	}

	// Dragging to slot 1 crosses nothing.
	g.MoveCardFromDeskToDesk("p1", 0, 1)
	if g.Desk[0].Occupied() || !g.Desk[1].Occupied() {
		t.Error("adjacent drag of the opponent's card should succeed")
	}
}

// TestDeskToDeskOpponentCardThroughOwnTerritory: intervening slots occupied
// by the moved card's owner do not block the drag.
func TestDeskToDeskOpponentCardThroughOwnTerritory(t *testing.T) {
	g := newTestGame(t)
	placeCard(t, g, 0, CardArrow, "p2")
	placeCard(t, g, 1, CardShield, "p2")

	g.MoveCardFromDeskToDesk("p1", 0, 3)
	if g.Desk[0].Occupied() || !g.Desk[3].Occupied() {
		t.Error("drag through the owner's territory should succeed")
	}
}

// TestDeskToDeskPinnedCard: pinned cards never move, not even by their owner.
func TestDeskToDeskPinnedCard(t *testing.T) {
	g := newTestGame(t)
	ci := placeCard(t, g, 0, CardArrow, "p1")
	ci.Pinned = true
	g.MoveCardFromDeskToDesk("p1", 0, 1)
	if !g.Desk[0].Occupied() {
		t.Error("pinned card should stay put")
	}
}

// TestUseEnchantPinsCard: the pin enchant pins a desk card, debits the
// slot-scaled mana cost, and stays in its enchant slot.
func TestUseEnchantPinsCard(t *testing.T) {
	g := newTestGame(t)
	p1 := g.PlayerByID("p1")
	p1.Mana = ManaMax
	ci := placeCard(t, g, 2, CardArrow, "p2")

	actions := g.UseEnchantOn("p1", 0, 2)
	if !ci.Pinned {
		t.Fatal("target card should be pinned")
	}
	if len(actions) != 1 || actions[0].Type != ActionPin || actions[0].SlotID != 2 {
		t.Fatalf("got %+v, want one PIN at slot 2", actions)
	}
	if p1.Mana != ManaMax-1 {
		t.Errorf("mana = %d, want %d", p1.Mana, ManaMax-1)
	}
	if !p1.Enchants[0].Occupied() {
		t.Error("enchant should remain in its slot for reuse")
	}
}

// TestUseEnchantGuards: enchant use is refused off-turn, on empty targets,
// and without enough mana.
func TestUseEnchantGuards(t *testing.T) {
	g := newTestGame(t)
	p1 := g.PlayerByID("p1")
	placeCard(t, g, 0, CardArrow, "p2")

	if g.CanUseEnchantOn("p2", 0, 0) {
		t.Error("off-turn enchant use should be refused")
	}
	if g.CanUseEnchantOn("p1", 0, 1) {
		t.Error("enchant on an empty desk slot should be refused")
	}

	// Slot 0 costs 3; p1 starts with 1 mana.
	p1.Mana = 1
	if actions := g.UseEnchantOn("p1", 0, 0); actions != nil {
		t.Error("enchant without enough mana should be a no-op")
	}
	if g.Desk[0].Instance.Pinned {
		t.Error("target should stay unpinned after a refused use")
	}

	if g.CanUseEnchantOn("p1", 1, 0) {
		t.Error("empty enchant slot should be refused")
	}
}

// TestMoveBoundsChecks: out-of-range slot indices degrade to no-ops instead
// of panicking.
func TestMoveBoundsChecks(t *testing.T) {
	g := newTestGame(t)
	g.MoveCardFromHandToDesk("p1", -1, 0)
	g.MoveCardFromHandToDesk("p1", 0, DeskSize)
	g.MoveCardFromDeskToHand("p1", DeskSize, 0)
	g.MoveCardFromHandToHand("p1", 0, HandSize)
	g.MoveCardFromDeskToDesk("p1", -1, 2)
	g.UseEnchantOn("p1", EnchantSlots, 0)
	g.UseEnchantOn("p1", 0, -1)

	for i := range g.Desk {
		if g.Desk[i].Occupied() {
			t.Fatalf("desk slot %d occupied after out-of-range moves", i)
		}
	}
}

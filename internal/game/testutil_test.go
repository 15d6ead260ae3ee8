package game

import (
	"fmt"
	"testing"
)

// seqIDs returns an action-id generator producing "a1", "a2", ...
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("a%d", n)
	}
}

// fillerDraw is a distributor that always yields the same card, so joins are
// deterministic and hands are predictable.
func fillerDraw(id CardID) *Distributor {
	return NewDistributor([]WeightNode{{Value: id, Weight: 1}}, nil)
}

// newTestGame builds a two-player match in PLAYER_TURN with p1 active. Both
// hands are filled with ARROW filler.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(Config{
		ID:        "test",
		Draw:      fillerDraw(CardArrow),
		ActionIDs: seqIDs(),
	})
	if p := g.AddPlayer("p1", PlayerProps{Name: "Alice"}); p == nil {
		t.Fatal("p1 failed to join")
	}
	if p := g.AddPlayer("p2", PlayerProps{Name: "Bob"}); p == nil {
		t.Fatal("p2 failed to join")
	}
	if g.State != StatusPlayerTurn {
		t.Fatalf("expected PLAYER_TURN after both joins, got %s", g.State)
	}
	return g
}

// placeCard puts a fresh instance of the card directly onto a desk slot,
// bypassing move legality and mana. Tests use it to stage desks.
func placeCard(t *testing.T, g *Game, slotID int, cardID CardID, owner string) *CardInstance {
	t.Helper()
	if g.Desk[slotID].Occupied() {
		t.Fatalf("desk slot %d already occupied", slotID)
	}
	ci := g.Catalog().ByID(cardID).NewInstance(owner)
	g.Desk[slotID].put(ci)
	return ci
}

// enterExecution stages the desk and flips the game into EXECUTION_TURN by
// playing out both players' turns.
func enterExecution(t *testing.T, g *Game) {
	t.Helper()
	g.CompleteTurn(g.Turn.PlayerID)
	g.CompleteTurn(g.Turn.PlayerID)
	if g.State != StatusExecutionTurn {
		t.Fatalf("expected EXECUTION_TURN, got %s", g.State)
	}
}

// runExecution drives PerformExecutionTurn until the state leaves
// EXECUTION_TURN, returning all actions in resolution order.
func runExecution(t *testing.T, g *Game) []Action {
	t.Helper()
	var all []Action
	for i := 0; g.State == StatusExecutionTurn; i++ {
		if i > 2*DeskSize {
			t.Fatal("execution turn did not terminate")
		}
		all = append(all, g.PerformExecutionTurn()...)
	}
	return all
}

// actionsOfType filters an action batch by type.
func actionsOfType(actions []Action, typ ActionType) []Action {
	var out []Action
	for _, a := range actions {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}

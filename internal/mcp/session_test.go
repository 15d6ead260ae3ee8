package mcp

import (
	"encoding/json"
	"testing"

	"github.com/spelldesk/spelldesk/internal/game"
)

func TestNewMatchSessionSeatsBothPlayers(t *testing.T) {
	s := NewMatchSession("Alice", "Bob")

	if s.game.State != game.StatusPlayerTurn {
		t.Fatalf("state = %s, want PLAYER_TURN", s.game.State)
	}
	if s.game.Turn.PlayerID != PlayerOne {
		t.Errorf("active player = %s, want %s", s.game.Turn.PlayerID, PlayerOne)
	}
	if got := s.game.PlayerByID(PlayerOne).Name; got != "Alice" {
		t.Errorf("p1 name = %s, want Alice", got)
	}
}

func TestDrainExecutionResolvesWholeRound(t *testing.T) {
	s := NewMatchSession("Alice", "Bob")
	g := s.game

	// Stage an arrow directly so the drain has work.
	arrow := g.Catalog().ByID(game.CardArrow).NewInstance(PlayerOne)
	g.Desk[0].Instance = arrow
	g.CompleteTurn(PlayerOne)
	g.CompleteTurn(PlayerTwo)

	actions := s.drainExecution()
	if g.State != game.StatusPlayerTurn {
		t.Fatalf("state after drain = %s, want PLAYER_TURN", g.State)
	}
	if len(actions) != 1 || actions[0].Type != game.ActionDamage {
		t.Fatalf("drained actions = %+v, want one DAMAGE", actions)
	}
	if g.Desk[0].Occupied() {
		t.Error("desk should be cleared after the round")
	}
}

func TestRespondMarshalsState(t *testing.T) {
	s := NewMatchSession("Alice", "Bob")
	raw := s.respond(nil)

	var resp struct {
		State struct {
			ID      string `json:"id"`
			State   string `json:"state"`
			Players []struct {
				ID string `json:"id"`
			} `json:"players"`
		} `json:"state"`
		Events   []string `json:"events"`
		GameOver bool     `json:"game_over"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.State.State != string(game.StatusPlayerTurn) {
		t.Errorf("state = %s, want PLAYER_TURN", resp.State.State)
	}
	if len(resp.State.Players) != 2 {
		t.Errorf("players = %d, want 2", len(resp.State.Players))
	}
	if len(resp.Events) == 0 {
		t.Error("first respond should carry the join events")
	}
	if resp.GameOver {
		t.Error("fresh match should not be over")
	}

	// A second drain yields no stale events.
	raw = s.respond(nil)
	var again struct {
		Events []string `json:"events"`
	}
	if err := json.Unmarshal([]byte(raw), &again); err != nil {
		t.Fatal(err)
	}
	if len(again.Events) != 0 {
		t.Errorf("second respond events = %v, want none", again.Events)
	}
}

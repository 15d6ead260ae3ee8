package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spelldesk/spelldesk/internal/game"
)

func TestMemoryLoggerSequencesEvents(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewMatchCreatedEvent("m1"))
	l.Log(NewPlayerJoinedEvent("m1", "p1", "Alice"))
	l.Log(NewPlayerJoinedEvent("m1", "p2", "Bob"))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d seq = %d, want %d", i, e.Seq, i+1)
		}
	}

	joins := l.EventsOfType(EventPlayerJoined)
	if len(joins) != 2 {
		t.Errorf("got %d join events, want 2", len(joins))
	}
	if last := l.LastEvent(); last.Player != "p2" {
		t.Errorf("last event player = %s, want p2", last.Player)
	}
}

func TestTextLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewTurnCompletedEvent("m1", "p1"))

	out := buf.String()
	if !strings.Contains(out, "TurnCompleted") || !strings.Contains(out, "p1") {
		t.Errorf("unexpected output: %q", out)
	}
	if len(l.Events()) != 1 {
		t.Error("TextLogger should also retain events in memory")
	}
}

func TestFormatAction(t *testing.T) {
	cases := []struct {
		action game.Action
		want   string
	}{
		{game.Action{Type: game.ActionDamage, Target: "p2", Source: "p1", Damage: 3}, "p1 deals 3 damage to p2"},
		{game.Action{Type: game.ActionDamageBlocked, Target: "p2", Source: "p1", Damage: 6}, "p2's shield blocks 6 damage from p1"},
		{game.Action{Type: game.ActionHeal, Target: "p1", Heal: 4}, "p1 restores 4 health"},
		{game.Action{Type: game.ActionEffectAdded, Target: "p1", Effect: "HAS_SHIELD"}, "p1 gains HAS_SHIELD"},
		{game.Action{Type: game.ActionChangeOwner, Target: "p1", Card: "ARROW", SlotID: 2}, "p1 takes over ARROW at slot 2"},
	}
	for _, c := range cases {
		if got := FormatAction(c.action); got != c.want {
			t.Errorf("FormatAction(%s) = %q, want %q", c.action.Type, got, c.want)
		}
	}
}

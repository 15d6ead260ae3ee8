package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/spelldesk/spelldesk/internal/game"
)

// EventLogger is the interface for logging match events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	typ := e.Type.String()
	for len(typ) < 16 {
		typ += " "
	}
	return fmt.Sprintf("%s | %s", typ, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatAction renders one resolution action as a human-readable line.
func FormatAction(a game.Action) string {
	switch a.Type {
	case game.ActionDamage:
		return fmt.Sprintf("%s deals %d damage to %s", a.Source, a.Damage, a.Target)
	case game.ActionDamageBlocked:
		return fmt.Sprintf("%s's shield blocks %d damage from %s", a.Target, a.Damage, a.Source)
	case game.ActionHeal:
		return fmt.Sprintf("%s restores %d health", a.Target, a.Heal)
	case game.ActionEffectAdded:
		return fmt.Sprintf("%s gains %s", a.Target, a.Effect)
	case game.ActionEffectRemoved:
		return fmt.Sprintf("%s loses %s", a.Target, a.Effect)
	case game.ActionChangeOwner:
		return fmt.Sprintf("%s takes over %s at slot %d", a.Target, a.Card, a.SlotID)
	case game.ActionPin:
		return fmt.Sprintf("%s's %s is pinned at slot %d", a.Target, a.Card, a.SlotID)
	default:
		return fmt.Sprintf("%s on %s", a.Type, a.Target)
	}
}

// --- Helper constructors for common events ---

func NewMatchCreatedEvent(matchID string) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Type:    EventMatchCreated,
		Details: fmt.Sprintf("match %s created", matchID),
	}
}

func NewPlayerJoinedEvent(matchID, playerID, name string) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Player:  playerID,
		Type:    EventPlayerJoined,
		Details: fmt.Sprintf("%s (%s) joined match %s", name, playerID, matchID),
	}
}

func NewMatchStartedEvent(matchID, firstPlayerID string) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Player:  firstPlayerID,
		Type:    EventMatchStarted,
		Details: fmt.Sprintf("match %s started, %s to act", matchID, firstPlayerID),
	}
}

func NewCardPulledEvent(matchID, playerID string) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Player:  playerID,
		Type:    EventCardPulled,
		Details: fmt.Sprintf("%s pulls a card", playerID),
	}
}

func NewCardMovedEvent(matchID, playerID, kind string, from, to int) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Player:  playerID,
		Type:    EventCardMoved,
		Details: fmt.Sprintf("%s moves a card %s: %d → %d", playerID, kind, from, to),
	}
}

func NewEnchantUsedEvent(matchID, playerID string, card game.CardID, targetSlotID int) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Player:  playerID,
		Type:    EventEnchantUsed,
		Card:    string(card),
		SlotID:  targetSlotID,
		Details: fmt.Sprintf("%s uses %s on slot %d", playerID, card, targetSlotID),
	}
}

func NewTurnCompletedEvent(matchID, playerID string) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Player:  playerID,
		Type:    EventTurnCompleted,
		Details: fmt.Sprintf("%s ends their turn", playerID),
	}
}

func NewExecutionStartedEvent(matchID string, slotID int) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Type:    EventExecutionStarted,
		SlotID:  slotID,
		Details: fmt.Sprintf("execution starts at slot %d", slotID),
	}
}

func NewSlotResolvedEvent(matchID string, slotID int, card game.CardID) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Type:    EventSlotResolved,
		Card:    string(card),
		SlotID:  slotID,
		Details: fmt.Sprintf("slot %d resolves %s", slotID, card),
	}
}

func NewActionAppliedEvent(matchID string, a game.Action) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Player:  a.Target,
		Type:    EventActionApplied,
		Card:    string(a.Card),
		SlotID:  a.SlotID,
		Details: FormatAction(a),
	}
}

func NewRoundCompletedEvent(matchID, nextPlayerID string) GameEvent {
	return GameEvent{
		MatchID: matchID,
		Player:  nextPlayerID,
		Type:    EventRoundCompleted,
		Details: fmt.Sprintf("round complete, %s to act", nextPlayerID),
	}
}

func NewMatchCompletedEvent(matchID, winnerID string) GameEvent {
	details := "match complete: draw"
	if winnerID != "" {
		details = fmt.Sprintf("match complete: %s wins", winnerID)
	}
	return GameEvent{
		MatchID: matchID,
		Player:  winnerID,
		Type:    EventMatchCompleted,
		Details: details,
	}
}

package log

// EventType enumerates all observable match events.
type EventType int

const (
	EventMatchCreated EventType = iota
	EventPlayerJoined
	EventMatchStarted
	EventCardPulled
	EventCardMoved
	EventEnchantUsed
	EventTurnCompleted
	EventExecutionStarted
	EventSlotResolved
	EventActionApplied
	EventRoundCompleted
	EventMatchCompleted
)

func (e EventType) String() string {
	switch e {
	case EventMatchCreated:
		return "MatchCreated"
	case EventPlayerJoined:
		return "PlayerJoined"
	case EventMatchStarted:
		return "MatchStarted"
	case EventCardPulled:
		return "CardPulled"
	case EventCardMoved:
		return "CardMoved"
	case EventEnchantUsed:
		return "EnchantUsed"
	case EventTurnCompleted:
		return "TurnCompleted"
	case EventExecutionStarted:
		return "ExecutionStarted"
	case EventSlotResolved:
		return "SlotResolved"
	case EventActionApplied:
		return "ActionApplied"
	case EventRoundCompleted:
		return "RoundCompleted"
	case EventMatchCompleted:
		return "MatchCompleted"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	MatchID string    // match the event belongs to
	Player  string    // acting player id (if applicable)
	Type    EventType // event type
	Card    string    // card id (if applicable)
	SlotID  int       // desk slot (if applicable)
	Details string    // human-readable detail string
}

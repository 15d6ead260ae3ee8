package game

// Status is the lifecycle phase of a match.
type Status string

const (
	StatusWaitingForPlayers Status = "WAITING_FOR_PLAYERS"
	StatusPlayerTurn        Status = "PLAYER_TURN"
	StatusExecutionTurn     Status = "EXECUTION_TURN"
	StatusComplete          Status = "COMPLETE"
)

// CardKind separates placeable spells from instant-use enchants.
type CardKind string

const (
	KindSpell   CardKind = "SPELL"
	KindEnchant CardKind = "ENCHANT"
)

// CardID references a catalog entry.
type CardID string

// EffectID references an effect registry entry.
type EffectID string

const (
	DeskSize     = 6
	HandSize     = 6
	EnchantSlots = 2

	StartingHealth = 30
	ManaMax        = 3

	MaxPlayers            = 2
	MaxDeskCardsPerPlayer = 3

	// MaxTotalCards caps a player's hand plus desk cards; pulling is
	// blocked once it is reached.
	MaxTotalCards = 6
)

// TurnState tracks whose turn it is, how many player turns the current round
// has consumed, and which desk slot is resolving during the execution turn.
// SlotID == DeskSize is the past-the-end sentinel.
type TurnState struct {
	PlayerID string `json:"playerId"`
	Turns    int    `json:"turns"`
	SlotID   int    `json:"slotId"`
}

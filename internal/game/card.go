package game

// Card is a static catalog entry. Behavior lives in the function fields:
// Action mutates game state through the context and appends to the action
// log; ManaCost, when set, gates placement or enchant use; IsAffected, when
// set, restricts which desk slots an enchant may target.
type Card struct {
	ID          CardID
	Kind        CardKind
	Name        string
	Icon        string
	Description string

	// DrawWeight is the card's default weight in the draw distributor.
	// Zero means the card is never drawn (enchants are seeded, not drawn).
	DrawWeight float64

	ManaCost   func(ctx *ActionContext) int
	IsAffected func(ctx *ActionContext) bool
	Action     func(ctx *ActionContext)
}

// CardInstance is a card in play: in a hand slot, on the desk, or in an
// enchant pool. ID references the catalog entry that defines its behavior.
type CardInstance struct {
	ID     CardID `json:"id"`
	Owner  string `json:"owner"`
	Pinned bool   `json:"pinned,omitempty"`
}

// NewInstance creates an instance of this card owned by the given player.
func (c *Card) NewInstance(owner string) *CardInstance {
	return &CardInstance{ID: c.ID, Owner: owner}
}

// CardSlot is one addressable position in the desk, a hand, or an enchant
// pool. An empty slot and an occupied slot are distinguished explicitly so
// the engine and its callers share one representation.
type CardSlot struct {
	Instance *CardInstance `json:"card,omitempty"`
}

// Occupied reports whether the slot holds a card.
func (s *CardSlot) Occupied() bool {
	return s.Instance != nil
}

func (s *CardSlot) take() *CardInstance {
	ci := s.Instance
	s.Instance = nil
	return ci
}

func (s *CardSlot) put(ci *CardInstance) {
	s.Instance = ci
}

func emptySlots(n int) []CardSlot {
	return make([]CardSlot, n)
}

// ActionContext is passed to card actions and effect hooks. Player and
// Opponent carry the attribution of the resolving card: when one card replays
// another, they stay bound to the replaying card's owner.
type ActionContext struct {
	Game *Game
	Log  *ActionLog

	// SlotID is the desk slot being resolved.
	SlotID int

	// TargetSlotID is the desk slot an enchant is aimed at. It doubles as
	// the destination slot when computing a placement cost.
	TargetSlotID int

	Player   *Player
	Opponent *Player
	Instance *CardInstance

	visited map[int]bool
}

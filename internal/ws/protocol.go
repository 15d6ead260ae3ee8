package ws

import "github.com/spelldesk/spelldesk/internal/game"

// Message types for the JSON protocol over websocket.

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "find_game" and "join_game"
	Name string `json:"name,omitempty"`
	Icon string `json:"icon,omitempty"`

	// For "join_game"
	GameID string `json:"gameId,omitempty"`

	// For the move messages: source and destination slot indices.
	From int `json:"from"`
	To   int `json:"to"`

	// For "use_enchant"
	EnchantSlot int `json:"enchantSlot"`
	TargetSlot  int `json:"targetSlot"`
}

// Client message types.
const (
	MsgFindGame     = "find_game"
	MsgJoinGame     = "join_game"
	MsgPullCard     = "pull_card"
	MsgCompleteTurn = "complete_turn"
	MsgMoveHandDesk = "move_hand_desk"
	MsgMoveDeskHand = "move_desk_hand"
	MsgMoveDeskDesk = "move_desk_desk"
	MsgMoveHandHand = "move_hand_hand"
	MsgUseEnchant   = "use_enchant"
)

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "game_joined"
	GameID   string `json:"gameId,omitempty"`
	PlayerID string `json:"playerId,omitempty"`

	// For "game_update"
	Update *GameUpdate `json:"update,omitempty"`

	// For "actions": the batch produced by one resolution step or enchant.
	Actions []game.Action `json:"actions,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`
}

// Server message types.
const (
	MsgGameJoined = "game_joined"
	MsgGameUpdate = "game_update"
	MsgActions    = "actions"
	MsgError      = "error"
)

// Update field names.
const (
	FieldState   = "state"
	FieldTurn    = "turn"
	FieldDesk    = "desk"
	FieldPlayers = "players"
)

// GameUpdate is a partial state push: only the fields named in Fields carry
// data, so clients patch rather than replace their local copy.
type GameUpdate struct {
	ID     string   `json:"id"`
	Fields []string `json:"fields"`

	State   game.Status     `json:"state,omitempty"`
	Turn    *game.TurnState `json:"turn,omitempty"`
	Desk    []game.CardSlot `json:"desk,omitempty"`
	Players []*game.Player  `json:"players,omitempty"`
}

// buildUpdate snapshots the named fields of the game.
func buildUpdate(g *game.Game, fields ...string) *GameUpdate {
	u := &GameUpdate{ID: g.ID, Fields: fields}
	for _, f := range fields {
		switch f {
		case FieldState:
			u.State = g.State
		case FieldTurn:
			turn := g.Turn
			u.Turn = &turn
		case FieldDesk:
			u.Desk = append([]game.CardSlot(nil), g.Desk...)
		case FieldPlayers:
			u.Players = g.Players
		}
	}
	return u
}

// fullUpdate snapshots every field.
func fullUpdate(g *game.Game) *GameUpdate {
	return buildUpdate(g, FieldState, FieldTurn, FieldDesk, FieldPlayers)
}

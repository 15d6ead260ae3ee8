package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/spelldesk/spelldesk/internal/game"
	"github.com/spelldesk/spelldesk/internal/log"
)

// Player ids for the hotseat session. The MCP client drives both sides.
const (
	PlayerOne = "p1"
	PlayerTwo = "p2"
)

// MatchSession holds the state of a single MCP match session.
type MatchSession struct {
	game    *game.Game
	events  *log.MemoryLogger
	drained int
}

// NewMatchSession creates a match and seats both players immediately.
func NewMatchSession(nameOne, nameTwo string) *MatchSession {
	id := uuid.NewString()
	s := &MatchSession{
		game:   game.NewGame(game.Config{ID: id}),
		events: log.NewMemoryLogger(),
	}
	s.events.Log(log.NewMatchCreatedEvent(id))
	p1 := s.game.AddPlayer(PlayerOne, game.PlayerProps{Name: nameOne})
	p2 := s.game.AddPlayer(PlayerTwo, game.PlayerProps{Name: nameTwo})
	s.events.Log(log.NewPlayerJoinedEvent(id, PlayerOne, p1.Name))
	s.events.Log(log.NewPlayerJoinedEvent(id, PlayerTwo, p2.Name))
	s.events.Log(log.NewMatchStartedEvent(id, s.game.Turn.PlayerID))
	return s
}

// drainExecution resolves the whole execution turn synchronously and returns
// every action produced, in resolution order.
func (s *MatchSession) drainExecution() []game.Action {
	var all []game.Action
	for s.game.State == game.StatusExecutionTurn {
		slotID := s.game.Turn.SlotID
		var cardID game.CardID
		if slotID < game.DeskSize && s.game.Desk[slotID].Occupied() {
			cardID = s.game.Desk[slotID].Instance.ID
		}
		actions := s.game.PerformExecutionTurn()
		if cardID != "" {
			s.events.Log(log.NewSlotResolvedEvent(s.game.ID, slotID, cardID))
		}
		for _, a := range actions {
			s.events.Log(log.NewActionAppliedEvent(s.game.ID, a))
		}
		all = append(all, actions...)
	}
	if s.game.State == game.StatusComplete {
		s.events.Log(log.NewMatchCompletedEvent(s.game.ID, s.winner()))
	} else {
		s.events.Log(log.NewRoundCompletedEvent(s.game.ID, s.game.Turn.PlayerID))
	}
	return all
}

func (s *MatchSession) winner() string {
	for _, p := range s.game.Players {
		if s.game.IsWinner(p.ID) {
			return p.ID
		}
	}
	return ""
}

// drainEvents returns event lines accumulated since the last drain.
func (s *MatchSession) drainEvents() []string {
	events := s.events.Events()
	var lines []string
	for _, e := range events[s.drained:] {
		lines = append(lines, log.FormatEvent(e))
	}
	s.drained = len(events)
	return lines
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	State    *game.Game    `json:"state"`
	Actions  []game.Action `json:"actions,omitempty"`
	Events   []string      `json:"events"`
	GameOver bool          `json:"game_over"`
	Winner   string        `json:"winner,omitempty"`
}

// respond builds the standard tool response from the current session state.
func (s *MatchSession) respond(actions []game.Action) string {
	resp := &ToolResponse{
		State:   s.game,
		Actions: actions,
		Events:  s.drainEvents(),
	}
	if s.game.State == game.StatusComplete {
		resp.GameOver = true
		resp.Winner = s.winner()
	}
	if resp.Events == nil {
		resp.Events = []string{}
	}
	return respondJSON(resp)
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}

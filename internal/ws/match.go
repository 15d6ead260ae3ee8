package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/spelldesk/spelldesk/internal/game"
	"github.com/spelldesk/spelldesk/internal/log"
)

// client is one connected player within a match.
type client struct {
	playerID string
	conn     *websocket.Conn
	ctx      context.Context
}

// Match wraps one game with its connections and the execution scheduler. All
// game access goes through mu; the engine itself is not concurrency-safe.
type Match struct {
	id     string
	game   *game.Game
	tick   time.Duration
	logger *zap.Logger
	events log.EventLogger

	// onComplete, when set, is told the match finished so the owner can
	// retire it.
	onComplete func(id string)

	mu      sync.Mutex
	clients map[string]*client

	// inExecution keeps the resolution timer idempotent: only one timer
	// chain runs per execution turn no matter how often scheduling is
	// requested.
	inExecution bool
}

func newMatch(id string, g *game.Game, tick time.Duration, logger *zap.Logger, events log.EventLogger, onComplete func(id string)) *Match {
	return &Match{
		id:         id,
		game:       g,
		tick:       tick,
		logger:     logger.With(zap.String("game_id", id)),
		events:     events,
		onComplete: onComplete,
		clients:    make(map[string]*client),
	}
}

// join seats a player and announces the new roster. Returns false when the
// match is full or the id is taken.
func (m *Match) join(c *client, name, icon string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.game.AddPlayer(c.playerID, game.PlayerProps{Name: name, Icon: icon})
	if p == nil {
		return false
	}
	m.clients[c.playerID] = c
	m.events.Log(log.NewPlayerJoinedEvent(m.id, c.playerID, p.Name))
	m.logger.Info("player joined", zap.String("player_id", c.playerID), zap.String("name", p.Name))

	m.sendLocked(c, ServerMessage{Type: MsgGameJoined, GameID: m.id, PlayerID: c.playerID})
	m.broadcastLocked(ServerMessage{Type: MsgGameUpdate, Update: fullUpdate(m.game)})
	if m.game.State == game.StatusPlayerTurn {
		m.events.Log(log.NewMatchStartedEvent(m.id, m.game.Turn.PlayerID))
	}
	return true
}

// leave drops a player's connection. The game state is untouched so a
// reconnect can resume.
func (m *Match) leave(playerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, playerID)
	m.logger.Info("player disconnected", zap.String("player_id", playerID))
}

// handle dispatches one client message. Illegal operations stay silent
// no-ops: they reach the event log only when the engine predicate allows
// them, and the client learns the outcome from the broadcast update either
// way.
func (m *Match) handle(playerID string, msg ClientMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch msg.Type {
	case MsgPullCard:
		if m.game.CanPullCard(playerID) {
			m.game.PullCard(playerID)
			m.events.Log(log.NewCardPulledEvent(m.id, playerID))
		}
		m.broadcastLocked(ServerMessage{Type: MsgGameUpdate, Update: buildUpdate(m.game, FieldPlayers)})

	case MsgCompleteTurn:
		if m.game.IsPlayerTurn(playerID) {
			m.game.CompleteTurn(playerID)
			m.events.Log(log.NewTurnCompletedEvent(m.id, playerID))
			if m.game.State == game.StatusExecutionTurn {
				m.events.Log(log.NewExecutionStartedEvent(m.id, m.game.Turn.SlotID))
				m.scheduleExecutionLocked()
			}
		}
		m.broadcastLocked(ServerMessage{Type: MsgGameUpdate, Update: buildUpdate(m.game, FieldState, FieldTurn, FieldPlayers)})

	case MsgMoveHandDesk:
		if m.game.CanMoveCardFromHandToDesk(playerID, msg.From, msg.To) {
			m.game.MoveCardFromHandToDesk(playerID, msg.From, msg.To)
			m.events.Log(log.NewCardMovedEvent(m.id, playerID, "hand→desk", msg.From, msg.To))
		}
		m.broadcastLocked(ServerMessage{Type: MsgGameUpdate, Update: buildUpdate(m.game, FieldDesk, FieldPlayers)})

	case MsgMoveDeskHand:
		if m.game.CanMoveCardFromDeskToHand(playerID, msg.From, msg.To) {
			m.game.MoveCardFromDeskToHand(playerID, msg.From, msg.To)
			m.events.Log(log.NewCardMovedEvent(m.id, playerID, "desk→hand", msg.From, msg.To))
		}
		m.broadcastLocked(ServerMessage{Type: MsgGameUpdate, Update: buildUpdate(m.game, FieldDesk, FieldPlayers)})

	case MsgMoveDeskDesk:
		if m.game.CanMoveCardFromDeskToDesk(playerID, msg.From, msg.To) {
			m.game.MoveCardFromDeskToDesk(playerID, msg.From, msg.To)
			m.events.Log(log.NewCardMovedEvent(m.id, playerID, "desk→desk", msg.From, msg.To))
		}
		m.broadcastLocked(ServerMessage{Type: MsgGameUpdate, Update: buildUpdate(m.game, FieldDesk)})

	case MsgMoveHandHand:
		m.game.MoveCardFromHandToHand(playerID, msg.From, msg.To)
		m.broadcastLocked(ServerMessage{Type: MsgGameUpdate, Update: buildUpdate(m.game, FieldPlayers)})

	case MsgUseEnchant:
		actions := m.game.UseEnchantOn(playerID, msg.EnchantSlot, msg.TargetSlot)
		if len(actions) > 0 {
			if ci := m.game.PlayerByID(playerID).Enchants[msg.EnchantSlot].Instance; ci != nil {
				m.events.Log(log.NewEnchantUsedEvent(m.id, playerID, ci.ID, msg.TargetSlot))
			}
			m.broadcastLocked(ServerMessage{Type: MsgActions, Actions: actions})
		}
		m.broadcastLocked(ServerMessage{Type: MsgGameUpdate, Update: buildUpdate(m.game, FieldDesk, FieldPlayers)})

	default:
		m.logger.Warn("unknown message type", zap.String("player_id", playerID), zap.String("type", msg.Type))
	}
}

// scheduleExecutionLocked arms the resolution timer. Callers hold mu.
func (m *Match) scheduleExecutionLocked() {
	if m.inExecution {
		return
	}
	m.inExecution = true
	time.AfterFunc(m.tick, m.executionStep)
}

// executionStep resolves one desk slot, pushes the results, and rearms the
// timer until the execution turn is over.
func (m *Match) executionStep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.game.State != game.StatusExecutionTurn {
		m.inExecution = false
		return
	}

	slotID := m.game.Turn.SlotID
	var cardID game.CardID
	if slotID < game.DeskSize && m.game.Desk[slotID].Occupied() {
		cardID = m.game.Desk[slotID].Instance.ID
	}
	actions := m.game.PerformExecutionTurn()
	if cardID != "" {
		m.events.Log(log.NewSlotResolvedEvent(m.id, slotID, cardID))
	}
	if len(actions) > 0 {
		for _, a := range actions {
			m.events.Log(log.NewActionAppliedEvent(m.id, a))
		}
		m.broadcastLocked(ServerMessage{Type: MsgActions, Actions: actions})
	}
	m.broadcastLocked(ServerMessage{Type: MsgGameUpdate, Update: buildUpdate(m.game, FieldState, FieldTurn, FieldDesk, FieldPlayers)})

	switch m.game.State {
	case game.StatusExecutionTurn:
		time.AfterFunc(m.tick, m.executionStep)
	case game.StatusComplete:
		m.inExecution = false
		winner := ""
		for _, p := range m.game.Players {
			if m.game.IsWinner(p.ID) {
				winner = p.ID
			}
		}
		m.events.Log(log.NewMatchCompletedEvent(m.id, winner))
		m.logger.Info("match complete", zap.String("winner", winner))
		if m.onComplete != nil {
			// The owner locks its own matchmaking state; hand off outside mu.
			go m.onComplete(m.id)
		}
	default:
		m.inExecution = false
		m.events.Log(log.NewRoundCompletedEvent(m.id, m.game.Turn.PlayerID))
	}
}

// broadcastLocked pushes one message to every connected client. Callers hold
// mu.
func (m *Match) broadcastLocked(msg ServerMessage) {
	for _, c := range m.clients {
		m.sendLocked(c, msg)
	}
}

func (m *Match) sendLocked(c *client, msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		m.logger.Error("marshal message", zap.Error(err))
		return
	}
	if err := c.conn.Write(c.ctx, websocket.MessageText, data); err != nil {
		m.logger.Warn("write to client failed", zap.String("player_id", c.playerID), zap.Error(err))
	}
}

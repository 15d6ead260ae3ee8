package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spelldesk/spelldesk/internal/game"
	"github.com/spelldesk/spelldesk/internal/log"
)

// GameFactory builds the game behind a new match. The server does not care
// how the catalog or draw weights are assembled.
type GameFactory func(id string) *game.Game

// Server is the websocket match server. It pairs players looking for a game
// and routes their messages to the right match.
type Server struct {
	tick    time.Duration
	logger  *zap.Logger
	events  log.EventLogger
	newGame GameFactory
	mux     *http.ServeMux

	// matchmaking state, guarded by the per-call serialization of joinMu
	joinMu  chan struct{}
	matches map[string]*Match
	pending *Match
}

// NewServer creates a match server resolving execution turns at the given
// tick interval.
func NewServer(tick time.Duration, logger *zap.Logger, events log.EventLogger, newGame GameFactory) *Server {
	if newGame == nil {
		newGame = func(id string) *game.Game {
			return game.NewGame(game.Config{ID: id})
		}
	}
	if events == nil {
		events = log.NewMemoryLogger()
	}
	s := &Server{
		tick:    tick,
		logger:  logger,
		events:  events,
		newGame: newGame,
		mux:     http.NewServeMux(),
		joinMu:  make(chan struct{}, 1),
		matches: make(map[string]*Match),
	}
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) lockJoin()   { s.joinMu <- struct{}{} }
func (s *Server) unlockJoin() { <-s.joinMu }

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.logger.Warn("websocket accept", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	c := &client{
		playerID: uuid.NewString(),
		conn:     conn,
		ctx:      ctx,
	}

	match, err := s.seat(ctx, c)
	if err != nil {
		s.sendError(c, err.Error())
		conn.Close(websocket.StatusPolicyViolation, "handshake failed")
		return
	}
	defer match.leave(c.playerID)

	for {
		var msg ClientMessage
		if err := readJSON(ctx, conn, &msg); err != nil {
			return
		}
		match.handle(c.playerID, msg)
	}
}

// seat performs the handshake: the first message must be find_game or
// join_game, and decides which match the connection belongs to.
func (s *Server) seat(ctx context.Context, c *client) (*Match, error) {
	var msg ClientMessage
	if err := readJSON(ctx, c.conn, &msg); err != nil {
		return nil, errHandshake
	}

	s.lockJoin()
	defer s.unlockJoin()

	switch msg.Type {
	case MsgFindGame:
		m := s.pending
		if m == nil {
			id := uuid.NewString()
			m = newMatch(id, s.newGame(id), s.tick, s.logger, s.events, s.removeMatch)
			s.matches[id] = m
			s.pending = m
			s.events.Log(log.NewMatchCreatedEvent(id))
			s.logger.Info("match created", zap.String("game_id", id))
		}
		if !m.join(c, msg.Name, msg.Icon) {
			return nil, errMatchFull
		}
		if len(m.game.Players) == game.MaxPlayers {
			s.pending = nil
		}
		return m, nil

	case MsgJoinGame:
		m, ok := s.matches[msg.GameID]
		if !ok {
			return nil, errUnknownGame
		}
		if !m.join(c, msg.Name, msg.Icon) {
			return nil, errMatchFull
		}
		if m == s.pending && len(m.game.Players) == game.MaxPlayers {
			s.pending = nil
		}
		return m, nil

	default:
		return nil, errHandshake
	}
}

// removeMatch retires a finished match so its id can no longer be joined and
// the match table does not grow without bound.
func (s *Server) removeMatch(id string) {
	s.lockJoin()
	defer s.unlockJoin()
	if s.pending != nil && s.pending.id == id {
		s.pending = nil
	}
	delete(s.matches, id)
	s.logger.Info("match retired", zap.String("game_id", id))
}

func (s *Server) sendError(c *client, detail string) {
	data, err := json.Marshal(ServerMessage{Type: MsgError, Error: detail})
	if err != nil {
		return
	}
	_ = c.conn.Write(c.ctx, websocket.MessageText, data)
}

func readJSON(ctx context.Context, conn *websocket.Conn, v any) error {
	_, data, err := conn.Read(ctx)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

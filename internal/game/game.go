package game

// Game is the root aggregate of one match. It is not safe for concurrent
// use: callers serialize all mutating calls per match.
type Game struct {
	ID      string     `json:"id"`
	State   Status     `json:"state"`
	Turn    TurnState  `json:"turn"`
	Desk    []CardSlot `json:"desk"`
	Players []*Player  `json:"players"`

	catalog     *Catalog
	effects     *EffectRegistry
	draw        *Distributor
	newActionID func() string
}

// Config assembles a match. Zero-value fields fall back to the standard
// catalog, effect registry, catalog-derived draw weights, and uuid action
// ids, so tests can swap in fixtures piecemeal.
type Config struct {
	ID        string
	Catalog   *Catalog
	Effects   *EffectRegistry
	Draw      *Distributor
	ActionIDs func() string
}

// NewGame creates a match waiting for players.
func NewGame(cfg Config) *Game {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	effects := cfg.Effects
	if effects == nil {
		effects = DefaultEffects()
	}
	draw := cfg.Draw
	if draw == nil {
		draw = NewDistributor(DefaultWeights(catalog), nil)
	}

	return &Game{
		ID:          cfg.ID,
		State:       StatusWaitingForPlayers,
		Desk:        emptySlots(DeskSize),
		catalog:     catalog,
		effects:     effects,
		draw:        draw,
		newActionID: cfg.ActionIDs,
	}
}

// Catalog exposes the card definitions this match plays with.
func (g *Game) Catalog() *Catalog {
	return g.catalog
}

// Effects exposes the effect registry this match plays with.
func (g *Game) Effects() *EffectRegistry {
	return g.effects
}

// AddPlayer joins a player, fills their hand from the draw distributor, and
// seeds the starting enchant. The second join starts the match. Returns nil
// if the match is full or the player already joined.
func (g *Game) AddPlayer(playerID string, props PlayerProps) *Player {
	if len(g.Players) >= MaxPlayers || g.HasPlayer(playerID) {
		return nil
	}

	p := newPlayer(playerID, props)
	p.Enchants[0].put(g.catalog.ByID(CardPin).NewInstance(playerID))
	g.Players = append(g.Players, p)

	for i := 0; i < HandSize; i++ {
		g.PullCard(playerID)
	}

	if g.Turn.PlayerID == "" {
		g.Turn.PlayerID = playerID
	}
	if len(g.Players) == MaxPlayers {
		g.nextTurn()
	}
	return p
}

// HasPlayer reports whether the player joined this match.
func (g *Game) HasPlayer(playerID string) bool {
	return g.PlayerByID(playerID) != nil
}

// PlayerByID returns the player with the given id, or nil.
func (g *Game) PlayerByID(playerID string) *Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// OpponentOf returns the other player, or nil before both have joined.
func (g *Game) OpponentOf(playerID string) *Player {
	for _, p := range g.Players {
		if p.ID != playerID {
			return p
		}
	}
	return nil
}

// IsPlayerTurn reports whether the given player holds the active turn.
func (g *Game) IsPlayerTurn(playerID string) bool {
	return g.State == StatusPlayerTurn && g.Turn.PlayerID == playerID
}

// IsWinner reports whether the player won. Only meaningful once the match is
// complete; equal final health is a draw and neither player wins.
func (g *Game) IsWinner(playerID string) bool {
	if g.State != StatusComplete {
		return false
	}
	p := g.PlayerByID(playerID)
	o := g.OpponentOf(playerID)
	if p == nil || o == nil {
		return false
	}
	return p.Health > o.Health
}

// CanPullCard reports whether the player may draw: their hand plus desk
// cards stay under the total cap and a hand slot is free.
func (g *Game) CanPullCard(playerID string) bool {
	p := g.PlayerByID(playerID)
	if p == nil || g.State == StatusComplete {
		return false
	}
	if g.totalPlayerCards(p) >= MaxTotalCards {
		return false
	}
	return p.freeHandSlot() >= 0
}

// PullCard draws one card from the distributor into the player's first free
// hand slot. No-op when CanPullCard is false.
func (g *Game) PullCard(playerID string) {
	if !g.CanPullCard(playerID) {
		return
	}
	p := g.PlayerByID(playerID)
	cardID := g.draw.Pick()
	p.Hand[p.freeHandSlot()].put(g.catalog.ByID(cardID).NewInstance(playerID))
}

// CompleteTurn ends the active player's turn. Calls from the wrong player or
// outside PLAYER_TURN are silent no-ops.
func (g *Game) CompleteTurn(playerID string) {
	if g.State != StatusPlayerTurn || g.Turn.PlayerID != playerID {
		return
	}
	g.nextTurn()
}

// nextTurn drives the WAITING → PLAYER_TURN ⇄ EXECUTION_TURN → COMPLETE
// cycle.
func (g *Game) nextTurn() {
	if len(g.Players) < MaxPlayers {
		return
	}

	switch g.State {
	case StatusWaitingForPlayers:
		// The first-seated player opens the match with one mana point.
		g.Turn.PlayerID = g.Players[0].ID
		g.State = StatusPlayerTurn
		g.Turn.Turns++
		g.Players[0].AddMana(1)

	case StatusPlayerTurn:
		if g.Turn.Turns >= 2 {
			// Both players acted: resolve the desk, starting from the
			// first occupied slot.
			g.State = StatusExecutionTurn
			if slotID, ok := g.nextDeskCard(-1); ok {
				g.Turn.SlotID = slotID
			} else {
				g.Turn.SlotID = DeskSize
			}
			g.Turn.Turns = 0
		} else {
			g.Turn.PlayerID = g.OpponentOf(g.Turn.PlayerID).ID
			g.Turn.Turns++
		}

	case StatusExecutionTurn:
		if g.deadPlayer() != nil {
			g.State = StatusComplete
			return
		}
		// Round complete: clear the desk and non-persistent effects, and
		// hand the next round to whoever acted last, with a mana point.
		g.State = StatusPlayerTurn
		g.Desk = emptySlots(DeskSize)
		g.clearRoundEffects()
		g.Turn.Turns++
		g.PlayerByID(g.Turn.PlayerID).AddMana(1)
	}
}

// PerformExecutionTurn resolves exactly one desk slot and returns the action
// batch it produced. Once the slot cursor passes the desk's end, the next
// call runs the round-completion transition instead. Outside EXECUTION_TURN
// it is a no-op.
func (g *Game) PerformExecutionTurn() []Action {
	if g.State != StatusExecutionTurn {
		return nil
	}
	if g.Turn.SlotID >= DeskSize {
		g.nextTurn()
		return nil
	}

	log := newActionLog(g.newActionID)
	if slot := &g.Desk[g.Turn.SlotID]; slot.Occupied() {
		ci := slot.Instance
		ctx := &ActionContext{
			Game:     g,
			Log:      log,
			SlotID:   g.Turn.SlotID,
			Player:   g.PlayerByID(ci.Owner),
			Opponent: g.OpponentOf(ci.Owner),
			Instance: ci,
			visited:  make(map[int]bool),
		}
		g.runEffectHooks(ctx, true)
		g.catalog.ByInstance(ci).Action(ctx)
		g.runEffectHooks(ctx, false)
	}

	if slotID, ok := g.nextDeskCard(g.Turn.SlotID); ok {
		g.Turn.SlotID = slotID
	} else {
		g.Turn.SlotID = DeskSize
	}
	return log.Actions()
}

// replayCardAt invokes another occupied slot's card action with the same
// attribution as the current context. The visited-slot guard bounds the
// recursion: a slot is replayed at most once per chain and never replays
// itself.
func (g *Game) replayCardAt(ctx *ActionContext, slotID int) {
	if slotID == ctx.SlotID || ctx.visited[slotID] {
		return
	}
	slot := &g.Desk[slotID]
	if !slot.Occupied() {
		return
	}

	ctx.visited[ctx.SlotID] = true
	ctx.visited[slotID] = true

	child := *ctx
	child.SlotID = slotID
	child.Instance = slot.Instance
	g.catalog.ByInstance(slot.Instance).Action(&child)
}

// runEffectHooks runs every player's effect hooks for the resolving slot, in
// player order then effect order.
func (g *Game) runEffectHooks(ctx *ActionContext, pre bool) {
	for _, p := range g.Players {
		effects := append([]EffectInstance(nil), p.Effects...)
		for _, ei := range effects {
			def := g.effects.ByInstance(ei)
			hook := def.PostAction
			if pre {
				hook = def.PreAction
			}
			if hook != nil {
				hook(ctx)
			}
		}
	}
}

func (g *Game) clearRoundEffects() {
	for _, p := range g.Players {
		kept := p.Effects[:0]
		for _, ei := range p.Effects {
			if g.effects.ByInstance(ei).Persistent {
				kept = append(kept, ei)
			}
		}
		p.Effects = kept
	}
}

func (g *Game) deadPlayer() *Player {
	for _, p := range g.Players {
		if p.Health <= 0 {
			return p
		}
	}
	return nil
}

// shieldEffect returns the id of the first shield-trait effect on the
// player.
func (g *Game) shieldEffect(p *Player) (EffectID, bool) {
	for _, ei := range p.Effects {
		if g.effects.ByInstance(ei).HasTrait(TraitShield) {
			return ei.ID, true
		}
	}
	return "", false
}

// nextDeskCard returns the first occupied desk slot after slotID.
func (g *Game) nextDeskCard(slotID int) (int, bool) {
	for i := slotID + 1; i < DeskSize; i++ {
		if g.Desk[i].Occupied() {
			return i, true
		}
	}
	return 0, false
}

// prevDeskCard returns the first occupied desk slot before slotID.
func (g *Game) prevDeskCard(slotID int) (int, bool) {
	for i := slotID - 1; i >= 0; i-- {
		if g.Desk[i].Occupied() {
			return i, true
		}
	}
	return 0, false
}

// lastDeskCard returns the last occupied desk slot.
func (g *Game) lastDeskCard() (int, bool) {
	return g.prevDeskCard(DeskSize)
}

// totalPlayerCards counts the player's hand cards plus their desk cards.
func (g *Game) totalPlayerCards(p *Player) int {
	return p.HandCount() + g.deskCardCount(p.ID)
}

// deskCardCount counts the desk cards owned by the player.
func (g *Game) deskCardCount(playerID string) int {
	count := 0
	for i := range g.Desk {
		if g.Desk[i].Occupied() && g.Desk[i].Instance.Owner == playerID {
			count++
		}
	}
	return count
}

package game

// Player holds one side of a match: health, mana, a fixed-size hand, an
// enchant pool, and the effects currently attached.
type Player struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Icon     string           `json:"icon,omitempty"`
	Health   int              `json:"health"`
	Mana     int              `json:"mana"`
	Hand     []CardSlot       `json:"hand"`
	Enchants []CardSlot       `json:"enchants"`
	Effects  []EffectInstance `json:"effects"`
}

// PlayerProps carries the display properties a player joins with.
type PlayerProps struct {
	Name string
	Icon string
}

func newPlayer(id string, props PlayerProps) *Player {
	name := props.Name
	if name == "" {
		name = "player"
	}
	return &Player{
		ID:       id,
		Name:     name,
		Icon:     props.Icon,
		Health:   StartingHealth,
		Hand:     emptySlots(HandSize),
		Enchants: emptySlots(EnchantSlots),
	}
}

// HasEffect reports whether the player holds an effect with the given id.
func (p *Player) HasEffect(id EffectID) bool {
	for _, e := range p.Effects {
		if e.ID == id {
			return true
		}
	}
	return false
}

// AddEffect attaches an effect instance.
func (p *Player) AddEffect(ei EffectInstance) {
	p.Effects = append(p.Effects, ei)
}

// RemoveEffect detaches the first effect with the given id and reports
// whether one was found.
func (p *Player) RemoveEffect(id EffectID) bool {
	for i, e := range p.Effects {
		if e.ID == id {
			p.Effects = append(p.Effects[:i], p.Effects[i+1:]...)
			return true
		}
	}
	return false
}

// AddMana grants mana, clamped to [0, ManaMax].
func (p *Player) AddMana(n int) {
	p.Mana += n
	if p.Mana > ManaMax {
		p.Mana = ManaMax
	}
	if p.Mana < 0 {
		p.Mana = 0
	}
}

// HandCount returns the number of occupied hand slots.
func (p *Player) HandCount() int {
	count := 0
	for i := range p.Hand {
		if p.Hand[i].Occupied() {
			count++
		}
	}
	return count
}

// freeHandSlot returns the index of the first empty hand slot, or -1.
func (p *Player) freeHandSlot() int {
	for i := range p.Hand {
		if !p.Hand[i].Occupied() {
			return i
		}
	}
	return -1
}

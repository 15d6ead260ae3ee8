package game

import "github.com/google/uuid"

// ActionType tags an Action log record.
type ActionType string

const (
	ActionDamage        ActionType = "DAMAGE"
	ActionDamageBlocked ActionType = "DAMAGE_BLOCKED"
	ActionHeal          ActionType = "HEAL"
	ActionEffectAdded   ActionType = "EFFECT_ADDED"
	ActionEffectRemoved ActionType = "EFFECT_REMOVED"
	ActionChangeOwner   ActionType = "CHANGE_OWNER"
	ActionPin           ActionType = "PIN"
)

// Action is a single log record produced while a card resolves. Each record
// gets a unique ID at emission; unused payload fields stay zero.
type Action struct {
	ID     string     `json:"id"`
	Type   ActionType `json:"type"`
	Target string     `json:"target"`
	Source string     `json:"source,omitempty"`
	Damage int        `json:"damage,omitempty"`
	Heal   int        `json:"heal,omitempty"`
	Effect EffectID   `json:"effectId,omitempty"`
	Card   CardID     `json:"cardId,omitempty"`
	SlotID int        `json:"slotId,omitempty"`
}

// ActionLog accumulates the records of one resolution step or enchant use.
// The engine keeps no history beyond the current batch.
type ActionLog struct {
	actions []Action
	newID   func() string
}

func newActionLog(newID func() string) *ActionLog {
	if newID == nil {
		newID = uuid.NewString
	}
	return &ActionLog{newID: newID}
}

// Actions returns the accumulated batch.
func (l *ActionLog) Actions() []Action {
	return l.actions
}

func (l *ActionLog) push(a Action) {
	a.ID = l.newID()
	l.actions = append(l.actions, a)
}

// Damage records damage dealt by source to target.
func (l *ActionLog) Damage(target, source string, damage int) {
	l.push(Action{Type: ActionDamage, Target: target, Source: source, Damage: damage})
}

// DamageBlocked records damage absorbed by the target's shield.
func (l *ActionLog) DamageBlocked(target, source string, damage int) {
	l.push(Action{Type: ActionDamageBlocked, Target: target, Source: source, Damage: damage})
}

// Heal records health restored to target.
func (l *ActionLog) Heal(target string, heal int) {
	l.push(Action{Type: ActionHeal, Target: target, Heal: heal})
}

// EffectAdded records an effect granted to target.
func (l *ActionLog) EffectAdded(target string, effect EffectID) {
	l.push(Action{Type: ActionEffectAdded, Target: target, Effect: effect})
}

// EffectRemoved records an effect stripped from target.
func (l *ActionLog) EffectRemoved(target string, effect EffectID) {
	l.push(Action{Type: ActionEffectRemoved, Target: target, Effect: effect})
}

// ChangeOwner records a desk card changing hands.
func (l *ActionLog) ChangeOwner(target string, card CardID, slotID int) {
	l.push(Action{Type: ActionChangeOwner, Target: target, Card: card, SlotID: slotID})
}

// Pin records a desk card being pinned in place.
func (l *ActionLog) Pin(target string, card CardID, slotID int) {
	l.push(Action{Type: ActionPin, Target: target, Card: card, SlotID: slotID})
}

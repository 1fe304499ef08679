package builders

import (
	"strings"

	"github.com/KirkDiggler/godex/internal/entities/godex"
)

// MoveBuilder provides a fluent interface for building test MoveDef instances
type MoveBuilder struct {
	move *godex.MoveDef
}

// NewQuickMoveBuilder creates a quick move
func NewQuickMoveBuilder(key, typeKey string, attack, cooldown float64) *MoveBuilder {
	return &MoveBuilder{
		move: &godex.MoveDef{
			Key:             key,
			Name:            displayName(key),
			Type:            typeKey,
			BaseAttack:      attack,
			CooldownSeconds: cooldown,
		},
	}
}

// NewChargeMoveBuilder creates a charge move using one charge per use
func NewChargeMoveBuilder(key, typeKey string, attack, cooldown float64) *MoveBuilder {
	charges := 1
	b := NewQuickMoveBuilder(key, typeKey, attack, cooldown)
	b.move.ChargesPerUse = &charges
	return b
}

// WithCharges sets the charges used per cast
func (b *MoveBuilder) WithCharges(charges int) *MoveBuilder {
	b.move.ChargesPerUse = &charges
	return b
}

// Build returns the built MoveDef
func (b *MoveBuilder) Build() *godex.MoveDef {
	return b.move
}

func displayName(key string) string {
	words := strings.Split(key, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

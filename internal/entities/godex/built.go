package godex

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCreature is the rpg-toolkit entity type of a built creature
const EntityTypeCreature = "creature"

// Level and IV bounds
const (
	ReferenceLevel = 20.0
	MaxLevel       = 40.0
	MinIV          = 0
	MaxIV          = 15
)

// IVs are the per-stat individual values added to base stats
type IVs struct {
	Attack  int
	Defense int
	Stamina int
}

// PerfectIVs is the 15/15/15 spread used for max CP
var PerfectIVs = IVs{Attack: MaxIV, Defense: MaxIV, Stamina: MaxIV}

// MoveMetrics are the derived DPS figures of a move
type MoveMetrics struct {
	Move       *MoveDef
	OffenseDPS float64
	// DefenseDPS is nil for charge moves
	DefenseDPS *float64
}

// Effectiveness maps type keys to multipliers. A type without an entry has
// no effect (multiplier 1).
type Effectiveness struct {
	Offense map[string]float64
	Defense map[string]float64
}

// BuiltCreature is a CreatureDef with its derived combat figures attached
type BuiltCreature struct {
	Def *CreatureDef

	Offense map[string]float64
	Defense map[string]float64

	QuickMoves     []MoveMetrics
	ChargeMoves    []MoveMetrics
	BestQuickMove  *MoveMetrics
	BestChargeMove *MoveMetrics

	// Figures at ReferenceLevel with zero IVs
	Level       float64
	CP          int
	HP          int
	PowerUpCost int

	MaxCP  int
	Family *FamilyTree
}

// GetID returns the creature key
func (c *BuiltCreature) GetID() string {
	return c.Def.Key
}

// GetType returns the entity type for rpg-toolkit
func (c *BuiltCreature) GetType() string {
	return EntityTypeCreature
}

var _ core.Entity = (*BuiltCreature)(nil)

package godex

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TypeMatchup lists which types a type hits or takes double and half damage from
type TypeMatchup struct {
	Key              string   `yaml:"key"`
	Name             string   `yaml:"name"`
	DoubleDamageTo   []string `yaml:"doubleDamageTo"`
	HalfDamageTo     []string `yaml:"halfDamageTo"`
	DoubleDamageFrom []string `yaml:"doubleDamageFrom"`
	HalfDamageFrom   []string `yaml:"halfDamageFrom"`
}

// MoveDef is a quick or charge move. Quick moves have no ChargesPerUse.
type MoveDef struct {
	Key             string  `yaml:"key"`
	Name            string  `yaml:"name"`
	Type            string  `yaml:"type"`
	BaseAttack      float64 `yaml:"baseAttack"`
	CooldownSeconds float64 `yaml:"cooldownSeconds"`
	ChargesPerUse   *int    `yaml:"chargesPerUse,omitempty"`

	// Informational, charge moves only
	DodgeWindowSeconds float64 `yaml:"dodgeWindowSeconds,omitempty"`
	CritChance         float64 `yaml:"critChance,omitempty"`
}

// IsQuick reports whether the move is a quick move
func (m *MoveDef) IsQuick() bool {
	return m.ChargesPerUse == nil
}

// LevelEntry is one row of the level table
type LevelEntry struct {
	Level        float64 `yaml:"level"`
	CPMultiplier float64 `yaml:"cpMultiplier"`
	PowerUpCost  int     `yaml:"powerUpCost"`
}

// BaseStats are the species stats before IVs
type BaseStats struct {
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
	Stamina int `yaml:"stamina"`
}

// CreatureDef is a catalog creature
type CreatureDef struct {
	Key         string    `yaml:"key"`
	ID          int       `yaml:"id"`
	Name        string    `yaml:"name"`
	Types       []string  `yaml:"types"`
	BaseStats   BaseStats `yaml:"baseStats"`
	QuickMoves  []string  `yaml:"quickMoves"`
	ChargeMoves []string  `yaml:"chargeMoves"`
	EvolvesFrom string    `yaml:"evolvesFrom,omitempty"`
	EvolvesTo   KeyList   `yaml:"evolvesTo,omitempty"`
	CandyCost   int       `yaml:"candyCost,omitempty"`

	// CPM on a linear line is this creature's multiplier into its next
	// stage. On a branch target it is the multiplier from its parent.
	CPM *CPMRange `yaml:"cpm,omitempty"`

	EggKm int `yaml:"eggKm"`
	MaxCP int `yaml:"maxCP"`
}

// HasType reports whether the creature carries the given type key
func (c *CreatureDef) HasType(typeKey string) bool {
	for _, t := range c.Types {
		if t == typeKey {
			return true
		}
	}
	return false
}

// KeyList is a list of catalog keys that may be written in YAML as a single
// scalar or as a sequence.
type KeyList []string

// UnmarshalYAML accepts `key` or `[key, key]`
func (k *KeyList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == "" {
			*k = nil
			return nil
		}
		*k = KeyList{value.Value}
		return nil
	case yaml.SequenceNode:
		var keys []string
		if err := value.Decode(&keys); err != nil {
			return err
		}
		*k = keys
		return nil
	default:
		return fmt.Errorf("line %d: expected a key or a list of keys", value.Line)
	}
}

// CPMRange is the spread of CP multipliers applied on evolution.
// A single-valued range has Min == Max.
type CPMRange struct {
	Min float64
	Max float64
}

// MarshalYAML writes a single-valued range as a scalar
func (r CPMRange) MarshalYAML() (any, error) {
	if r.Min == r.Max {
		return r.Min, nil
	}
	return []float64{r.Min, r.Max}, nil
}

// UnmarshalYAML accepts `1.6` or `[1.55, 1.65]`
func (r *CPMRange) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := value.Decode(&v); err != nil {
			return err
		}
		*r = CPMRange{Min: v, Max: v}
		return nil
	case yaml.SequenceNode:
		var pair []float64
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: cpm range needs exactly two values, got %d", value.Line, len(pair))
		}
		if pair[0] > pair[1] {
			return fmt.Errorf("line %d: cpm range minimum %g exceeds maximum %g", value.Line, pair[0], pair[1])
		}
		*r = CPMRange{Min: pair[0], Max: pair[1]}
		return nil
	default:
		return fmt.Errorf("line %d: expected a number or a [min, max] pair", value.Line)
	}
}

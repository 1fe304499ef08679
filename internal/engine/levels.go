package engine

import (
	"math"

	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
)

// CP returns the combat power of def at level with the given IVs
func (e *engine) CP(def *godex.CreatureDef, level float64, ivs godex.IVs) (int, error) {
	entry, err := e.levelEntry(level)
	if err != nil {
		return 0, err
	}
	if err := validateIVs(ivs); err != nil {
		return 0, err
	}
	return calculateCP(def.BaseStats, ivs, entry.CPMultiplier), nil
}

// HP returns the hit points of def at level with the given stamina IV
func (e *engine) HP(def *godex.CreatureDef, level float64, staminaIV int) (int, error) {
	entry, err := e.levelEntry(level)
	if err != nil {
		return 0, err
	}
	if err := validateIV("stamina", staminaIV); err != nil {
		return 0, err
	}
	return calculateHP(def.BaseStats, staminaIV, entry.CPMultiplier), nil
}

// PowerUpCost returns the dust needed to power up once at level
func (e *engine) PowerUpCost(level float64) (int, error) {
	entry, err := e.levelEntry(level)
	if err != nil {
		return 0, err
	}
	return entry.PowerUpCost, nil
}

func (e *engine) levelEntry(level float64) (*godex.LevelEntry, error) {
	entry, ok := e.catalog.GetLevel(level)
	if !ok {
		return nil, errors.InvalidLevel(level)
	}
	return entry, nil
}

func validateIVs(ivs godex.IVs) error {
	if err := validateIV("attack", ivs.Attack); err != nil {
		return err
	}
	if err := validateIV("defense", ivs.Defense); err != nil {
		return err
	}
	return validateIV("stamina", ivs.Stamina)
}

func validateIV(stat string, value int) error {
	if value < godex.MinIV || value > godex.MaxIV {
		return errors.InvalidIV(stat, value)
	}
	return nil
}

func calculateCP(stats godex.BaseStats, ivs godex.IVs, cpm float64) int {
	attack := float64(stats.Attack + ivs.Attack)
	defense := float64(stats.Defense + ivs.Defense)
	stamina := float64(stats.Stamina + ivs.Stamina)
	return int(math.Floor(attack * math.Sqrt(defense) * math.Sqrt(stamina) * cpm * cpm / 10))
}

func calculateHP(stats godex.BaseStats, staminaIV int, cpm float64) int {
	return int(math.Floor(float64(stats.Stamina+staminaIV) * cpm))
}

package dex

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
)

// IVRoller produces one random IV between godex.MinIV and godex.MaxIV
type IVRoller interface {
	RollIV() (int, error)
}

// DiceRoller rolls IVs with a single rpg-toolkit die
type DiceRoller struct{}

// RollIV rolls a d16 and shifts it down to 0-15
func (DiceRoller) RollIV() (int, error) {
	roll, err := dice.NewRoll(1, godex.MaxIV-godex.MinIV+1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create iv roll")
	}
	return roll.GetValue() - 1 + godex.MinIV, nil
}

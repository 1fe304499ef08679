package engine

import (
	"slices"

	"github.com/KirkDiggler/godex/internal/entities/godex"
)

// Quick moves evaluated on defense pay a fixed delay on top of their cooldown
const defenseCooldownPenalty = 2.0

// EvaluateMove looks up a quick or charge move and derives its DPS figures
func (e *engine) EvaluateMove(search string) (*godex.MoveMetrics, bool) {
	move, ok := e.catalog.GetMove(search)
	if !ok {
		return nil, false
	}
	metrics := evaluateMove(move)
	return &metrics, true
}

func evaluateMove(move *godex.MoveDef) godex.MoveMetrics {
	metrics := godex.MoveMetrics{
		Move:       move,
		OffenseDPS: round2(move.BaseAttack / move.CooldownSeconds),
	}
	if move.IsQuick() {
		defenseDPS := round2(move.BaseAttack / (move.CooldownSeconds + defenseCooldownPenalty))
		metrics.DefenseDPS = &defenseDPS
	}
	return metrics
}

// evaluateMoveSet evaluates keys in lexicographic order and picks the move
// with the strictly greatest offense DPS, so the first key wins a tie.
// Keys missing from the catalog are skipped.
func evaluateMoveSet(
	keys []string, lookup func(string) (*godex.MoveDef, bool),
) ([]godex.MoveMetrics, *godex.MoveMetrics) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)

	evaluated := make([]godex.MoveMetrics, 0, len(sorted))
	bestIdx := -1
	for _, key := range sorted {
		move, ok := lookup(key)
		if !ok {
			continue
		}
		evaluated = append(evaluated, evaluateMove(move))
		last := len(evaluated) - 1
		if bestIdx < 0 || evaluated[last].OffenseDPS > evaluated[bestIdx].OffenseDPS {
			bestIdx = last
		}
	}

	if bestIdx < 0 {
		return evaluated, nil
	}
	best := evaluated[bestIdx]
	return evaluated, &best
}

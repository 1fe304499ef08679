package v1alpha1

import (
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/godex/internal/engine"
	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/orchestrators/gym"
)

// toStruct encodes a response body. Every value must be one that
// structpb.NewValue accepts, so slices and maps are converted first.
func toStruct(body map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(body)
	if err != nil {
		return nil, errors.Internalf("failed to encode response: %v", err)
	}
	return out, nil
}

func stringList(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func multiplierMap(values map[string]float64) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

func timestamp(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func baseStatsValue(stats godex.BaseStats) map[string]any {
	return map[string]any{
		"attack":  stats.Attack,
		"defense": stats.Defense,
		"stamina": stats.Stamina,
	}
}

func ivsValue(ivs godex.IVs) map[string]any {
	return map[string]any{
		"attack":  ivs.Attack,
		"defense": ivs.Defense,
		"stamina": ivs.Stamina,
	}
}

func cpmValue(cpm *godex.CPMRange) any {
	if cpm == nil {
		return nil
	}
	return map[string]any{"min": cpm.Min, "max": cpm.Max}
}

func creatureDefValue(def *godex.CreatureDef) map[string]any {
	out := map[string]any{
		"key":          def.Key,
		"id":           def.ID,
		"name":         def.Name,
		"types":        stringList(def.Types),
		"base_stats":   baseStatsValue(def.BaseStats),
		"quick_moves":  stringList(def.QuickMoves),
		"charge_moves": stringList(def.ChargeMoves),
		"egg_km":       def.EggKm,
		"max_cp":       def.MaxCP,
	}
	if def.EvolvesFrom != "" {
		out["evolves_from"] = def.EvolvesFrom
	}
	if len(def.EvolvesTo) > 0 {
		out["evolves_to"] = stringList(def.EvolvesTo)
		out["candy_cost"] = def.CandyCost
	}
	if def.CPM != nil {
		out["cpm"] = cpmValue(def.CPM)
	}
	return out
}

func moveMetricsValue(metrics *godex.MoveMetrics) map[string]any {
	if metrics == nil {
		return nil
	}
	move := metrics.Move
	out := map[string]any{
		"key":              move.Key,
		"name":             move.Name,
		"type":             move.Type,
		"base_attack":      move.BaseAttack,
		"cooldown_seconds": move.CooldownSeconds,
		"quick":            move.IsQuick(),
		"offense_dps":      metrics.OffenseDPS,
	}
	if move.ChargesPerUse != nil {
		out["charges_per_use"] = *move.ChargesPerUse
	}
	if metrics.DefenseDPS != nil {
		out["defense_dps"] = *metrics.DefenseDPS
	}
	return out
}

func moveMetricsList(list []godex.MoveMetrics) []any {
	out := make([]any, 0, len(list))
	for i := range list {
		out = append(out, moveMetricsValue(&list[i]))
	}
	return out
}

func builtCreatureValue(c *godex.BuiltCreature) map[string]any {
	out := creatureDefValue(c.Def)
	out["offense"] = multiplierMap(c.Offense)
	out["defense"] = multiplierMap(c.Defense)
	out["moves"] = map[string]any{
		"quick":       moveMetricsList(c.QuickMoves),
		"charge":      moveMetricsList(c.ChargeMoves),
		"best_quick":  nilIfEmpty(moveMetricsValue(c.BestQuickMove)),
		"best_charge": nilIfEmpty(moveMetricsValue(c.BestChargeMove)),
	}
	out["level"] = c.Level
	out["cp"] = c.CP
	out["hp"] = c.HP
	out["power_up_cost"] = c.PowerUpCost
	out["max_cp"] = c.MaxCP
	if c.Family != nil {
		out["family"] = familyValue(c.Family)
	}
	return out
}

// nilIfEmpty keeps a typed nil map from reaching structpb as an empty object
func nilIfEmpty(m map[string]any) any {
	if m == nil {
		return nil
	}
	return m
}

func branchValue(b *godex.Branch) any {
	if b == nil {
		return nil
	}
	out := map[string]any{
		"key":        b.Key,
		"id":         b.ID,
		"name":       b.Name,
		"base_stats": baseStatsValue(b.Stats),
		"candy_cost": b.CandyCost,
	}
	if b.CPM != nil {
		out["cpm"] = cpmValue(b.CPM)
	}
	if b.EvolvesFrom != "" {
		out["evolves_from"] = b.EvolvesFrom
	}
	if len(b.EvolvesTo) > 0 {
		out["evolves_to"] = stringList(b.EvolvesTo)
	}
	return out
}

func branchList(list []godex.Branch) []any {
	out := make([]any, 0, len(list))
	for i := range list {
		out = append(out, branchValue(&list[i]))
	}
	return out
}

func familyValue(f *godex.FamilyTree) map[string]any {
	return map[string]any{
		"stages_total":   f.StagesTotal,
		"current_stage":  f.CurrentStage,
		"previous_stage": branchValue(f.PreviousStage),
		"first_stage":    branchValue(f.FirstStage),
		"next_stages":    branchList(f.NextStages),
		"final_stages":   branchList(f.FinalStages),
		"branching":      f.IsBranching(),
	}
}

func optionList(list []godex.EvolutionOption) []any {
	out := make([]any, 0, len(list))
	for _, opt := range list {
		entry := map[string]any{
			"key":        opt.Key,
			"candy_cost": opt.CandyCost,
			"evolutions": opt.Evolutions,
		}
		if opt.CP != nil {
			entry["cp"] = map[string]any{"min": opt.CP.Min, "max": opt.CP.Max}
		}
		out = append(out, entry)
	}
	return out
}

func projectionValue(p *godex.EvolutionProjection) map[string]any {
	return map[string]any{
		"next_stages":  optionList(p.NextStages),
		"final_stages": optionList(p.FinalStages),
	}
}

func reportValue(r *gym.Report) map[string]any {
	members := make([]any, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, map[string]any{
			"key":    m.Key,
			"name":   m.Name,
			"types":  stringList(m.Types),
			"count":  m.Count,
			"cp":     m.CP,
			"max_cp": m.MaxCP,
		})
	}

	present := make([]any, 0, len(r.TypesPresent))
	for _, tc := range r.TypesPresent {
		present = append(present, map[string]any{"type": tc.Type, "count": tc.Count})
	}

	return map[string]any{
		"id":              r.ID,
		"name":            r.Name,
		"total":           r.Total,
		"members":         members,
		"types_present":   present,
		"uncovered_types": stringList(r.UncoveredTypes),
		"offense":         scoreList(r.Offense),
		"defense":         scoreList(r.Defense),
		"created_at":      timestamp(r.CreatedAt),
		"updated_at":      timestamp(r.UpdatedAt),
		"expires_at":      timestamp(r.ExpiresAt),
	}
}

func scoreList(scores []engine.TypeScore) []any {
	out := make([]any, 0, len(scores))
	for _, s := range scores {
		out = append(out, map[string]any{"type": s.Type, "score": s.Score})
	}
	return out
}

package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/KirkDiggler/godex/internal/engine"
	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/orchestrators/dex"
	"github.com/KirkDiggler/godex/internal/orchestrators/gym"
)

func printCreature(w io.Writer, c *godex.BuiltCreature) {
	def := c.Def
	fmt.Fprintf(w, "%s (#%d) %s\n", def.Name, def.ID, strings.Join(def.Types, "/"))
	fmt.Fprintf(w, "Base stats: attack %d, defense %d, stamina %d\n",
		def.BaseStats.Attack, def.BaseStats.Defense, def.BaseStats.Stamina)
	fmt.Fprintf(w, "Level %g: CP %d, HP %d, power-up cost %d\n", c.Level, c.CP, c.HP, c.PowerUpCost)
	fmt.Fprintf(w, "Max CP: %d\n", c.MaxCP)
	if def.EggKm > 0 {
		fmt.Fprintf(w, "Egg: %d km\n", def.EggKm)
	}

	fmt.Fprintf(w, "\nOffense: %s\n", formatMultipliers(c.Offense))
	fmt.Fprintf(w, "Defense: %s\n", formatMultipliers(c.Defense))

	fmt.Fprintln(w, "\nQuick moves:")
	printMoveRows(w, c.QuickMoves, c.BestQuickMove)
	fmt.Fprintln(w, "Charge moves:")
	printMoveRows(w, c.ChargeMoves, c.BestChargeMove)

	if c.Family != nil && c.Family.StagesTotal > 1 {
		fmt.Fprintf(w, "\nFamily: stage %d of %d\n", c.Family.CurrentStage, c.Family.StagesTotal)
	}
}

func formatMultipliers(m map[string]float64) string {
	if len(m) == 0 {
		return "neutral"
	}
	parts := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		parts = append(parts, fmt.Sprintf("%s %g", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

func printMoveRows(w io.Writer, moves []godex.MoveMetrics, best *godex.MoveMetrics) {
	if len(moves) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	for _, m := range moves {
		marker := ""
		if best != nil && best.Move.Key == m.Move.Key {
			marker = "  *best"
		}
		fmt.Fprintf(w, "  %-20s %-9s %s%s\n", m.Move.Name, m.Move.Type, formatDPS(&m), marker)
	}
}

func formatDPS(m *godex.MoveMetrics) string {
	if m.DefenseDPS == nil {
		return fmt.Sprintf("offense %.2f", m.OffenseDPS)
	}
	return fmt.Sprintf("offense %.2f defense %.2f", m.OffenseDPS, *m.DefenseDPS)
}

func printMove(w io.Writer, m *godex.MoveMetrics) {
	kind := "charge"
	if m.Move.IsQuick() {
		kind = "quick"
	}
	fmt.Fprintf(w, "%s (%s, %s)\n", m.Move.Name, m.Move.Type, kind)
	fmt.Fprintf(w, "Base attack %g, cooldown %gs\n", m.Move.BaseAttack, m.Move.CooldownSeconds)
	if m.Move.ChargesPerUse != nil {
		fmt.Fprintf(w, "Charges per use: %d\n", *m.Move.ChargesPerUse)
	}
	fmt.Fprintln(w, formatDPS(m))
}

func printCreatureList(w io.Writer, creatures []*godex.CreatureDef) {
	for _, def := range creatures {
		fmt.Fprintf(w, "%4d  %-14s %-16s max CP %d\n", def.ID, def.Key, strings.Join(def.Types, "/"), def.MaxCP)
	}
	fmt.Fprintf(w, "%d creatures\n", len(creatures))
}

func printStats(w io.Writer, out *dex.CalculateStatsOutput) {
	fmt.Fprintf(w, "%s at level %g with IVs %d/%d/%d\n",
		out.Creature.Name, out.Level, out.IVs.Attack, out.IVs.Defense, out.IVs.Stamina)
	fmt.Fprintf(w, "CP %d, HP %d, power-up cost %d\n", out.CP, out.HP, out.PowerUpCost)
}

func printRoll(w io.Writer, out *dex.RollIVsOutput) {
	fmt.Fprintf(w, "%s at level %g rolled IVs %d/%d/%d\n",
		out.Creature.Name, out.Level, out.IVs.Attack, out.IVs.Defense, out.IVs.Stamina)
	fmt.Fprintf(w, "CP %d, HP %d\n", out.CP, out.HP)
}

func printFamily(w io.Writer, def *godex.CreatureDef, f *godex.FamilyTree) {
	fmt.Fprintf(w, "%s is stage %d of %d\n", def.Name, f.CurrentStage, f.StagesTotal)
	if f.FirstStage != nil {
		fmt.Fprintf(w, "First stage: %s\n", f.FirstStage.Name)
	}
	if f.PreviousStage != nil {
		fmt.Fprintf(w, "Evolves from: %s\n", f.PreviousStage.Name)
	}
	if len(f.NextStages) > 0 {
		fmt.Fprintf(w, "Evolves into: %s (%d candy)\n", branchNames(f.NextStages), def.CandyCost)
	}
	if len(f.FinalStages) > 0 {
		fmt.Fprintf(w, "Final stages: %s\n", branchNames(f.FinalStages))
	}
}

func branchNames(branches []godex.Branch) string {
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.Name)
	}
	return strings.Join(names, ", ")
}

func printProjection(w io.Writer, def *godex.CreatureDef, p *godex.EvolutionProjection) {
	if len(p.NextStages) == 0 && len(p.FinalStages) == 0 {
		fmt.Fprintf(w, "%s does not evolve\n", def.Name)
		return
	}
	fmt.Fprintf(w, "%s evolutions\n", def.Name)
	printOptions(w, "Next", p.NextStages)
	printOptions(w, "Final", p.FinalStages)
}

func printOptions(w io.Writer, label string, options []godex.EvolutionOption) {
	for _, opt := range options {
		cp := "CP unknown"
		if opt.CP != nil {
			cp = fmt.Sprintf("CP %d-%d", opt.CP.Min, opt.CP.Max)
		}
		fmt.Fprintf(w, "  %-5s %-12s %-14s candy %-4d evolutions %d\n",
			label, opt.Key, cp, opt.CandyCost, opt.Evolutions)
	}
}

func printReport(w io.Writer, r *gym.Report, skipped []string) {
	fmt.Fprintf(w, "Roster of %d\n", r.Total)
	for _, m := range r.Members {
		fmt.Fprintf(w, "  %dx %-14s %s\n", m.Count, m.Name, strings.Join(m.Types, "/"))
	}
	if len(skipped) > 0 {
		fmt.Fprintf(w, "Skipped: %s\n", strings.Join(skipped, ", "))
	}

	present := make([]string, 0, len(r.TypesPresent))
	for _, tc := range r.TypesPresent {
		present = append(present, fmt.Sprintf("%s %d", tc.Type, tc.Count))
	}
	fmt.Fprintf(w, "\nTypes present: %s\n", strings.Join(present, ", "))
	fmt.Fprintf(w, "Uncovered types: %s\n", strings.Join(r.UncoveredTypes, ", "))

	fmt.Fprintln(w, "\nOffense:")
	printScores(w, r.Offense)
	fmt.Fprintln(w, "Defense:")
	printScores(w, r.Defense)
}

func printScores(w io.Writer, scores []engine.TypeScore) {
	for _, s := range scores {
		fmt.Fprintf(w, "  %-9s %.2f\n", s.Type, s.Score)
	}
}

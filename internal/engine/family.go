package engine

import (
	"math"
	"slices"

	"github.com/KirkDiggler/godex/internal/entities/godex"
)

// ResolveFamilyTree walks up to two evolution hops back and two forward
// from def.
func (e *engine) ResolveFamilyTree(def *godex.CreatureDef) *godex.FamilyTree {
	tree := &godex.FamilyTree{CurrentStage: 1}

	if previous, ok := e.lookupStage(def.EvolvesFrom); ok {
		tree.PreviousStage = newBranch(previous)
		tree.CurrentStage++

		if first, ok := e.lookupStage(previous.EvolvesFrom); ok {
			tree.FirstStage = newBranch(first)
			tree.CurrentStage++
		}
	}

	for _, key := range def.EvolvesTo {
		next, ok := e.lookupStage(key)
		if !ok {
			continue
		}
		tree.NextStages = append(tree.NextStages, *newBranch(next))

		for _, finalKey := range next.EvolvesTo {
			if final, ok := e.lookupStage(finalKey); ok {
				tree.FinalStages = append(tree.FinalStages, *newBranch(final))
			}
		}
	}

	tree.StagesTotal = tree.CurrentStage
	if len(tree.NextStages) > 0 {
		tree.StagesTotal++
	}
	if len(tree.FinalStages) > 0 {
		tree.StagesTotal++
	}

	return tree
}

// CanEvolve projects the CP of each evolution of def from its current CP
// and counts how many evolutions the candy on hand covers.
//
// A branching line uses each target's own multiplier range; a linear line
// uses the multiplier carried by def. Final stages chain def's multiplier
// with the first next stage's and need the candy of both steps.
func (e *engine) CanEvolve(def *godex.CreatureDef, cp, candy int) *godex.EvolutionProjection {
	tree := e.ResolveFamilyTree(def)
	projection := &godex.EvolutionProjection{}

	branching := tree.IsBranching()
	for _, next := range tree.NextStages {
		ratio := def.CPM
		if branching {
			ratio = next.CPM
		}
		projection.NextStages = append(projection.NextStages, godex.EvolutionOption{
			Key:        next.Key,
			CP:         projectCP(cp, ratio),
			CandyCost:  def.CandyCost,
			Evolutions: LegacyEvolutionsAffordable(candy, def.CandyCost),
		})
	}

	if len(tree.FinalStages) > 0 {
		first := tree.NextStages[0]
		cost := def.CandyCost + first.CandyCost

		for _, final := range tree.FinalStages {
			projection.FinalStages = append(projection.FinalStages, godex.EvolutionOption{
				Key:        final.Key,
				CP:         projectCP(cp, def.CPM, first.CPM),
				CandyCost:  cost,
				Evolutions: LegacyEvolutionsAffordable(candy, cost),
			})
		}
	}

	return projection
}

// LegacyEvolutionsAffordable is floor(candy/cost + (candy/cost)/cost). It
// overcounts relative to a plain candy/cost and is kept for compatibility
// with existing clients. A non-positive cost affords nothing.
func LegacyEvolutionsAffordable(candy, cost int) int {
	if cost <= 0 {
		return 0
	}
	perCost := float64(candy) / float64(cost)
	return int(math.Floor(perCost + perCost/float64(cost)))
}

// projectCP applies each evolution step's multiplier range to cp in turn.
// Without a CP or with any step's range unknown there is no projection.
func projectCP(cp int, ratios ...*godex.CPMRange) *godex.CPRange {
	if cp == 0 {
		return nil
	}
	low, high := float64(cp), float64(cp)
	for _, ratio := range ratios {
		if ratio == nil {
			return nil
		}
		low *= ratio.Min
		high *= ratio.Max
	}
	return &godex.CPRange{
		Min: int(math.Floor(low)),
		Max: int(math.Floor(high)),
	}
}

func (e *engine) lookupStage(key string) (*godex.CreatureDef, bool) {
	if key == "" {
		return nil, false
	}
	return e.catalog.GetCreature(key)
}

func newBranch(def *godex.CreatureDef) *godex.Branch {
	branch := &godex.Branch{
		Key:         def.Key,
		ID:          def.ID,
		Name:        def.Name,
		Stats:       def.BaseStats,
		CandyCost:   def.CandyCost,
		EvolvesFrom: def.EvolvesFrom,
		EvolvesTo:   slices.Clone(def.EvolvesTo),
	}
	if def.CPM != nil {
		cpm := *def.CPM
		branch.CPM = &cpm
	}
	return branch
}

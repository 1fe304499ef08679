package godex

// Branch is a lightweight record of another stage in a family
type Branch struct {
	Key         string
	ID          int
	Name        string
	Stats       BaseStats
	CPM         *CPMRange
	CandyCost   int
	EvolvesFrom string
	EvolvesTo   KeyList
}

// FamilyTree places a creature within its evolution family.
// PreviousStage and FirstStage hold zero or one stage; NextStages and
// FinalStages hold any number, more than one for branching lines.
type FamilyTree struct {
	StagesTotal  int
	CurrentStage int

	PreviousStage *Branch
	FirstStage    *Branch
	NextStages    []Branch
	FinalStages   []Branch
}

// IsBranching reports whether the creature evolves into more than one form
func (f *FamilyTree) IsBranching() bool {
	return len(f.NextStages) > 1
}

// CPRange is a projected CP span
type CPRange struct {
	Min int
	Max int
}

// EvolutionOption is the projection for one evolution target
type EvolutionOption struct {
	Key string
	// CP is nil when no multiplier is known or the current CP is zero
	CP *CPRange
	// CandyCost is the candy needed to reach this stage from the current one
	CandyCost int
	// Evolutions is the legacy affordability estimate for the candy on hand
	Evolutions int
}

// EvolutionProjection is the result of an evolve calculation
type EvolutionProjection struct {
	NextStages  []EvolutionOption
	FinalStages []EvolutionOption
}

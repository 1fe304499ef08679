// Package dex implements the dex orchestrator: creature lookups, stat
// calculations and evolution projections over the engine.
package dex

//go:generate mockgen -destination=mock/mock_service.go -package=dexmock github.com/KirkDiggler/godex/internal/orchestrators/dex Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/godex/internal/engine"
	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
)

// Service defines the interface for dex operations
type Service interface {
	GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error)
	EvaluateMove(ctx context.Context, input *EvaluateMoveInput) (*EvaluateMoveOutput, error)
	ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error)

	// Level formulas
	CalculateStats(ctx context.Context, input *CalculateStatsInput) (*CalculateStatsOutput, error)
	RollIVs(ctx context.Context, input *RollIVsInput) (*RollIVsOutput, error)

	// Evolution families
	GetFamilyTree(ctx context.Context, input *GetFamilyTreeInput) (*GetFamilyTreeOutput, error)
	CanEvolve(ctx context.Context, input *CanEvolveInput) (*CanEvolveOutput, error)
}

// Config holds the dependencies for the dex orchestrator
type Config struct {
	Engine engine.Engine

	// IVRoller defaults to DiceRoller
	IVRoller IVRoller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	engine engine.Engine
	roller IVRoller
}

// NewOrchestrator creates a new dex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.IVRoller
	if roller == nil {
		roller = DiceRoller{}
	}

	return &orchestrator{
		engine: cfg.Engine,
		roller: roller,
	}, nil
}

// GetCreature builds a creature with all derived figures attached
func (o *orchestrator) GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error) {
	if input == nil || input.Search == "" {
		return nil, errors.InvalidArgument("search is required")
	}

	built, ok := o.engine.BuildCreature(input.Search)
	if !ok {
		return nil, creatureNotFound(input.Search)
	}

	slog.DebugContext(ctx, "creature resolved", "search", input.Search, "key", built.GetID())

	return &GetCreatureOutput{Creature: built}, nil
}

// EvaluateMove derives the DPS figures of a move
func (o *orchestrator) EvaluateMove(ctx context.Context, input *EvaluateMoveInput) (*EvaluateMoveOutput, error) {
	if input == nil || input.Search == "" {
		return nil, errors.InvalidArgument("search is required")
	}

	metrics, ok := o.engine.EvaluateMove(input.Search)
	if !ok {
		return nil, errors.NotFoundf("move %q not found", input.Search).WithMeta("search", input.Search)
	}

	return &EvaluateMoveOutput{Metrics: metrics}, nil
}

// ListCreatures lists the catalog, optionally restricted to one type
func (o *orchestrator) ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cat := o.engine.Catalog()
	if input.Type == "" {
		return &ListCreaturesOutput{Creatures: cat.ListCreatures()}, nil
	}

	matchup, ok := cat.GetType(input.Type)
	if !ok {
		return nil, errors.NotFoundf("type %q not found", input.Type).WithMeta("search", input.Type)
	}

	return &ListCreaturesOutput{Creatures: cat.CreaturesByType(matchup.Key)}, nil
}

// CalculateStats computes CP, HP and power-up cost at a level
func (o *orchestrator) CalculateStats(ctx context.Context, input *CalculateStatsInput) (*CalculateStatsOutput, error) {
	if input == nil || input.Search == "" {
		return nil, errors.InvalidArgument("search is required")
	}

	def, err := o.lookup(input.Search)
	if err != nil {
		return nil, err
	}

	level := levelOrReference(input.Level)
	cp, err := o.engine.CP(def, level, input.IVs)
	if err != nil {
		return nil, err
	}
	hp, err := o.engine.HP(def, level, input.IVs.Stamina)
	if err != nil {
		return nil, err
	}
	cost, err := o.engine.PowerUpCost(level)
	if err != nil {
		return nil, err
	}

	return &CalculateStatsOutput{
		Creature:    def,
		Level:       level,
		IVs:         input.IVs,
		CP:          cp,
		HP:          hp,
		PowerUpCost: cost,
	}, nil
}

// RollIVs rolls a random IV spread and reports CP and HP with it
func (o *orchestrator) RollIVs(ctx context.Context, input *RollIVsInput) (*RollIVsOutput, error) {
	if input == nil || input.Search == "" {
		return nil, errors.InvalidArgument("search is required")
	}

	def, err := o.lookup(input.Search)
	if err != nil {
		return nil, err
	}

	var rolled [3]int
	for i := range rolled {
		rolled[i], err = o.roller.RollIV()
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll ivs")
		}
	}
	ivs := godex.IVs{Attack: rolled[0], Defense: rolled[1], Stamina: rolled[2]}

	level := levelOrReference(input.Level)
	cp, err := o.engine.CP(def, level, ivs)
	if err != nil {
		return nil, err
	}
	hp, err := o.engine.HP(def, level, ivs.Stamina)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "ivs rolled",
		"creature", def.Key,
		"level", level,
		"attack", ivs.Attack,
		"defense", ivs.Defense,
		"stamina", ivs.Stamina,
		"cp", cp)

	return &RollIVsOutput{
		Creature: def,
		Level:    level,
		IVs:      ivs,
		CP:       cp,
		HP:       hp,
	}, nil
}

// GetFamilyTree resolves a creature's evolution family
func (o *orchestrator) GetFamilyTree(ctx context.Context, input *GetFamilyTreeInput) (*GetFamilyTreeOutput, error) {
	if input == nil || input.Search == "" {
		return nil, errors.InvalidArgument("search is required")
	}

	def, err := o.lookup(input.Search)
	if err != nil {
		return nil, err
	}

	return &GetFamilyTreeOutput{
		Creature: def,
		Family:   o.engine.ResolveFamilyTree(def),
	}, nil
}

// CanEvolve projects the CP after each evolution and how many the candy covers
func (o *orchestrator) CanEvolve(ctx context.Context, input *CanEvolveInput) (*CanEvolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("search", input.Search, vb)
	if input.CP < 0 {
		vb.Fieldf("cp", "must not be negative, got %d", input.CP)
	}
	if input.Candy < 0 {
		vb.Fieldf("candy", "must not be negative, got %d", input.Candy)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	def, err := o.lookup(input.Search)
	if err != nil {
		return nil, err
	}

	return &CanEvolveOutput{
		Creature:   def,
		Projection: o.engine.CanEvolve(def, input.CP, input.Candy),
	}, nil
}

func (o *orchestrator) lookup(search string) (*godex.CreatureDef, error) {
	def, ok := o.engine.Catalog().GetCreature(search)
	if !ok {
		return nil, creatureNotFound(search)
	}
	return def, nil
}

func creatureNotFound(search string) error {
	return errors.NotFoundf("creature %q not found", search).WithMeta("search", search)
}

func levelOrReference(level float64) float64 {
	if level == 0 {
		return godex.ReferenceLevel
	}
	return level
}

package engine

import (
	"sync"

	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/repositories/catalog"
)

// Config holds the dependencies for the engine
type Config struct {
	Catalog catalog.Repository
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type engine struct {
	catalog catalog.Repository

	// multipliers at the reference and max levels, fixed at construction
	referenceLevel *godex.LevelEntry
	maxLevel       *godex.LevelEntry

	mu   sync.Mutex
	memo map[string]*godex.Effectiveness
}

// New creates an engine over the given catalog. The catalog must contain
// the reference level and the max level.
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	reference, ok := cfg.Catalog.GetLevel(godex.ReferenceLevel)
	if !ok {
		return nil, errors.Wrap(errors.InvalidLevel(godex.ReferenceLevel), "catalog is missing the reference level")
	}
	maxLevel, ok := cfg.Catalog.GetLevel(godex.MaxLevel)
	if !ok {
		return nil, errors.Wrap(errors.InvalidLevel(godex.MaxLevel), "catalog is missing the max level")
	}

	return &engine{
		catalog:        cfg.Catalog,
		referenceLevel: reference,
		maxLevel:       maxLevel,
		memo:           make(map[string]*godex.Effectiveness),
	}, nil
}

func (e *engine) Catalog() catalog.Repository {
	return e.catalog
}

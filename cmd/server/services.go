package main

import (
	"log/slog"

	"github.com/KirkDiggler/godex/internal/config"
	"github.com/KirkDiggler/godex/internal/engine"
	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/orchestrators/dex"
	"github.com/KirkDiggler/godex/internal/orchestrators/gym"
	"github.com/KirkDiggler/godex/internal/pkg/clock"
	"github.com/KirkDiggler/godex/internal/pkg/idgen"
	"github.com/KirkDiggler/godex/internal/repositories/catalog"
	"github.com/KirkDiggler/godex/internal/repositories/rosters"
)

// services bundles the orchestrators shared by the server and local commands
type services struct {
	Engine engine.Engine
	Dex    dex.Service
	Gym    gym.Service
}

func loadCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.NewEmbedded()
	}
	return catalog.LoadDir(dir)
}

func newServices(cfg config.Config) (*services, error) {
	cat, err := loadCatalog(cfg.Catalog.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	eng, err := engine.New(&engine.Config{Catalog: cat})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	dexService, err := dex.NewOrchestrator(&dex.Config{
		Engine: eng,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dex orchestrator")
	}

	clk := clock.New()
	gymService, err := gym.NewOrchestrator(&gym.Config{
		Engine:      eng,
		RosterRepo:  rosters.NewInMemory(clk),
		IDGenerator: idgen.NewUUID("roster"),
		Clock:       clk,
		SessionTTL:  cfg.Gym.SessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gym orchestrator")
	}

	slog.Debug("catalog loaded",
		"creatures", len(cat.ListCreatures()),
		"moves", len(cat.ListMoves()),
		"types", len(cat.TypeKeys()),
		"embedded", cfg.Catalog.Dir == "")

	return &services{
		Engine: eng,
		Dex:    dexService,
		Gym:    gymService,
	}, nil
}

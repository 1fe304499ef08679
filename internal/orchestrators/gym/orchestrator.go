// Package gym implements the gym orchestrator: roster sessions that remote
// callers build up one creature at a time.
package gym

//go:generate mockgen -destination=mock/mock_service.go -package=gymmock github.com/KirkDiggler/godex/internal/orchestrators/gym Service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/godex/internal/engine"
	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/pkg/clock"
	"github.com/KirkDiggler/godex/internal/pkg/idgen"
	"github.com/KirkDiggler/godex/internal/repositories/rosters"
)

// DefaultSessionTTL is how long a roster session lives after its last change
const DefaultSessionTTL = 30 * time.Minute

// MaxRosterNameLength bounds the display name of a roster
const MaxRosterNameLength = 64

// Service defines the interface for gym operations
type Service interface {
	CreateRoster(ctx context.Context, input *CreateRosterInput) (*CreateRosterOutput, error)
	AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error)
	RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error)
	GetReport(ctx context.Context, input *GetReportInput) (*GetReportOutput, error)
	DeleteRoster(ctx context.Context, input *DeleteRosterInput) (*DeleteRosterOutput, error)
}

// Config holds the dependencies for the gym orchestrator
type Config struct {
	Engine      engine.Engine
	RosterRepo  rosters.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// SessionTTL defaults to DefaultSessionTTL; a negative value disables expiry
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.RosterRepo == nil {
		vb.RequiredField("RosterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	engine     engine.Engine
	rosterRepo rosters.Repository
	idGen      idgen.Generator
	clock      clock.Clock
	ttl        time.Duration

	// serialises read-modify-write of a session
	mu sync.Mutex
}

// NewOrchestrator creates a new gym orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}

	return &orchestrator{
		engine:     cfg.Engine,
		rosterRepo: cfg.RosterRepo,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
		ttl:        ttl,
	}, nil
}

// CreateRoster opens a roster session seeded with the given members
func (o *orchestrator) CreateRoster(ctx context.Context, input *CreateRosterInput) (*CreateRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name := strings.TrimSpace(input.Name)
	if len(name) > MaxRosterNameLength {
		return nil, errors.InvalidArgumentf("roster name must be at most %d characters", MaxRosterNameLength).
			WithMeta("field", "name")
	}

	roster := o.engine.NewRoster()
	var skipped []string
	for _, search := range input.Members {
		if !roster.Add(search) {
			skipped = append(skipped, search)
		}
	}

	now := o.clock.Now()
	created, err := o.rosterRepo.Create(ctx, &rosters.CreateInput{
		Data: &rosters.RosterData{
			ID:        o.idGen.Generate(),
			Name:      name,
			Members:   memberCounts(roster),
			CreatedAt: now,
			UpdatedAt: now,
			ExpiresAt: o.expiry(now),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roster")
	}

	slog.InfoContext(ctx, "roster created",
		"roster_id", created.Data.ID,
		"members", roster.Total(),
		"skipped", len(skipped))

	return &CreateRosterOutput{
		Report:  buildReport(created.Data, roster, false, false),
		Skipped: skipped,
	}, nil
}

// AddMember adds one copy of a creature. An unknown creature leaves the
// roster as it was.
func (o *orchestrator) AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMemberInput(input.RosterID, input.Search); err != nil {
		return nil, err
	}

	var added bool
	report, err := o.modify(ctx, input.RosterID, func(r *engine.Roster) bool {
		added = r.Add(input.Search)
		return added
	})
	if err != nil {
		return nil, err
	}

	return &AddMemberOutput{Added: added, Report: report}, nil
}

// RemoveMember removes one copy of a creature. Removing a non-member
// leaves the roster as it was.
func (o *orchestrator) RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMemberInput(input.RosterID, input.Search); err != nil {
		return nil, err
	}

	var removed bool
	report, err := o.modify(ctx, input.RosterID, func(r *engine.Roster) bool {
		removed = r.Remove(input.Search)
		return removed
	})
	if err != nil {
		return nil, err
	}

	return &RemoveMemberOutput{Removed: removed, Report: report}, nil
}

// GetReport returns the aggregate view of a roster
func (o *orchestrator) GetReport(ctx context.Context, input *GetReportInput) (*GetReportOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	got, err := o.rosterRepo.Get(ctx, &rosters.GetInput{ID: input.RosterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get roster %s", input.RosterID)
	}

	roster := o.hydrate(ctx, got.Data)
	return &GetReportOutput{
		Report: buildReport(got.Data, roster, input.InvertOffense, input.InvertDefense),
	}, nil
}

// DeleteRoster closes a roster session
func (o *orchestrator) DeleteRoster(ctx context.Context, input *DeleteRosterInput) (*DeleteRosterOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.rosterRepo.Delete(ctx, &rosters.DeleteInput{ID: input.RosterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete roster %s", input.RosterID)
	}

	slog.InfoContext(ctx, "roster deleted", "roster_id", input.RosterID)

	return &DeleteRosterOutput{Success: true}, nil
}

// modify loads a roster, applies change and stores it if change reports a
// mutation. The whole sequence holds the orchestrator lock.
func (o *orchestrator) modify(
	ctx context.Context, rosterID string, change func(*engine.Roster) bool,
) (*Report, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	got, err := o.rosterRepo.Get(ctx, &rosters.GetInput{ID: rosterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get roster %s", rosterID)
	}

	roster := o.hydrate(ctx, got.Data)
	data := got.Data
	if change(roster) {
		now := o.clock.Now()
		updated, err := o.rosterRepo.Update(ctx, &rosters.UpdateInput{
			ID:        rosterID,
			Members:   memberCounts(roster),
			UpdatedAt: now,
			ExpiresAt: o.expiry(now),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to update roster %s", rosterID)
		}
		data = updated.Data
	}

	return buildReport(data, roster, false, false), nil
}

// hydrate rebuilds the engine roster from stored member counts
func (o *orchestrator) hydrate(ctx context.Context, data *rosters.RosterData) *engine.Roster {
	roster := o.engine.NewRoster()
	for key, count := range data.Members {
		for i := 0; i < count; i++ {
			if !roster.Add(key) {
				slog.WarnContext(ctx, "stored roster member is not in the catalog",
					"roster_id", data.ID,
					"key", key)
				break
			}
		}
	}
	return roster
}

func (o *orchestrator) expiry(now time.Time) time.Time {
	if o.ttl < 0 {
		return time.Time{}
	}
	return now.Add(o.ttl)
}

func validateMemberInput(rosterID, search string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("roster_id", rosterID, vb)
	errors.ValidateRequired("search", search, vb)
	return vb.Build()
}

func memberCounts(roster *engine.Roster) map[string]int {
	counts := make(map[string]int)
	for _, member := range roster.Members() {
		counts[member.Creature.GetID()] = member.Count
	}
	return counts
}

func buildReport(data *rosters.RosterData, roster *engine.Roster, invertOffense, invertDefense bool) *Report {
	report := &Report{
		ID:             data.ID,
		Name:           data.Name,
		Total:          roster.Total(),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		ExpiresAt:      data.ExpiresAt,
		TypesPresent:   roster.TypesPresent(),
		UncoveredTypes: roster.UncoveredTypes(),
		Offense:        roster.OffenseScore(invertOffense),
		Defense:        roster.DefenseScore(invertDefense),
	}
	for _, member := range roster.Members() {
		def := member.Creature.Def
		report.Members = append(report.Members, MemberSummary{
			Key:   def.Key,
			Name:  def.Name,
			Types: slices.Clone(def.Types),
			Count: member.Count,
			CP:    member.Creature.CP,
			MaxCP: member.Creature.MaxCP,
		})
	}
	return report
}

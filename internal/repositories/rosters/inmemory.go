package rosters

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage.
// Expired sessions are dropped when they are next looked up.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*RosterData
	clock clock.Clock
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string]*RosterData),
		clock: c,
	}
}

// Create stores a new roster session
func (r *InMemoryRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Data == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Data.ID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Data.ID]; exists {
		return nil, errors.AlreadyExistsf("roster %s already exists", input.Data.ID)
	}

	data := input.Data.Clone()
	r.store[data.ID] = data

	slog.DebugContext(ctx, "roster session created", "roster_id", data.ID)

	return &CreateOutput{Data: data.Clone()}, nil
}

// Get retrieves a live roster session by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.live(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	// Return a copy to prevent external modification
	return &GetOutput{Data: data.Clone()}, nil
}

// Update replaces the members of an existing session
func (r *InMemoryRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}
	for key, count := range input.Members {
		if count <= 0 {
			return nil, errors.InvalidArgumentf("member %s must have a positive count, got %d", key, count)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.live(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	data.Members = maps.Clone(input.Members)
	if data.Members == nil {
		data.Members = make(map[string]int)
	}
	data.UpdatedAt = input.UpdatedAt
	data.ExpiresAt = input.ExpiresAt

	return &UpdateOutput{Data: data.Clone()}, nil
}

// Delete removes a roster session
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.live(ctx, input.ID); err != nil {
		return nil, err
	}
	delete(r.store, input.ID)

	return &DeleteOutput{Success: true}, nil
}

// live returns the stored session, evicting it if it has expired. Callers
// must hold the write lock.
func (r *InMemoryRepository) live(ctx context.Context, id string) (*RosterData, error) {
	data, exists := r.store[id]
	if !exists {
		return nil, errors.NotFoundf("roster %s not found", id)
	}
	if !data.ExpiresAt.IsZero() && !r.clock.Now().Before(data.ExpiresAt) {
		delete(r.store, id)
		slog.DebugContext(ctx, "roster session expired", "roster_id", id)
		return nil, errors.NotFoundf("roster %s not found", id)
	}
	return data, nil
}

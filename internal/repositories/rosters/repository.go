// Package rosters stores roster sessions held open by remote callers
package rosters

//go:generate mockgen -destination=mock/mock_repository.go -package=rostersmock github.com/KirkDiggler/godex/internal/repositories/rosters Repository

import (
	"context"
	"maps"
	"time"
)

// Repository defines the storage interface for roster sessions
type Repository interface {
	// Create stores a new roster session
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a live roster session by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces the members of an existing session
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes a roster session
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// RosterData is the stored state of a roster: creature keys mapped to how
// many copies the roster holds.
type RosterData struct {
	ID        string
	Name      string
	Members   map[string]int
	CreatedAt time.Time
	UpdatedAt time.Time

	// ExpiresAt is zero for sessions that never expire
	ExpiresAt time.Time
}

// Clone returns a deep copy
func (d *RosterData) Clone() *RosterData {
	c := *d
	c.Members = maps.Clone(d.Members)
	if c.Members == nil {
		c.Members = make(map[string]int)
	}
	return &c
}

// CreateInput defines the request for creating a roster session
type CreateInput struct {
	Data *RosterData
}

// CreateOutput defines the response for creating a roster session
type CreateOutput struct {
	Data *RosterData
}

// GetInput defines the request for retrieving a roster session
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving a roster session
type GetOutput struct {
	Data *RosterData
}

// UpdateInput defines the request for updating a roster session
type UpdateInput struct {
	ID        string
	Members   map[string]int
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// UpdateOutput defines the response for updating a roster session
type UpdateOutput struct {
	Data *RosterData
}

// DeleteInput defines the request for deleting a roster session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting a roster session
type DeleteOutput struct {
	Success bool
}

package gym

import (
	"time"

	"github.com/KirkDiggler/godex/internal/engine"
)

// Report is the aggregate view of a roster session
type Report struct {
	ID        string
	Name      string
	Total     int
	Members   []MemberSummary
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time

	TypesPresent   []engine.TypeCount
	UncoveredTypes []string
	Offense        []engine.TypeScore
	Defense        []engine.TypeScore
}

// MemberSummary is one roster member as reported to callers
type MemberSummary struct {
	Key   string
	Name  string
	Types []string
	Count int
	CP    int
	MaxCP int
}

// CreateRosterInput defines the request for opening a roster session.
// Members that match no creature are skipped.
type CreateRosterInput struct {
	Name    string
	Members []string
}

// CreateRosterOutput defines the response for opening a roster session
type CreateRosterOutput struct {
	Report *Report
	// Skipped lists the member searches that matched no creature
	Skipped []string
}

// AddMemberInput defines the request for adding one creature
type AddMemberInput struct {
	RosterID string
	Search   string
}

// AddMemberOutput defines the response for adding one creature.
// Added is false when the search matched no creature.
type AddMemberOutput struct {
	Added  bool
	Report *Report
}

// RemoveMemberInput defines the request for removing one creature
type RemoveMemberInput struct {
	RosterID string
	Search   string
}

// RemoveMemberOutput defines the response for removing one creature.
// Removed is false when the creature was not a member.
type RemoveMemberOutput struct {
	Removed bool
	Report  *Report
}

// GetReportInput defines the request for a roster report. The invert
// flags flip the default score ordering.
type GetReportInput struct {
	RosterID      string
	InvertOffense bool
	InvertDefense bool
}

// GetReportOutput defines the response for a roster report
type GetReportOutput struct {
	Report *Report
}

// DeleteRosterInput defines the request for closing a roster session
type DeleteRosterInput struct {
	RosterID string
}

// DeleteRosterOutput defines the response for closing a roster session
type DeleteRosterOutput struct {
	Success bool
}

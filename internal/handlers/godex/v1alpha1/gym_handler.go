package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/orchestrators/gym"
)

// GymHandlerConfig holds dependencies for the gym handler
type GymHandlerConfig struct {
	GymService gym.Service
}

// Validate ensures all required dependencies are present
func (c *GymHandlerConfig) Validate() error {
	if c.GymService == nil {
		return errors.InvalidArgument("gym service is required")
	}
	return nil
}

// GymHandler implements the gym gRPC service
type GymHandler struct {
	gymService gym.Service
}

var _ GymServiceServer = (*GymHandler)(nil)

// NewGymHandler creates a new gym handler with the given configuration
func NewGymHandler(cfg *GymHandlerConfig) (*GymHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &GymHandler{
		gymService: cfg.GymService,
	}, nil
}

// CreateRoster opens a roster session
func (h *GymHandler) CreateRoster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name, err := stringField(req, fieldName)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	members, err := stringListField(req, fieldMembers)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gymService.CreateRoster(ctx, &gym.CreateRosterInput{
		Name:    name,
		Members: members,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"report":  reportValue(output.Report),
		"skipped": stringList(output.Skipped),
	})
}

// AddMember adds one copy of a creature to a roster
func (h *GymHandler) AddMember(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	rosterID, search, err := memberRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gymService.AddMember(ctx, &gym.AddMemberInput{
		RosterID: rosterID,
		Search:   search,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"added":  output.Added,
		"report": reportValue(output.Report),
	})
}

// RemoveMember removes one copy of a creature from a roster
func (h *GymHandler) RemoveMember(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	rosterID, search, err := memberRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gymService.RemoveMember(ctx, &gym.RemoveMemberInput{
		RosterID: rosterID,
		Search:   search,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"removed": output.Removed,
		"report":  reportValue(output.Report),
	})
}

// GetReport returns the aggregate view of a roster
func (h *GymHandler) GetReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	rosterID, err := requiredString(req, fieldRosterID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	invertOffense, err := boolField(req, fieldInvertOffense)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	invertDefense, err := boolField(req, fieldInvertDefense)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gymService.GetReport(ctx, &gym.GetReportInput{
		RosterID:      rosterID,
		InvertOffense: invertOffense,
		InvertDefense: invertDefense,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"report": reportValue(output.Report),
	})
}

// DeleteRoster closes a roster session
func (h *GymHandler) DeleteRoster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	rosterID, err := requiredString(req, fieldRosterID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gymService.DeleteRoster(ctx, &gym.DeleteRosterInput{RosterID: rosterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"success": output.Success,
	})
}

func memberRequest(req *structpb.Struct) (rosterID, search string, err error) {
	if rosterID, err = requiredString(req, fieldRosterID); err != nil {
		return "", "", err
	}
	if search, err = requiredString(req, fieldSearch); err != nil {
		return "", "", err
	}
	return rosterID, search, nil
}

// Package v1alpha1 handles the godex dex and gym grpc service interfaces.
// Requests and responses travel as google.protobuf.Struct messages.
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/orchestrators/dex"
)

// DexHandlerConfig holds dependencies for the dex handler
type DexHandlerConfig struct {
	DexService dex.Service
}

// Validate ensures all required dependencies are present
func (c *DexHandlerConfig) Validate() error {
	if c.DexService == nil {
		return errors.InvalidArgument("dex service is required")
	}
	return nil
}

// DexHandler implements the dex gRPC service
type DexHandler struct {
	dexService dex.Service
}

var _ DexServiceServer = (*DexHandler)(nil)

// NewDexHandler creates a new dex handler with the given configuration
func NewDexHandler(cfg *DexHandlerConfig) (*DexHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DexHandler{
		dexService: cfg.DexService,
	}, nil
}

// GetCreature returns a creature with its derived combat figures
func (h *DexHandler) GetCreature(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	search, err := requiredString(req, fieldSearch)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.dexService.GetCreature(ctx, &dex.GetCreatureInput{Search: search})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"creature": builtCreatureValue(output.Creature),
	})
}

// EvaluateMove returns the DPS figures of a move
func (h *DexHandler) EvaluateMove(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	search, err := requiredString(req, fieldSearch)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.dexService.EvaluateMove(ctx, &dex.EvaluateMoveInput{Search: search})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"move": moveMetricsValue(output.Metrics),
	})
}

// ListCreatures lists catalog creatures, optionally of one type
func (h *DexHandler) ListCreatures(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	typeKey, err := stringField(req, fieldType)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.dexService.ListCreatures(ctx, &dex.ListCreaturesInput{Type: typeKey})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	creatures := make([]any, 0, len(output.Creatures))
	for _, def := range output.Creatures {
		creatures = append(creatures, creatureDefValue(def))
	}

	return respond(map[string]any{
		"creatures": creatures,
	})
}

// CalculateStats returns CP, HP and power-up cost at a level
func (h *DexHandler) CalculateStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	search, err := requiredString(req, fieldSearch)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	level, err := numberField(req, fieldLevel)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	ivs, err := ivsField(req, fieldIVs)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.dexService.CalculateStats(ctx, &dex.CalculateStatsInput{
		Search: search,
		Level:  level,
		IVs:    ivs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"creature":      creatureDefValue(output.Creature),
		"level":         output.Level,
		"ivs":           ivsValue(output.IVs),
		"cp":            output.CP,
		"hp":            output.HP,
		"power_up_cost": output.PowerUpCost,
	})
}

// RollIVs rolls a random IV spread and reports the resulting figures
func (h *DexHandler) RollIVs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	search, err := requiredString(req, fieldSearch)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	level, err := numberField(req, fieldLevel)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.dexService.RollIVs(ctx, &dex.RollIVsInput{
		Search: search,
		Level:  level,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"creature": creatureDefValue(output.Creature),
		"level":    output.Level,
		"ivs":      ivsValue(output.IVs),
		"cp":       output.CP,
		"hp":       output.HP,
	})
}

// GetFamilyTree places a creature within its evolution family
func (h *DexHandler) GetFamilyTree(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	search, err := requiredString(req, fieldSearch)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.dexService.GetFamilyTree(ctx, &dex.GetFamilyTreeInput{Search: search})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"creature": creatureDefValue(output.Creature),
		"family":   familyValue(output.Family),
	})
}

// CanEvolve projects the CP and candy cost of each evolution
func (h *DexHandler) CanEvolve(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	search, err := requiredString(req, fieldSearch)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	cp, err := intField(req, fieldCP)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	candy, err := intField(req, fieldCandy)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.dexService.CanEvolve(ctx, &dex.CanEvolveInput{
		Search: search,
		CP:     cp,
		Candy:  candy,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"creature":   creatureDefValue(output.Creature),
		"projection": projectionValue(output.Projection),
	})
}

func respond(body map[string]any) (*structpb.Struct, error) {
	out, err := toStruct(body)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

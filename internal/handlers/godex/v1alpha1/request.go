package v1alpha1

import (
	"math"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
)

// Request field names
const (
	fieldSearch        = "search"
	fieldType          = "type"
	fieldLevel         = "level"
	fieldIVs           = "ivs"
	fieldCP            = "cp"
	fieldCandy         = "candy"
	fieldName          = "name"
	fieldMembers       = "members"
	fieldRosterID      = "roster_id"
	fieldInvertOffense = "invert_offense"
	fieldInvertDefense = "invert_defense"
)

func stringField(req *structpb.Struct, name string) (string, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return "", nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", errors.InvalidArgumentf("%s must be a string", name)
	}
	return strings.TrimSpace(s.StringValue), nil
}

func requiredString(req *structpb.Struct, name string) (string, error) {
	s, err := stringField(req, name)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", errors.InvalidArgumentf("%s is required", name)
	}
	return s, nil
}

func numberField(req *structpb.Struct, name string) (float64, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be a number", name)
	}
	return n.NumberValue, nil
}

func intField(req *structpb.Struct, name string) (int, error) {
	n, err := numberField(req, name)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("%s must be a whole number", name)
	}
	return int(n), nil
}

func boolField(req *structpb.Struct, name string) (bool, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return false, nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, errors.InvalidArgumentf("%s must be a boolean", name)
	}
	return b.BoolValue, nil
}

func stringListField(req *structpb.Struct, name string) ([]string, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	list, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, errors.InvalidArgumentf("%s must be a list of strings", name)
	}
	values := list.ListValue.GetValues()
	out := make([]string, 0, len(values))
	for _, item := range values {
		s, ok := item.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, errors.InvalidArgumentf("%s must be a list of strings", name)
		}
		out = append(out, s.StringValue)
	}
	return out, nil
}

// ivsField reads {"attack": n, "defense": n, "stamina": n}. Missing stats
// are zero; range checks are left to the engine.
func ivsField(req *structpb.Struct, name string) (godex.IVs, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return godex.IVs{}, nil
	}
	nested, ok := v.GetKind().(*structpb.Value_StructValue)
	if !ok {
		return godex.IVs{}, errors.InvalidArgumentf("%s must be an object", name)
	}

	var (
		ivs godex.IVs
		err error
	)
	if ivs.Attack, err = intField(nested.StructValue, "attack"); err != nil {
		return godex.IVs{}, errors.Wrapf(err, "%s.attack must be a whole number", name)
	}
	if ivs.Defense, err = intField(nested.StructValue, "defense"); err != nil {
		return godex.IVs{}, errors.Wrapf(err, "%s.defense must be a whole number", name)
	}
	if ivs.Stamina, err = intField(nested.StructValue, "stamina"); err != nil {
		return godex.IVs{}, errors.Wrapf(err, "%s.stamina must be a whole number", name)
	}
	return ivs, nil
}

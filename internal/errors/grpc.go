package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError turns err into a status error for a handler to return.
// Status errors pass through. Meta rides along as a Struct detail when it
// can be encoded; otherwise the status goes out without details.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	e := lookup(err)
	if e == nil {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if len(e.Meta) == 0 {
		return st.Err()
	}
	details, convErr := structpb.NewStruct(e.Meta)
	if convErr != nil {
		return st.Err()
	}
	if withDetails, detErr := st.WithDetails(details); detErr == nil {
		st = withDetails
	}
	return st.Err()
}

// FromGRPCError is the client-side inverse of ToGRPCError. Non-status
// errors are returned unchanged.
func FromGRPCError(err error) error {
	st, ok := status.FromError(err)
	if err == nil || !ok {
		return err
	}

	e := New(codeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			e.Meta = meta.AsMap()
			break
		}
	}
	return e
}

// Package errors provides the structured error type used across godex.
//
// Every layer returns *Error values carrying a Code, a user-facing message,
// an optional cause and free-form metadata:
//
//	err := errors.NotFoundf("creature %q not found", search).
//	    WithMeta("search", search)
//
// Lookup misses inside the engine and catalog are reported with comma-ok
// returns instead; orchestrators turn a miss into NotFound at the boundary.
//
// Level and IV validation failures have dedicated constructors so callers
// can tell them apart from other argument errors:
//
//	if errors.IsInvalidLevel(err) {
//	    // level is not in the level table
//	}
//
// Handlers convert errors with ToGRPCError; clients convert back with
// FromGRPCError. Metadata travels as a google.protobuf.Struct status detail.
package errors

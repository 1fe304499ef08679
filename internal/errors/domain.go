package errors

// MetaReason is the metadata key that distinguishes domain failures sharing a code.
const MetaReason = "reason"

// Reasons attached to stat calculation failures
const (
	ReasonInvalidLevel = "invalid_level"
	ReasonInvalidIV    = "invalid_iv"
)

// InvalidLevel reports a level that has no entry in the level table.
// CP and HP are meaningless there, so the level is never clamped.
func InvalidLevel(level float64) *Error {
	return OutOfRangef("level %g is not in the level table", level).
		WithMeta(MetaReason, ReasonInvalidLevel).
		WithMeta("level", level)
}

// InvalidIV reports an individual value outside [0,15]
func InvalidIV(stat string, value int) *Error {
	return InvalidArgumentf("%s IV %d must be between 0 and 15", stat, value).
		WithMeta(MetaReason, ReasonInvalidIV).
		WithMeta("stat", stat).
		WithMeta("value", value)
}

// IsInvalidLevel checks if an error was produced by InvalidLevel
func IsInvalidLevel(err error) bool {
	return IsOutOfRange(err) && Reason(err) == ReasonInvalidLevel
}

// IsInvalidIV checks if an error was produced by InvalidIV
func IsInvalidIV(err error) bool {
	return IsInvalidArgument(err) && Reason(err) == ReasonInvalidIV
}

package errors

import (
	"errors"
)

// As finds the first *Error in err's chain
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// lookup unwraps err to its *Error, or nil when the chain carries none
func lookup(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// GetCode returns the code of err. A nil error is CodeOK and a foreign
// error counts as CodeInternal, matching how ToGRPCError reports it.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e := lookup(err); e != nil {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata attached to err, if any
func GetMeta(err error) map[string]any {
	if e := lookup(err); e != nil {
		return e.Meta
	}
	return nil
}

// GetMessage returns the caller-facing message of err
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := lookup(err); e != nil {
		return e.Message
	}
	return err.Error()
}

// Reason returns the MetaReason tag of err, or "" when it has none
func Reason(err error) string {
	reason, _ := GetMeta(err)[MetaReason].(string)
	return reason
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsNotFound reports a missing creature, move, type or roster
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsInvalidArgument reports a malformed request
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }

// IsAlreadyExists reports a roster id that is already taken
func IsAlreadyExists(err error) bool { return HasCode(err, CodeAlreadyExists) }

// IsOutOfRange reports a value outside its table, such as a level
func IsOutOfRange(err error) bool { return HasCode(err, CodeOutOfRange) }

// IsInternal reports an unexpected failure
func IsInternal(err error) bool { return HasCode(err, CodeInternal) }

// IsDataLoss reports catalog data that failed to load or parse
func IsDataLoss(err error) bool { return HasCode(err, CodeDataLoss) }

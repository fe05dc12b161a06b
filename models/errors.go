package models

import (
	"errors"
	"fmt"
)

// FailureKindENUMType precondition failure classification ENUM value type
type FailureKindENUMType string

const (
	// FailureKindPermissionDenied caller is not the administrator or not the
	// capsule owner
	FailureKindPermissionDenied FailureKindENUMType = "PERMISSION_DENIED"

	// FailureKindNotFound capsule ID outside the assigned range
	FailureKindNotFound FailureKindENUMType = "NOT_FOUND"

	// FailureKindInvalidState capsule no longer active where activity is required
	FailureKindInvalidState FailureKindENUMType = "INVALID_STATE"

	// FailureKindInvalidArgument malformed operation input
	FailureKindInvalidArgument FailureKindENUMType = "INVALID_ARGUMENT"

	// FailureKindTimingViolation operation attempted on the wrong side of a
	// capsule's unlock time, or unlock time outside the allowed window
	FailureKindTimingViolation FailureKindENUMType = "TIMING_VIOLATION"

	// FailureKindEnginePaused gated operation attempted while the engine is paused
	FailureKindEnginePaused FailureKindENUMType = "ENGINE_PAUSED"
)

// RegistryFailure typed precondition violation
//
// Every engine failure carries exactly one kind; no operation performs a
// partial state mutation before surfacing one of these.
type RegistryFailure struct {
	// Kind failure classification
	Kind FailureKindENUMType `json:"kind" validate:"required,failure_kind"`
	// Message human readable explanation
	Message string `json:"message"`
}

// Error implement the error interface
func (f RegistryFailure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// NewFailure define a new registry failure of the given kind
func NewFailure(kind FailureKindENUMType, format string, args ...interface{}) RegistryFailure {
	return RegistryFailure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// FailureKindOf extract the failure kind from an error chain
//
// Returns empty string when the error does not wrap a RegistryFailure.
func FailureKindOf(err error) FailureKindENUMType {
	var failure RegistryFailure
	if errors.As(err, &failure) {
		return failure.Kind
	}
	return ""
}

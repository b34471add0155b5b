package entities

import "fmt"

// ValidationError reports malformed or out-of-range input. The caller can
// always recover by correcting the named field.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError reports a state change the lifecycle does not allow.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("invalid %s transition %s -> %s", e.Entity, e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// ConsistencyError reports a request that contradicts the recorded aggregate
// state, such as pricing a job with no measurements.
type ConsistencyError struct {
	Reason string
}

func NewConsistencyError(format string, args ...any) *ConsistencyError {
	return &ConsistencyError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConsistencyError) Error() string {
	return "consistency violation: " + e.Reason
}

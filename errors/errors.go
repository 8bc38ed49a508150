package errors

import "fmt"

// ParseError wraps a specific error with context about where it occurred.
type ParseError struct {
	Line   int
	Record []string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v (record: %v)", e.Line, e.Err, e.Record)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParameterError reports a staffing parameter rejected before any arithmetic ran.
type ParameterError struct {
	Field string
	Value float64
	Err   error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s=%v", e.Err, e.Field, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// Staffing model errors
var (
	// ErrInvalidParameter marks inputs that would make a ratio undefined:
	// zero divisors, fractions at or above 1, NaN or Inf.
	ErrInvalidParameter = fmt.Errorf("invalid parameter")
	// ErrNegativeInput marks inputs that must be positive but are not.
	ErrNegativeInput = fmt.Errorf("negative input")
)

// CSV field errors
var (
	ErrInvalidFieldCount     = fmt.Errorf("invalid field count")
	ErrInvalidArrivalRate    = fmt.Errorf("invalid arrival rate")
	ErrInvalidServiceTime    = fmt.Errorf("invalid service time")
	ErrInvalidAbandonment    = fmt.Errorf("invalid abandonment rate")
	ErrInvalidUnavailability = fmt.Errorf("invalid unavailability percentage")
	ErrInvalidMaxWaitTime    = fmt.Errorf("invalid max wait time")
	ErrInvalidProductiveTime = fmt.Errorf("invalid productive time")
	ErrEmptyRecord           = fmt.Errorf("empty record")
)

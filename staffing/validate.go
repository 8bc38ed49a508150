package staffing

import (
	"call-staffing/errors"
	"call-staffing/models"
	"math"
)

// Validate rejects parameters that would make any formula undefined.
// It returns a *errors.ParameterError wrapping errors.ErrInvalidParameter
// or errors.ErrNegativeInput.
func Validate(p models.StaffingParameters) error {
	if err := checkRate("arrival_rate", p.ArrivalRate); err != nil {
		return err
	}
	if err := checkSeconds("service_time", p.ServiceTime); err != nil {
		return err
	}
	if err := checkSeconds("max_wait_time", p.MaxWaitTime); err != nil {
		return err
	}
	if err := checkSeconds("productive_time", p.ProductiveTime); err != nil {
		return err
	}
	if err := checkFraction("abandonment_rate", p.AbandonmentRate); err != nil {
		return err
	}
	if err := checkFraction("unavailability_percentage", p.UnavailabilityPercentage); err != nil {
		return err
	}
	if err := checkNonNegative("patience_time", p.PatienceTime); err != nil {
		return err
	}
	return checkSeconds("interval_rate", float64(p.IntervalRate))
}

func invalid(field string, v float64) error {
	return &errors.ParameterError{Field: field, Value: v, Err: errors.ErrInvalidParameter}
}

func negative(field string, v float64) error {
	return &errors.ParameterError{Field: field, Value: v, Err: errors.ErrNegativeInput}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkRate requires a strictly positive traffic figure.
func checkRate(field string, v float64) error {
	if !finite(v) {
		return invalid(field, v)
	}
	if v <= 0 {
		return negative(field, v)
	}
	return nil
}

// checkSeconds requires a strictly positive divisor. Zero is an invalid
// parameter rather than a negative input since it is a division by zero.
func checkSeconds(field string, v float64) error {
	if !finite(v) || v == 0 {
		return invalid(field, v)
	}
	if v < 0 {
		return negative(field, v)
	}
	return nil
}

// checkFraction requires v in [0, 1).
func checkFraction(field string, v float64) error {
	if !finite(v) || v >= 1 {
		return invalid(field, v)
	}
	if v < 0 {
		return negative(field, v)
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if !finite(v) {
		return invalid(field, v)
	}
	if v < 0 {
		return negative(field, v)
	}
	return nil
}

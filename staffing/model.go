// Package staffing estimates call-center staffing with a linear ratio model:
// agents needed for a traffic level, the calls a team can absorb, the
// service level projected for a range of headcounts and the hourly spread
// of agents across the operating window.
//
// Every function is pure. Identical inputs always produce identical outputs,
// so a Model can be shared by any number of goroutines.
package staffing

import (
	"call-staffing/errors"
	"call-staffing/models"
	"fmt"
	"math"
)

// Fixed operational constants of the model.
const (
	// IntervalRate is the number of hourly intervals in an operating day.
	IntervalRate = 12
	// FirstHour is the opening hour of the operating window (08:00-20:00).
	FirstHour = 8
	// ScenarioSteps is the number of headcount levels simulated.
	ScenarioSteps = 12

	MaxWaitTime         = 20.0
	PatienceTime        = 100.0
	ProductiveTime      = 6.83 * secondsPerHour
	WorkingDaysPerMonth = 22

	// hourlyProductiveStart seeds the per-slot productive time accumulator.
	hourlyProductiveStart = 6.83 * secondsPerHour

	secondsPerHour = 3600.0
)

// Assumptions are the business constants behind the ratio approximations.
type Assumptions struct {
	// ExceedThresholdFraction is the share of offered calls assumed to wait
	// longer than the target under current staffing.
	ExceedThresholdFraction float64 `yaml:"exceed_threshold_fraction" json:"exceed_threshold_fraction"`
	// AnsweredWithinTargetFraction scales projected service levels.
	AnsweredWithinTargetFraction float64 `yaml:"answered_within_target_fraction" json:"answered_within_target_fraction"`
	// ServiceLevelTarget is the service level a scenario must exceed to be
	// flagged as meeting the target.
	ServiceLevelTarget float64 `yaml:"service_level_target" json:"service_level_target"`
}

// DefaultAssumptions returns the 80/20 assumptions with a 75% target.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ExceedThresholdFraction:      0.2,
		AnsweredWithinTargetFraction: 0.8,
		ServiceLevelTarget:           0.75,
	}
}

// Validate checks every assumption lies in (0, 1].
func (a Assumptions) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"exceed_threshold_fraction", a.ExceedThresholdFraction},
		{"answered_within_target_fraction", a.AnsweredWithinTargetFraction},
		{"service_level_target", a.ServiceLevelTarget},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || f.value <= 0 || f.value > 1 {
			return &errors.ParameterError{Field: f.name, Value: f.value, Err: errors.ErrInvalidParameter}
		}
	}
	return nil
}

// Model evaluates the staffing formulas under a set of assumptions.
type Model struct {
	assumptions Assumptions
}

// NewModel returns a Model using the given assumptions.
func NewModel(a Assumptions) (*Model, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("model assumptions: %w", err)
	}
	return &Model{assumptions: a}, nil
}

// Assumptions returns the model's assumptions.
func (m *Model) Assumptions() Assumptions {
	return m.assumptions
}

var defaultModel = &Model{assumptions: DefaultAssumptions()}

// Default returns the model built from DefaultAssumptions.
func Default() *Model {
	return defaultModel
}

// DefaultParameters returns the parameters the planning screen starts from.
func DefaultParameters() models.StaffingParameters {
	return models.StaffingParameters{
		ArrivalRate:              468,
		ServiceTime:              300,
		MaxWaitTime:              MaxWaitTime,
		AbandonmentRate:          0.05,
		UnavailabilityPercentage: 0.38,
		PatienceTime:             PatienceTime,
		ProductiveTime:           ProductiveTime,
		IntervalRate:             IntervalRate,
	}
}

// maxCount is math.MaxInt rounded up to the first float64 outside the int range.
const maxCount = float64(math.MaxInt)

// roundHalfUp rounds to the nearest integer with halves going up.
// Callers only pass non-negative values, where math.Round matches half-up.
// Results that do not fit in an int are rejected under field.
func roundHalfUp(field string, x float64) (int, error) {
	r := math.Round(x)
	if !finite(r) || r >= maxCount {
		return 0, invalid(field, x)
	}
	return int(r), nil
}

// EstimateAgents calls Model.EstimateAgents on the default model.
func EstimateAgents(arrivalRate, serviceTime, maxWaitTime, abandonmentRate float64) (int, error) {
	return defaultModel.EstimateAgents(arrivalRate, serviceTime, maxWaitTime, abandonmentRate)
}

// MaxCapacity calls Model.MaxCapacity on the default model.
func MaxCapacity(agents, serviceTime, productiveTime float64) (int, error) {
	return defaultModel.MaxCapacity(agents, serviceTime, productiveTime)
}

// HourlyAgents calls Model.HourlyAgents on the default model.
func HourlyAgents(p models.StaffingParameters) (models.HourlyTable, error) {
	return defaultModel.HourlyAgents(p)
}

// Simulate calls Model.Simulate on the default model.
func Simulate(p models.StaffingParameters) (models.ScenarioTable, error) {
	return defaultModel.Simulate(p)
}

// BuildReport calls Model.BuildReport on the default model.
func BuildReport(p models.StaffingParameters) (models.Report, error) {
	return defaultModel.BuildReport(p)
}

// Package metrics provides Prometheus observability metrics for the staffing estimator.
// It includes Critical and Important metrics for business and operational visibility.
package metrics

import (
	"call-staffing/errors"
	"call-staffing/models"
	stderrors "errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// CRITICAL METRICS - Business Impact Visibility
// =============================================================================

// AgentsNeeded tracks the headline agent requirement of the last report, by batch row.
var AgentsNeeded = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "staffing",
	Name:      "agents_needed",
	Help:      "Agents needed to meet the wait-time target for the last report",
}, []string{"name"})

// MaxCapacity tracks the daily call capacity of the required headcount.
var MaxCapacity = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "staffing",
	Name:      "max_capacity_calls",
	Help:      "Maximum calls per day the required headcount can handle",
}, []string{"name"})

// HourlyPeakAgents tracks the largest hourly slot requirement.
var HourlyPeakAgents = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "staffing",
	Name:      "hourly_peak_agents",
	Help:      "Largest per-hour agent requirement in the operating window",
}, []string{"name"})

// ScenariosMeetingTarget tracks how many scenarios reach the service level target.
var ScenariosMeetingTarget = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "staffing",
	Name:      "scenarios_meeting_target",
	Help:      "Number of simulated headcounts whose service level exceeds the target",
}, []string{"name"})

// =============================================================================
// IMPORTANT METRICS - Operational Health
// =============================================================================

// ReportsTotal tracks reports successfully built.
var ReportsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "staffing",
	Name:      "reports_total",
	Help:      "Total staffing reports successfully built",
})

// ValidationErrorsTotal tracks rejected parameters by field and error kind.
var ValidationErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "staffing",
	Name:      "validation_errors_total",
	Help:      "Parameters rejected before computation, by field and kind",
}, []string{"field", "kind"})

// ScenarioCollisionsTotal tracks scenario steps that rounded onto an existing headcount.
var ScenarioCollisionsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "staffing",
	Name:      "scenario_collisions_total",
	Help:      "Scenario steps whose headcount overwrote an earlier step",
})

// ReportDurationSeconds tracks time to build a report.
var ReportDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "staffing",
	Name:      "report_duration_seconds",
	Help:      "Time taken to build a staffing report",
	Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
})

// ParserErrorsTotal tracks parse errors by error type.
var ParserErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "errors_total",
	Help:      "Total parse errors by error type",
}, []string{"error_type"})

// ParserRecordsTotal tracks total records successfully parsed.
var ParserRecordsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "records_total",
	Help:      "Total CSV records successfully parsed",
})

// ParserDurationSeconds tracks time to parse input files.
var ParserDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parser",
	Name:      "duration_seconds",
	Help:      "Time taken to parse CSV input file",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
})

// =============================================================================
// Helper Functions
// =============================================================================

// ObserveReport records the figures of a built report under the given name.
func ObserveReport(name string, report models.Report, seconds float64) {
	ReportsTotal.Inc()
	ReportDurationSeconds.Observe(seconds)
	ScenarioCollisionsTotal.Add(float64(report.Scenarios.Collisions))

	AgentsNeeded.WithLabelValues(name).Set(float64(report.AgentsNeeded))
	MaxCapacity.WithLabelValues(name).Set(float64(report.MaxCapacity))
	HourlyPeakAgents.WithLabelValues(name).Set(float64(report.Hourly.Peak()))

	meeting := 0
	for _, e := range report.Scenarios.Entries {
		if e.MeetsTarget {
			meeting++
		}
	}
	ScenariosMeetingTarget.WithLabelValues(name).Set(float64(meeting))
}

// ObserveError counts a rejected parameter. Errors that are not parameter
// errors are ignored.
func ObserveError(err error) {
	var paramErr *errors.ParameterError
	if !stderrors.As(err, &paramErr) {
		return
	}
	kind := "invalid"
	if stderrors.Is(paramErr.Err, errors.ErrNegativeInput) {
		kind = "negative"
	}
	ValidationErrorsTotal.WithLabelValues(paramErr.Field, kind).Inc()
}

// ResetReportGauges clears per-name gauges before a new batch run.
func ResetReportGauges() {
	AgentsNeeded.Reset()
	MaxCapacity.Reset()
	HourlyPeakAgents.Reset()
	ScenariosMeetingTarget.Reset()
}

package staffing

import (
	"call-staffing/models"
	"fmt"
)

// BuildReport runs every calculation for p and collects the headline figures,
// the scenario table and the hourly breakdown.
func (m *Model) BuildReport(p models.StaffingParameters) (models.Report, error) {
	if err := Validate(p); err != nil {
		return models.Report{}, err
	}

	agents, err := m.EstimateAgents(p.ArrivalRate, p.ServiceTime, p.MaxWaitTime, p.AbandonmentRate)
	if err != nil {
		return models.Report{}, fmt.Errorf("agents needed: %w", err)
	}

	maxCapacity, err := m.MaxCapacity(float64(agents), p.ServiceTime, p.ProductiveTime)
	if err != nil {
		return models.Report{}, fmt.Errorf("max capacity: %w", err)
	}

	consultor := float64(agents) / float64(p.IntervalRate)
	perAgent, err := m.capacityRatio(consultor, p.ServiceTime, p.ProductiveTime)
	if err != nil {
		return models.Report{}, fmt.Errorf("capacity per agent: %w", err)
	}

	scenarios, err := m.Simulate(p)
	if err != nil {
		return models.Report{}, fmt.Errorf("scenarios: %w", err)
	}

	hourly, err := m.HourlyAgents(p)
	if err != nil {
		return models.Report{}, fmt.Errorf("hourly agents: %w", err)
	}

	daily := p.ArrivalRate * float64(p.IntervalRate)

	return models.Report{
		Parameters:           p,
		AgentsNeeded:         agents,
		MaxCapacity:          maxCapacity,
		NetAgentsPerInterval: consultor,
		NetAgents:            int(consultor),
		CapacityPerAgent:     perAgent,
		Availability:         1 - p.UnavailabilityPercentage,
		Volume: models.Volume{
			Hourly:  p.ArrivalRate,
			Daily:   daily,
			Monthly: daily * WorkingDaysPerMonth,
		},
		Scenarios: scenarios,
		Hourly:    hourly,
	}, nil
}

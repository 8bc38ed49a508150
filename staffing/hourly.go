package staffing

import (
	"call-staffing/models"
	"fmt"
)

// HourlyAgents spreads the arrival rate evenly over the twelve slots from
// 08:00 to 20:00 and estimates the agents each slot needs.
func (m *Model) HourlyAgents(p models.StaffingParameters) (models.HourlyTable, error) {
	if err := Validate(p); err != nil {
		return models.HourlyTable{}, err
	}

	table := models.HourlyTable{Slots: make([]models.HourlySlot, 0, IntervalRate)}
	productiveTimePerHour := hourlyProductiveStart

	for hour := FirstHour; hour < FirstHour+IntervalRate; hour++ {
		arrivalRatePerHour := p.ArrivalRate / IntervalRate
		agentsNeeded, err := m.EstimateAgents(arrivalRatePerHour, p.ServiceTime, p.MaxWaitTime, p.AbandonmentRate)
		if err != nil {
			return models.HourlyTable{}, fmt.Errorf("slot %d: %w", hour, err)
		}

		// The slot capacity is computed but not reported; only the agent
		// count reaches the table.
		if _, err := m.MaxCapacity(float64(agentsNeeded), p.ServiceTime, productiveTimePerHour); err != nil {
			return models.HourlyTable{}, fmt.Errorf("slot %d: %w", hour, err)
		}

		table.Slots = append(table.Slots, models.HourlySlot{
			Hour:         hour,
			Label:        fmt.Sprintf("%d:00-%d:00", hour, hour+1),
			AgentsNeeded: agentsNeeded,
		})
		productiveTimePerHour += secondsPerHour
	}

	return table, nil
}

package staffing

import "call-staffing/models"

// Simulate projects the service level reached by twelve evenly spaced
// headcount levels, from one twelfth of the per-interval requirement up to
// the full requirement.
//
// Service levels grow linearly with headcount and are not clamped, so large
// levels can exceed 1. When two steps round to the same headcount the later
// step's figures replace the earlier ones in place.
func (m *Model) Simulate(p models.StaffingParameters) (models.ScenarioTable, error) {
	if err := Validate(p); err != nil {
		return models.ScenarioTable{}, err
	}

	agents, err := m.EstimateAgents(p.ArrivalRate, p.ServiceTime, p.MaxWaitTime, p.AbandonmentRate)
	if err != nil {
		return models.ScenarioTable{}, err
	}

	intervalRate := float64(p.IntervalRate)
	consultor := float64(agents) / intervalRate
	hcProductive := consultor * (1 - p.UnavailabilityPercentage)
	totalVolume := p.ArrivalRate * intervalRate

	maxCapacity, err := m.capacityRatio(consultor, p.ServiceTime, p.ProductiveTime)
	if err != nil {
		return models.ScenarioTable{}, err
	}

	increaseL := hcProductive / intervalRate
	increaseG := consultor / intervalRate
	availability := 1 - p.UnavailabilityPercentage

	table := models.ScenarioTable{Entries: make([]models.ScenarioEntry, 0, ScenarioSteps)}
	index := make(map[int]int, ScenarioSteps)

	for i := 1; i <= ScenarioSteps; i++ {
		key, err := roundHalfUp("scenario_agents", float64(i)*increaseG)
		if err != nil {
			return models.ScenarioTable{}, err
		}
		ns := float64(i) * increaseL
		value := ((ns * maxCapacity) / totalVolume) * m.assumptions.AnsweredWithinTargetFraction

		capacity, err := roundHalfUp("scenario_capacity", float64(key)*availability*maxCapacity)
		if err != nil {
			return models.ScenarioTable{}, err
		}

		entry := models.ScenarioEntry{
			Agents:       key,
			ServiceLevel: value,
			Capacity:     capacity,
			MeetsTarget:  value > m.assumptions.ServiceLevelTarget,
		}

		if pos, ok := index[key]; ok {
			table.Entries[pos] = entry
			table.Collisions++
			continue
		}
		index[key] = len(table.Entries)
		table.Entries = append(table.Entries, entry)
	}

	return table, nil
}

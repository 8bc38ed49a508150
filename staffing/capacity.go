package staffing

// MaxCapacity returns how many calls agents can handle with productiveTime
// seconds available each and serviceTime seconds per call.
// agents may be fractional, as the scenario simulation passes a per-interval
// headcount.
func (m *Model) MaxCapacity(agents, serviceTime, productiveTime float64) (int, error) {
	if err := checkNonNegative("agents", agents); err != nil {
		return 0, err
	}
	if err := checkSeconds("service_time", serviceTime); err != nil {
		return 0, err
	}
	if err := checkSeconds("productive_time", productiveTime); err != nil {
		return 0, err
	}

	maxCapacity := (productiveTime / serviceTime) * agents
	return roundHalfUp("max_capacity", maxCapacity)
}

// capacityRatio returns the capacity of consultor agents per unit of consultor.
func (m *Model) capacityRatio(consultor, serviceTime, productiveTime float64) (float64, error) {
	if consultor == 0 {
		return 0, invalid("consultor", consultor)
	}
	capacity, err := m.MaxCapacity(consultor, serviceTime, productiveTime)
	if err != nil {
		return 0, err
	}
	return float64(capacity) / consultor, nil
}

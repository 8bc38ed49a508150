package staffing

// EstimateAgents returns the agents needed to serve arrivalRate answered
// calls per hour.
//
// The offered traffic is backed out of the answered rate and the abandonment
// fraction. A fixed share of it is assumed to exceed the wait target, and
// that share's workload in hours is divided by the wait target in hours.
func (m *Model) EstimateAgents(arrivalRate, serviceTime, maxWaitTime, abandonmentRate float64) (int, error) {
	if err := checkRate("arrival_rate", arrivalRate); err != nil {
		return 0, err
	}
	if err := checkSeconds("service_time", serviceTime); err != nil {
		return 0, err
	}
	if err := checkSeconds("max_wait_time", maxWaitTime); err != nil {
		return 0, err
	}
	if err := checkFraction("abandonment_rate", abandonmentRate); err != nil {
		return 0, err
	}

	totalCallsReceived := arrivalRate / (1 - abandonmentRate)
	exceededThreshold := totalCallsReceived * m.assumptions.ExceedThresholdFraction

	serviceTimeHours := serviceTime / secondsPerHour
	maxWaitHours := maxWaitTime / secondsPerHour

	agentsNeeded := (exceededThreshold * serviceTimeHours) / maxWaitHours
	return roundHalfUp("agents_needed", agentsNeeded)
}

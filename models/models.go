package models

// StaffingParameters is the input to every staffing calculation.
// Times are in seconds, rates and percentages are fractions.
type StaffingParameters struct {
	ArrivalRate              float64 `json:"arrival_rate"`
	ServiceTime              float64 `json:"service_time"`
	MaxWaitTime              float64 `json:"max_wait_time"`
	AbandonmentRate          float64 `json:"abandonment_rate"`
	UnavailabilityPercentage float64 `json:"unavailability_percentage"`
	// PatienceTime is carried through for callers but does not enter the model.
	PatienceTime   float64 `json:"patience_time"`
	ProductiveTime float64 `json:"productive_time"`
	IntervalRate   int     `json:"interval_rate"`
}

// ScenarioEntry pairs a headcount level with its projected service level.
type ScenarioEntry struct {
	Agents       int     `json:"agents"`
	ServiceLevel float64 `json:"service_level"`
	// Capacity is the maximum number of calls the available share of Agents can handle in a day.
	Capacity    int  `json:"capacity"`
	MeetsTarget bool `json:"meets_target"`
}

// ScenarioTable is an ordered mapping of headcount to service level.
// Entries keep the position of the first insertion of their key.
type ScenarioTable struct {
	Entries []ScenarioEntry `json:"entries"`
	// Collisions counts scenario steps whose headcount overwrote an earlier entry.
	Collisions int `json:"collisions"`
}

// Get returns the entry for the given headcount.
func (t ScenarioTable) Get(agents int) (ScenarioEntry, bool) {
	for _, e := range t.Entries {
		if e.Agents == agents {
			return e, true
		}
	}
	return ScenarioEntry{}, false
}

// HourlySlot holds the agents needed for one hour of the operating window.
type HourlySlot struct {
	Hour         int    `json:"hour"`
	Label        string `json:"label"`
	AgentsNeeded int    `json:"agents_needed"`
}

// HourlyTable lists the operating window slots in ascending hour order.
type HourlyTable struct {
	Slots []HourlySlot `json:"slots"`
}

// Peak returns the largest per-slot requirement.
func (t HourlyTable) Peak() int {
	peak := 0
	for _, s := range t.Slots {
		if s.AgentsNeeded > peak {
			peak = s.AgentsNeeded
		}
	}
	return peak
}

// Volume rolls the hourly arrival rate up to a day and a month.
type Volume struct {
	Hourly  float64 `json:"hourly"`
	Daily   float64 `json:"daily"`
	Monthly float64 `json:"monthly"`
}

// Report bundles every figure derived from one StaffingParameters value.
type Report struct {
	ID                   string             `json:"id,omitempty"`
	Parameters           StaffingParameters `json:"parameters"`
	AgentsNeeded         int                `json:"agents_needed"`
	MaxCapacity          int                `json:"max_capacity"`
	NetAgentsPerInterval float64            `json:"net_agents_per_interval"`
	NetAgents            int                `json:"net_agents"`
	CapacityPerAgent     float64            `json:"capacity_per_agent"`
	Availability         float64            `json:"availability"`
	Volume               Volume             `json:"volume"`
	Scenarios            ScenarioTable      `json:"scenarios"`
	Hourly               HourlyTable        `json:"hourly"`
}

// NamedReport ties a report to the batch row it was built from.
type NamedReport struct {
	Name   string `json:"name"`
	Report Report `json:"report"`
}

// ParameterSet is one named row of a batch input.
type ParameterSet struct {
	Name       string             `json:"name"`
	Parameters StaffingParameters `json:"parameters"`
}

package storage

// SectionStatus is the stored state of one machine section on one date. The
// life-cycle fields are derived from InstallDate at submission time; a section
// is either fully populated or absent from the record, never partial.
type SectionStatus struct {
	MachineType  string  `json:"type"`
	InstallDate  string  `json:"date"`
	LifeInDays   int     `json:"lifeInDays"`
	LifeInMonths float64 `json:"lifeInMonths"`
	NextSchedule string  `json:"nextSchedule"`
}

// ElectricalRecord is the stored per-date maintenance record. Sections holds
// only the sections that have been stored for that date.
type ElectricalRecord struct {
	Date     string                   `json:"date"`
	Sections map[string]SectionStatus `json:"sections"`
}

// SectionTotals is one section's slice of a cumulative rollup: days and
// months are running sums, type and next schedule carry the most recent
// non-empty value.
type SectionTotals struct {
	MachineType  string  `json:"type"`
	LifeInDays   int     `json:"lifeInDays"`
	LifeInMonths float64 `json:"lifeInMonths"`
	NextSchedule string  `json:"nextSchedule"`
}

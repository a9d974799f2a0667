package storage

// DepartmentCounters holds one department's observations for a single date.
// Counters accumulate across submissions for the same date, they never reset.
type DepartmentCounters struct {
	OndateProd  int `json:"ondate_prod"`
	OndateHands int `json:"ondate_hands"`
}

// ProductionRecord is the stored per-date record. Once stored, Departments is
// total over the ten department codes: departments never submitted carry zero
// counters rather than being absent.
type ProductionRecord struct {
	Date        string                        `json:"date"`
	Departments map[string]DepartmentCounters `json:"-"`
}

// DepartmentTotals is one department's slice of a monthly rollup.
type DepartmentTotals struct {
	Prod  int `json:"prod"`
	Hands int `json:"hands"`
}

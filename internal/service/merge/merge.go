// Package merge holds the per-date upsert policies. These are the rules that
// decide what a stored record looks like after a new submission lands on a
// date that may already have data.
package merge

import (
	"mill-backend/internal/constants"
	"mill-backend/internal/storage"
)

// Production merges an incoming partial department mapping into the existing
// record for date. With no existing record a new one is created, zero-filled
// for departments not submitted. With an existing record, incoming counters
// are ADDED to the stored ones: a submission is an additional observation,
// not a correction, so resubmitting the same payload doubles the counters.
func Production(existing *storage.ProductionRecord, date string, incoming map[string]storage.DepartmentCounters) storage.ProductionRecord {
	rec := storage.ProductionRecord{
		Date:        date,
		Departments: make(map[string]storage.DepartmentCounters, len(constants.Departments)),
	}

	if existing != nil {
		for dept, c := range existing.Departments {
			rec.Departments[dept] = c
		}
	}
	for _, dept := range constants.Departments {
		if _, ok := rec.Departments[dept]; !ok {
			rec.Departments[dept] = storage.DepartmentCounters{}
		}
	}

	for dept, in := range incoming {
		c := rec.Departments[dept]
		c.OndateProd += in.OndateProd
		c.OndateHands += in.OndateHands
		rec.Departments[dept] = c
	}

	return rec
}

// Electrical merges incoming sections into the existing record for date.
// Create and update deliberately differ: a new record stores exactly the
// submitted sections, while an update replaces wholesale only sections the
// record already has — a section submitted for the first time against an
// existing date is dropped. The asymmetry is inherited behavior that stored
// data may depend on; callers must not paper over it.
func Electrical(existing *storage.ElectricalRecord, date string, incoming map[string]storage.SectionStatus) storage.ElectricalRecord {
	if existing == nil {
		rec := storage.ElectricalRecord{
			Date:     date,
			Sections: make(map[string]storage.SectionStatus, len(incoming)),
		}
		for section, st := range incoming {
			rec.Sections[section] = st
		}
		return rec
	}

	rec := storage.ElectricalRecord{
		Date:     date,
		Sections: make(map[string]storage.SectionStatus, len(existing.Sections)),
	}
	for section, st := range existing.Sections {
		rec.Sections[section] = st
	}

	for section, st := range incoming {
		if _, ok := rec.Sections[section]; ok {
			rec.Sections[section] = st
		}
	}

	return rec
}

// Package aggregate folds sets of dated records into cumulative rollups.
package aggregate

import (
	"mill-backend/internal/constants"
	"mill-backend/internal/storage"
)

// Sections folds maintenance records into per-section totals. Life days and
// months are summed across every record carrying the section. Machine type
// and next schedule are last-non-empty-wins in slice order; the storage scan
// orders records by date ascending, so the winner is the most recent date.
// The result always carries all three sections; callers that need to
// distinguish "no data" check len(records) themselves.
func Sections(records []storage.ElectricalRecord) map[string]storage.SectionTotals {
	totals := make(map[string]storage.SectionTotals, len(constants.Sections))
	for _, section := range constants.Sections {
		totals[section] = storage.SectionTotals{}
	}

	for _, rec := range records {
		for _, section := range constants.Sections {
			st, ok := rec.Sections[section]
			if !ok {
				continue
			}

			acc := totals[section]
			acc.LifeInDays += st.LifeInDays
			acc.LifeInMonths += st.LifeInMonths
			if st.MachineType != "" {
				acc.MachineType = st.MachineType
			}
			if st.NextSchedule != "" {
				acc.NextSchedule = st.NextSchedule
			}
			totals[section] = acc
		}
	}

	return totals
}

// ProductionMonth folds production records into per-department totals. The
// result is always the full ten-department template, zero-filled when
// nothing matched — this rollup has no "no data" shape, unlike Sections.
func ProductionMonth(records []storage.ProductionRecord) map[string]storage.DepartmentTotals {
	totals := make(map[string]storage.DepartmentTotals, len(constants.Departments))
	for _, dept := range constants.Departments {
		totals[dept] = storage.DepartmentTotals{}
	}

	for _, rec := range records {
		for _, dept := range constants.Departments {
			c, ok := rec.Departments[dept]
			if !ok {
				continue
			}

			acc := totals[dept]
			acc.Prod += c.OndateProd
			acc.Hands += c.OndateHands
			totals[dept] = acc
		}
	}

	return totals
}

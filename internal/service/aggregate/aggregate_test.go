package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mill-backend/internal/constants"
	"mill-backend/internal/storage"
)

func TestSections_SumsLifeAndKeepsLastNonEmpty(t *testing.T) {
	records := []storage.ElectricalRecord{
		{
			Date: "2024-01-01",
			Sections: map[string]storage.SectionStatus{
				"TOP_APRON": {MachineType: "SKF-61", LifeInDays: 5, LifeInMonths: 0.16, NextSchedule: "2026-01-01"},
			},
		},
		{
			Date: "2024-01-10",
			Sections: map[string]storage.SectionStatus{
				"TOP_APRON": {MachineType: "NSK-70", LifeInDays: 7, LifeInMonths: 0.23, NextSchedule: "2026-01-10"},
			},
		},
	}

	totals := Sections(records)

	top := totals["TOP_APRON"]
	assert.Equal(t, 12, top.LifeInDays)
	assert.InDelta(t, 0.39, top.LifeInMonths, 1e-9)
	// Records arrive ordered by date ascending, so the later date wins.
	assert.Equal(t, "NSK-70", top.MachineType)
	assert.Equal(t, "2026-01-10", top.NextSchedule)
}

func TestSections_EmptyValuesDoNotOverwrite(t *testing.T) {
	records := []storage.ElectricalRecord{
		{
			Date: "2024-01-01",
			Sections: map[string]storage.SectionStatus{
				"MIDDLE_APRON": {MachineType: "SKF-61", LifeInDays: 5, NextSchedule: "2026-01-01"},
			},
		},
		{
			Date: "2024-01-10",
			Sections: map[string]storage.SectionStatus{
				"MIDDLE_APRON": {MachineType: "", LifeInDays: 7, NextSchedule: ""},
			},
		},
	}

	totals := Sections(records)

	mid := totals["MIDDLE_APRON"]
	assert.Equal(t, 12, mid.LifeInDays)
	assert.Equal(t, "SKF-61", mid.MachineType)
	assert.Equal(t, "2026-01-01", mid.NextSchedule)
}

func TestSections_AlwaysCarriesAllThreeSections(t *testing.T) {
	records := []storage.ElectricalRecord{
		{
			Date: "2024-01-01",
			Sections: map[string]storage.SectionStatus{
				"TOP_APRON": {MachineType: "SKF-61", LifeInDays: 5},
			},
		},
	}

	totals := Sections(records)

	require.Len(t, totals, len(constants.Sections))
	assert.Equal(t, storage.SectionTotals{}, totals["BOTTOM_APRON"])
}

func TestSections_NoRecords(t *testing.T) {
	totals := Sections(nil)

	// The fold itself returns the zero template; callers that need the
	// "no data at all" shape check the record count before rendering.
	require.Len(t, totals, len(constants.Sections))
	for _, section := range constants.Sections {
		assert.Equal(t, storage.SectionTotals{}, totals[section])
	}
}

func TestProductionMonth_SumsAcrossRecords(t *testing.T) {
	records := []storage.ProductionRecord{
		{
			Date: "2024-02-01",
			Departments: map[string]storage.DepartmentCounters{
				"MIXING": {OndateProd: 5, OndateHands: 2},
				"SPG":    {OndateProd: 10, OndateHands: 1},
			},
		},
		{
			Date: "2024-02-02",
			Departments: map[string]storage.DepartmentCounters{
				"MIXING": {OndateProd: 3, OndateHands: 4},
			},
		},
	}

	totals := ProductionMonth(records)

	assert.Equal(t, storage.DepartmentTotals{Prod: 8, Hands: 6}, totals["MIXING"])
	assert.Equal(t, storage.DepartmentTotals{Prod: 10, Hands: 1}, totals["SPG"])
	// Departments absent from every record contribute zero.
	assert.Equal(t, storage.DepartmentTotals{}, totals["COMBER"])
}

func TestProductionMonth_NoRecordsReturnsZeroFilledTemplate(t *testing.T) {
	totals := ProductionMonth(nil)

	require.Len(t, totals, len(constants.Departments))
	for _, dept := range constants.Departments {
		assert.Equal(t, storage.DepartmentTotals{}, totals[dept])
	}
}

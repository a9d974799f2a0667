// Package lifecycle derives machine life-cycle fields from an install date.
package lifecycle

import (
	"math"
	"time"
)

// ServiceInterval is the fixed maintenance interval: the next scheduled
// service is two calendar years after install.
const ServiceInterval = 2

// avgDaysPerMonth is a calendar-agnostic average-month divisor. The month
// figure is intentionally approximate.
const avgDaysPerMonth = 30.44

const DateLayout = "2006-01-02"

type Result struct {
	Days         int
	Months       float64
	NextSchedule string
}

// Compute derives the life-cycle fields for a machine installed at install,
// evaluated at now. Days is the ceiling of the absolute difference in whole
// days: a future-dated install still yields a non-negative count, a symmetry
// kept from the system this replaces. Callers must validate the dates first;
// Compute itself never fails.
func Compute(install, now time.Time) Result {
	diff := now.Sub(install)

	days := int(math.Ceil(math.Abs(diff.Hours()) / 24))
	months := math.Round(float64(days)/avgDaysPerMonth*100) / 100

	return Result{
		Days:         days,
		Months:       months,
		NextSchedule: install.AddDate(ServiceInterval, 0, 0).Format(DateLayout),
	}
}

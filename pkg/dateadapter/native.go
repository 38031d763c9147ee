package dateadapter

import (
	"time"

	"github.com/bft-labs/dateselect/pkg/selection"
)

// Native compares time.Time values by calendar day. Each value is read in
// its own location. The zero time is not a valid date.
type Native struct{}

var _ selection.DateCapability[time.Time] = Native{}

// IsDateInstance reports whether x is a time.Time.
func (Native) IsDateInstance(x any) bool {
	_, ok := x.(time.Time)
	return ok
}

// IsValid reports whether d is set.
func (Native) IsValid(d time.Time) bool {
	return !d.IsZero()
}

// SameDate reports whether a and b fall on the same calendar day.
func (n Native) SameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return n.CompareDate(*a, *b) == 0
}

// CompareDate orders a and b by year, month and day, ignoring time of day.
func (Native) CompareDate(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay - by
	}
	if am != bm {
		return int(am) - int(bm)
	}
	return ad - bd
}

// Today returns the current day at midnight in loc.
func Today(loc *time.Location) time.Time {
	y, m, d := time.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

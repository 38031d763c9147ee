package dateadapter

import (
	"cloudeng.io/datetime"

	"github.com/bft-labs/dateselect/pkg/selection"
)

// Calendar works on datetime.CalendarDate values. A date is valid when its
// month is in 1-12 and its day exists in that month of that year.
type Calendar struct{}

var _ selection.DateCapability[datetime.CalendarDate] = Calendar{}

// IsDateInstance reports whether x is a datetime.CalendarDate.
func (Calendar) IsDateInstance(x any) bool {
	_, ok := x.(datetime.CalendarDate)
	return ok
}

// IsValid reports whether d names an existing day.
func (Calendar) IsValid(d datetime.CalendarDate) bool {
	if d.Year <= 0 || d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= datetime.DaysInMonth(d.Year, d.Month)
}

func (c Calendar) SameDate(a, b *datetime.CalendarDate) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return c.CompareDate(*a, *b) == 0
}

func (Calendar) CompareDate(a, b datetime.CalendarDate) int {
	switch {
	case a.Year != b.Year:
		return a.Year - b.Year
	case a.Month != b.Month:
		return int(a.Month) - int(b.Month)
	default:
		return a.Day - b.Day
	}
}

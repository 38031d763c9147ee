// Package text provides ports.Codec implementations for YYYY-MM-DD dates.
package text

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"

	"github.com/bft-labs/dateselect/internal/ports"
	"github.com/bft-labs/dateselect/pkg/dateadapter"
)

// NativeCodec reads and writes time.Time values at midnight in Location
// (UTC when nil).
type NativeCodec struct {
	Location *time.Location
}

var _ ports.Codec[time.Time] = NativeCodec{}

// Parse reads a YYYY-MM-DD date.
func (c NativeCodec) Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), c.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Format writes t as YYYY-MM-DD.
func (NativeCodec) Format(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Today returns the current day at midnight in Location.
func (c NativeCodec) Today() time.Time {
	return dateadapter.Today(c.location())
}

func (c NativeCodec) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// CalendarCodec reads and writes datetime.CalendarDate values. Parse only
// checks the shape of the input, so "2023-02-30" parses and is left for the
// date capability to reject.
type CalendarCodec struct{}

var _ ports.Codec[datetime.CalendarDate] = CalendarCodec{}

// Parse reads a YYYY-MM-DD date.
func (CalendarCodec) Parse(s string) (datetime.CalendarDate, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return datetime.CalendarDate{}, fmt.Errorf("parse date %q: want YYYY-MM-DD", s)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return datetime.CalendarDate{}, fmt.Errorf("parse date %q: %w", s, err)
		}
		n[i] = v
	}
	return datetime.CalendarDate{Year: n[0], Month: datetime.Month(n[1]), Day: n[2]}, nil
}

// Format writes d as YYYY-MM-DD.
func (CalendarCodec) Format(d datetime.CalendarDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Today returns the current local day.
func (CalendarCodec) Today() datetime.CalendarDate {
	t := dateadapter.Today(time.Local)
	return datetime.CalendarDate{Year: t.Year(), Month: datetime.Month(t.Month()), Day: t.Day()}
}

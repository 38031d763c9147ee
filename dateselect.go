// Package dateselect tracks the selection of a date-picking control.
//
// It is a thin entry point over pkg/selection bound to time.Time dates
// compared by calendar day.
//
// Example usage:
//
//	m, err := dateselect.NewRange(dateselect.Value{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.Changes().SubscribeFunc(func(c dateselect.Change) {
//	    fmt.Println("selected", c.Value)
//	})
//	if err := m.Select(dateselect.Between(begin, end)); err != nil {
//	    log.Fatal(err)
//	}
//
// Use pkg/selection directly for other date types.
package dateselect

import (
	"time"

	"github.com/bft-labs/dateselect/pkg/dateadapter"
	"github.com/bft-labs/dateselect/pkg/selection"
)

// Model is a selection model over time.Time.
type Model = selection.Model[time.Time]

// Value is a selection value over time.Time.
type Value = selection.Value[time.Time]

// Change is a change notification over time.Time.
type Change = selection.Change[time.Time]

// InvalidSelectionError is returned for rejected values.
type InvalidSelectionError = selection.InvalidSelectionError

// Option configures optional behavior of a Model.
type Option = selection.Option

// ErrInvalidSelection is matched by every *InvalidSelectionError.
var ErrInvalidSelection = selection.ErrInvalidSelection

// NewSingle creates a single-date model with the given initial value.
func NewSingle(initial Value, opts ...Option) (*Model, error) {
	return selection.New[time.Time](dateadapter.Native{}, false, initial, opts...)
}

// NewRange creates a range model with the given initial value.
func NewRange(initial Value, opts ...Option) (*Model, error) {
	return selection.New[time.Time](dateadapter.Native{}, true, initial, opts...)
}

// Date returns a single-date value.
func Date(d time.Time) Value {
	return selection.Date(d)
}

// Between returns a range value.
func Between(begin, end time.Time) Value {
	return selection.Between(begin, end)
}

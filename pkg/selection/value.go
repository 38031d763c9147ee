package selection

import "fmt"

// Mode is the selection shape of a Model, fixed at construction.
type Mode int

const (
	// ModeSingle selects one nullable date.
	ModeSingle Mode = iota
	// ModeRange selects a begin/end pair.
	ModeRange
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeRange:
		return "range"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Range is a date interval. Either both endpoints are nil or both are set
// with Begin not after End.
type Range[D any] struct {
	Begin *D
	End   *D
}

// Value is a selection value. The zero Value is null. At most one of Date
// and Range is set; which one is acceptable depends on the Model's mode.
type Value[D any] struct {
	Date  *D
	Range *Range[D]
}

// Date returns a single-date value for d.
func Date[D any](d D) Value[D] {
	return Value[D]{Date: &d}
}

// Between returns a range value from begin to end.
func Between[D any](begin, end D) Value[D] {
	return Value[D]{Range: &Range[D]{Begin: &begin, End: &end}}
}

// EmptyRange returns a range value whose endpoints are both nil.
func EmptyRange[D any]() Value[D] {
	return Value[D]{Range: &Range[D]{}}
}

// IsNull reports whether v carries no date. A range with two nil
// endpoints counts as null.
func (v Value[D]) IsNull() bool {
	if v.Date != nil {
		return false
	}
	return v.Range == nil || (v.Range.Begin == nil && v.Range.End == nil)
}

// bounds returns the endpoints of v, treating a missing range as {nil, nil}.
func (v Value[D]) bounds() (begin, end *D) {
	if v.Range == nil {
		return nil, nil
	}
	return v.Range.Begin, v.Range.End
}

func (v Value[D]) String() string {
	switch {
	case v.Date != nil:
		return fmt.Sprint(*v.Date)
	case v.Range != nil:
		return fmt.Sprintf("%s..%s", ptrString(v.Range.Begin), ptrString(v.Range.End))
	default:
		return "null"
	}
}

func ptrString[D any](d *D) string {
	if d == nil {
		return "null"
	}
	return fmt.Sprint(*d)
}

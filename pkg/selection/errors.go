package selection

import "github.com/bft-labs/dateselect/internal/domain"

// ErrInvalidSelection is matched by every *InvalidSelectionError.
var ErrInvalidSelection = domain.ErrInvalidSelection

// Reason distinguishes why a value was rejected.
type Reason int

const (
	// ReasonNotDate: a single-mode value is neither null nor a valid date.
	ReasonNotDate Reason = iota + 1
	// ReasonNotRange: a range-mode value is neither null nor a pair of valid dates.
	ReasonNotRange
	// ReasonBeginAfterEnd: a range begins after it ends.
	ReasonBeginAfterEnd
)

func (r Reason) String() string {
	switch r {
	case ReasonNotDate:
		return "the passed value is not a correct date or null"
	case ReasonNotRange:
		return "the passed value is not a correct range or null"
	case ReasonBeginAfterEnd:
		return "the begin of range is later than the end"
	default:
		return "invalid selection"
	}
}

// InvalidSelectionError is returned when a proposed selection fails
// validation, either in New or in Model.Select.
type InvalidSelectionError struct {
	Reason Reason
	Mode   Mode
}

func (e *InvalidSelectionError) Error() string {
	return "dateselect: " + e.Reason.String()
}

// Is reports whether target is ErrInvalidSelection.
func (e *InvalidSelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

func invalid(mode Mode, reason Reason) error {
	return &InvalidSelectionError{Reason: reason, Mode: mode}
}

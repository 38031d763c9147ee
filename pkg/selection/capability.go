package selection

// DateCapability supplies the date predicates a Model relies on. It decouples
// the model from any concrete date representation. Implementations must be
// free of side effects; a single value may be shared by many models.
type DateCapability[D any] interface {
	// IsDateInstance reports whether x is a value of the date type.
	IsDateInstance(x any) bool

	// IsValid reports whether d is a usable date.
	IsValid(d D) bool

	// SameDate reports whether a and b denote the same date. Two nil
	// dates are the same; a nil and a non-nil date are not.
	SameDate(a, b *D) bool

	// CompareDate returns a negative number, zero or a positive number
	// if a is before, equal to or after b. It is only called with
	// valid, non-nil dates.
	CompareDate(a, b D) int
}

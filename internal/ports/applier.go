package ports

// Applier applies textual selection operations such as "2024-01-05",
// "2024-01-01..2024-01-05", "none" or "clear".
type Applier interface {
	// Apply parses and applies one operation.
	Apply(op string) error

	// Current returns the textual form of the current selection.
	Current() string
}

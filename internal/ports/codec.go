package ports

// Codec converts dates between their textual form (YYYY-MM-DD) and a
// concrete date type D.
type Codec[D any] interface {
	// Parse reads a date. It may accept strings that name non-existent
	// days; rejecting those is the date capability's job.
	Parse(s string) (D, error)

	// Format renders d in the same form Parse reads.
	Format(d D) string

	// Today returns the current day.
	Today() D
}

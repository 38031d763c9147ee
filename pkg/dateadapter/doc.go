// Package dateadapter provides selection.DateCapability implementations for
// common date representations.
//
//   - [Native] works on time.Time at day granularity.
//   - [Calendar] works on cloudeng.io/datetime.CalendarDate values.
//
// Both are stateless and may be shared by any number of models.
package dateadapter

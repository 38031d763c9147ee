// Package selection holds the selection state of a date-picking control.
//
// A [Model] tracks either a single date or a begin/end [Range], chosen once
// when the model is created. Every assignment is validated through an
// injected [DateCapability], and observers subscribed to [Model.Changes]
// are notified synchronously whenever the observable selection changes.
//
// # Basic Usage
//
//	caps := dateadapter.Native{}
//	m, err := selection.New[time.Time](caps, false, selection.Value[time.Time]{})
//	if err != nil {
//	    return err
//	}
//	sub := m.Changes().SubscribeFunc(func(c selection.Change[time.Time]) {
//	    fmt.Println("selected", c.Value)
//	})
//	defer sub.Unsubscribe()
//
//	if err := m.Select(selection.Date(time.Now())); err != nil {
//	    return err
//	}
//
// # Values
//
// A [Value] is null when it carries neither a date nor a range. In range
// mode a range whose endpoints are both nil is equivalent to null for
// [Model.IsSelected] and change detection. A range with only one endpoint
// set is always rejected.
//
// # Errors
//
// Validation failures are reported as *[InvalidSelectionError], which also
// matches [ErrInvalidSelection] with errors.Is. A rejected value never
// replaces the stored selection.
//
// # Concurrency
//
// A Model is not safe for concurrent mutation. It is meant to be owned by
// the goroutine driving the control, the same way UI state usually is.
package selection

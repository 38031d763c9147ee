package selection

import (
	"errors"
	"fmt"

	"github.com/bft-labs/dateselect/pkg/log"
)

// Change is emitted by a Model when its observable selection changes.
type Change[D any] struct {
	// Value is the selection after the change.
	Value Value[D]

	// Source is the model that emitted the change.
	Source *Model[D]

	// SelectionFinished reports whether the selection is complete. It is
	// always true; there is no partial range picking yet.
	SelectionFinished bool
}

// Model holds the selection of a date-picking control.
// Use New to create one.
type Model[D any] struct {
	caps     DateCapability[D]
	mode     Mode
	selected Value[D]
	changes  Stream[Change[D]]
	logger   log.Logger
	name     string

	// Chosen once from mode in New.
	validate func(Value[D]) error
	changed  func(old, next Value[D]) bool
}

// New creates a Model over caps. rangeMode selects ModeRange instead of
// ModeSingle for the lifetime of the model. initial is validated with the
// same rules as Select; an invalid initial value returns an
// *InvalidSelectionError.
func New[D any](caps DateCapability[D], rangeMode bool, initial Value[D], opts ...Option) (*Model[D], error) {
	if caps == nil {
		return nil, errors.New("dateselect: nil date capability")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model[D]{
		caps:   caps,
		mode:   ModeSingle,
		logger: o.logger,
		name:   o.name,
	}
	if rangeMode {
		m.mode = ModeRange
		m.validate = m.validateRange
		m.changed = m.rangeChanged
	} else {
		m.validate = m.validateDate
		m.changed = m.dateChanged
	}

	if err := m.validate(initial); err != nil {
		return nil, err
	}
	m.selected = initial

	for _, obs := range o.observers {
		typed, ok := obs.(Observer[Change[D]])
		if !ok {
			return nil, fmt.Errorf("dateselect: observer %T does not accept %T", obs, Change[D]{})
		}
		m.changes.Subscribe(typed)
	}
	return m, nil
}

// Selected returns the current selection.
func (m *Model[D]) Selected() Value[D] {
	return m.selected
}

// Mode returns the selection mode fixed at construction.
func (m *Model[D]) Mode() Mode {
	return m.mode
}

// RangeMode reports whether the model selects ranges.
func (m *Model[D]) RangeMode() bool {
	return m.mode == ModeRange
}

// IsSelected reports whether a date or a non-empty range is selected.
func (m *Model[D]) IsSelected() bool {
	return !m.selected.IsNull()
}

// Changes returns the stream of change notifications.
func (m *Model[D]) Changes() *Stream[Change[D]] {
	return &m.changes
}

// Select replaces the selection with v. An invalid v returns an
// *InvalidSelectionError and leaves the selection untouched. The value is
// stored even when it is equal to the current one; observers are notified
// only when the dates differ.
func (m *Model[D]) Select(v Value[D]) error {
	if err := m.validate(v); err != nil {
		m.logger.Debug("selection rejected",
			log.String("model", m.name),
			log.Stringer("mode", m.mode),
			log.Err(err),
		)
		return err
	}
	old := m.selected
	m.selected = v
	if m.changed(old, v) {
		m.emit()
	}
	return nil
}

// Clear sets the selection to null and always notifies observers, even if
// nothing was selected.
func (m *Model[D]) Clear() {
	m.selected = Value[D]{}
	m.emit()
}

func (m *Model[D]) emit() {
	m.logger.Debug("selection changed",
		log.String("model", m.name),
		log.Stringer("mode", m.mode),
		log.Stringer("value", m.selected),
		log.Int("observers", m.changes.Len()),
	)
	m.changes.Emit(Change[D]{
		Value:             m.selected,
		Source:            m,
		SelectionFinished: true,
	})
}

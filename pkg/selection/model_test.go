package selection

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/dateselect/pkg/log"
)

// fakeCaps treats non-zero time.Time values stored in an any as dates.
type fakeCaps struct{}

func (fakeCaps) IsDateInstance(x any) bool {
	_, ok := x.(time.Time)
	return ok
}

func (fakeCaps) IsValid(d any) bool {
	t, ok := d.(time.Time)
	return ok && !t.IsZero()
}

func (c fakeCaps) SameDate(a, b *any) bool {
	if a == nil || b == nil {
		return a == b
	}
	return c.CompareDate(*a, *b) == 0
}

func (fakeCaps) CompareDate(a, b any) int {
	return a.(time.Time).Compare(b.(time.Time))
}

func jan(day int) any {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

type recorder struct {
	changes []Change[any]
}

func (r *recorder) OnChange(c Change[any]) { r.changes = append(r.changes, c) }

func newModel(t *testing.T, rangeMode bool, initial Value[any]) (*Model[any], *recorder) {
	t.Helper()
	m, err := New[any](fakeCaps{}, rangeMode, initial)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec := &recorder{}
	m.Changes().Subscribe(rec)
	return m, rec
}

func reasonOf(t *testing.T, err error) Reason {
	t.Helper()
	var ise *InvalidSelectionError
	if !errors.As(err, &ise) {
		t.Fatalf("error = %v, want *InvalidSelectionError", err)
	}
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("errors.Is(%v, ErrInvalidSelection) = false", err)
	}
	return ise.Reason
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		rangeMode  bool
		initial    Value[any]
		wantReason Reason
	}{
		{name: "single null", initial: Value[any]{}},
		{name: "single date", initial: Date(jan(1))},
		{name: "single zero time", initial: Date[any](time.Time{}), wantReason: ReasonNotDate},
		{name: "single non-date", initial: Date[any]("2024-01-01"), wantReason: ReasonNotDate},
		{name: "single given range", initial: Between(jan(1), jan(2)), wantReason: ReasonNotDate},
		{name: "range null", rangeMode: true, initial: Value[any]{}},
		{name: "range empty", rangeMode: true, initial: EmptyRange[any]()},
		{name: "range ordered", rangeMode: true, initial: Between(jan(1), jan(5))},
		{name: "range same day", rangeMode: true, initial: Between(jan(3), jan(3))},
		{name: "range reversed", rangeMode: true, initial: Between(jan(5), jan(1)), wantReason: ReasonBeginAfterEnd},
		{name: "range given date", rangeMode: true, initial: Date(jan(1)), wantReason: ReasonNotRange},
		{name: "range invalid endpoint", rangeMode: true, initial: Between[any](jan(1), time.Time{}), wantReason: ReasonNotRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New[any](fakeCaps{}, tt.rangeMode, tt.initial)
			if tt.wantReason != 0 {
				if m != nil {
					t.Errorf("New() model = %v, want nil", m)
				}
				if got := reasonOf(t, err); got != tt.wantReason {
					t.Errorf("reason = %v, want %v", got, tt.wantReason)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if m.RangeMode() != tt.rangeMode {
				t.Errorf("RangeMode() = %v, want %v", m.RangeMode(), tt.rangeMode)
			}
			if m.Selected() != tt.initial {
				t.Errorf("Selected() = %v, want %v", m.Selected(), tt.initial)
			}
		})
	}
}

func TestNewNilCapability(t *testing.T) {
	if _, err := New[any](nil, false, Value[any]{}); err == nil {
		t.Fatal("New(nil) error = nil")
	}
}

func TestRangeHalfOpenRejected(t *testing.T) {
	d := jan(1)
	for _, r := range []Range[any]{{Begin: &d}, {End: &d}} {
		m, rec := newModel(t, true, Value[any]{})
		err := m.Select(Value[any]{Range: &r})
		if got := reasonOf(t, err); got != ReasonNotRange {
			t.Errorf("reason = %v, want %v", got, ReasonNotRange)
		}
		if m.IsSelected() || len(rec.changes) != 0 {
			t.Errorf("rejected value changed state: selected=%v changes=%d", m.Selected(), len(rec.changes))
		}
	}
}

func TestSelectSingle(t *testing.T) {
	m, rec := newModel(t, false, Value[any]{})

	steps := []struct {
		value       Value[any]
		wantChanges int
	}{
		{Date(jan(1)), 1},
		{Date(jan(1)), 1},
		{Date(jan(2)), 2},
		{Value[any]{}, 3},
		{Value[any]{}, 3},
	}
	for i, s := range steps {
		if err := m.Select(s.value); err != nil {
			t.Fatalf("step %d: Select() error = %v", i, err)
		}
		if len(rec.changes) != s.wantChanges {
			t.Errorf("step %d: changes = %d, want %d", i, len(rec.changes), s.wantChanges)
		}
	}

	first := rec.changes[0]
	if first.Source != m {
		t.Errorf("Source = %p, want %p", first.Source, m)
	}
	if !first.SelectionFinished {
		t.Error("SelectionFinished = false")
	}
	if *first.Value.Date != jan(1) {
		t.Errorf("Value = %v, want %v", first.Value, jan(1))
	}
}

func TestSelectStoresLatestArgument(t *testing.T) {
	m, rec := newModel(t, false, Date(jan(1)))
	again := Date(jan(1))
	if err := m.Select(again); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if m.Selected().Date != again.Date {
		t.Error("Selected() does not hold the latest argument")
	}
	if len(rec.changes) != 0 {
		t.Errorf("changes = %d, want 0", len(rec.changes))
	}
}

func TestSelectNonDateLeavesSelection(t *testing.T) {
	m, rec := newModel(t, false, Date(jan(1)))
	before := m.Selected()

	err := m.Select(Date[any](map[string]int{"year": 2024}))
	if got := reasonOf(t, err); got != ReasonNotDate {
		t.Errorf("reason = %v, want %v", got, ReasonNotDate)
	}
	if m.Selected() != before {
		t.Errorf("Selected() = %v, want %v", m.Selected(), before)
	}
	if len(rec.changes) != 0 {
		t.Errorf("changes = %d, want 0", len(rec.changes))
	}
}

func TestRangeScenario(t *testing.T) {
	m, rec := newModel(t, true, Value[any]{})

	if err := m.Select(Between(jan(1), jan(5))); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(rec.changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(rec.changes))
	}
	got := m.Selected().Range
	if *got.Begin != jan(1) || *got.End != jan(5) {
		t.Errorf("Selected() = %v", m.Selected())
	}

	if err := m.Select(Between(jan(1), jan(5))); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(rec.changes) != 1 {
		t.Errorf("changes after same range = %d, want 1", len(rec.changes))
	}

	m.Clear()
	if len(rec.changes) != 2 {
		t.Errorf("changes after Clear = %d, want 2", len(rec.changes))
	}
	if !m.Selected().IsNull() || m.Selected().Range != nil {
		t.Errorf("Selected() = %v, want null", m.Selected())
	}
}

func TestRangeNullComparisons(t *testing.T) {
	tests := []struct {
		name    string
		initial Value[any]
		next    Value[any]
		want    int
	}{
		{"null to null", Value[any]{}, Value[any]{}, 0},
		{"null to empty", Value[any]{}, EmptyRange[any](), 0},
		{"empty to null", EmptyRange[any](), Value[any]{}, 0},
		{"null to range", Value[any]{}, Between(jan(1), jan(2)), 1},
		{"range to null", Between(jan(1), jan(2)), Value[any]{}, 1},
		{"end moved", Between(jan(1), jan(2)), Between(jan(1), jan(3)), 1},
		{"begin moved", Between(jan(1), jan(3)), Between(jan(2), jan(3)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, rec := newModel(t, true, tt.initial)
			if err := m.Select(tt.next); err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if len(rec.changes) != tt.want {
				t.Errorf("changes = %d, want %d", len(rec.changes), tt.want)
			}
		})
	}
}

func TestSelectReversedRangeKeepsSelection(t *testing.T) {
	m, rec := newModel(t, true, Between(jan(1), jan(2)))
	before := m.Selected()
	err := m.Select(Between(jan(9), jan(3)))
	if got := reasonOf(t, err); got != ReasonBeginAfterEnd {
		t.Errorf("reason = %v, want %v", got, ReasonBeginAfterEnd)
	}
	if m.Selected() != before || len(rec.changes) != 0 {
		t.Errorf("rejected range changed state")
	}
}

func TestClearAlwaysEmits(t *testing.T) {
	for _, rangeMode := range []bool{false, true} {
		m, rec := newModel(t, rangeMode, Value[any]{})
		m.Clear()
		m.Clear()
		if len(rec.changes) != 2 {
			t.Errorf("rangeMode=%v: changes = %d, want 2", rangeMode, len(rec.changes))
		}
		for _, c := range rec.changes {
			if !c.Value.IsNull() || !c.SelectionFinished {
				t.Errorf("rangeMode=%v: change = %+v", rangeMode, c)
			}
		}
	}
}

func TestIsSelected(t *testing.T) {
	tests := []struct {
		name      string
		rangeMode bool
		value     Value[any]
		want      bool
	}{
		{"single null", false, Value[any]{}, false},
		{"single date", false, Date(jan(1)), true},
		{"range null", true, Value[any]{}, false},
		{"range empty", true, EmptyRange[any](), false},
		{"range set", true, Between(jan(1), jan(1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newModel(t, tt.rangeMode, tt.value)
			if got := m.IsSelected(); got != tt.want {
				t.Errorf("IsSelected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeSingle.String() != "single" || ModeRange.String() != "range" {
		t.Errorf("Mode strings = %q, %q", ModeSingle, ModeRange)
	}
	if got := Mode(7).String(); got != "Mode(7)" {
		t.Errorf("Mode(7).String() = %q", got)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		reason Reason
		want   string
	}{
		{ReasonNotDate, "dateselect: the passed value is not a correct date or null"},
		{ReasonNotRange, "dateselect: the passed value is not a correct range or null"},
		{ReasonBeginAfterEnd, "dateselect: the begin of range is later than the end"},
	}
	for _, tt := range tests {
		err := &InvalidSelectionError{Reason: tt.reason}
		if err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
		}
	}
}

type memLogger struct {
	messages []string
}

func (l *memLogger) Debug(msg string, _ ...log.Field) { l.messages = append(l.messages, msg) }
func (l *memLogger) Info(msg string, _ ...log.Field)  { l.messages = append(l.messages, msg) }
func (l *memLogger) Warn(msg string, _ ...log.Field)  { l.messages = append(l.messages, msg) }
func (l *memLogger) Error(msg string, _ ...log.Field) { l.messages = append(l.messages, msg) }

func TestModelLogging(t *testing.T) {
	logger := &memLogger{}
	m, err := New[any](fakeCaps{}, false, Value[any]{}, WithLogger(logger), WithName("start"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_ = m.Select(Date(jan(1)))
	_ = m.Select(Date[any]("nope"))
	want := []string{"selection changed", "selection rejected"}
	if len(logger.messages) != len(want) {
		t.Fatalf("messages = %v, want %v", logger.messages, want)
	}
	for i := range want {
		if logger.messages[i] != want[i] {
			t.Errorf("messages[%d] = %q, want %q", i, logger.messages[i], want[i])
		}
	}
}

func TestWithObserver(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	var order []string
	m, err := New[any](fakeCaps{}, false, Value[any]{},
		WithObserver[any](first),
		WithObserver[any](ObserverFunc[Change[any]](func(Change[any]) { order = append(order, "func") })),
		WithObserver[any](second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.Changes().Len() != 3 {
		t.Errorf("subscribers = %d, want 3", m.Changes().Len())
	}
	if len(first.changes) != 0 {
		t.Errorf("construction notified observers: %d", len(first.changes))
	}

	if err := m.Select(Date(jan(1))); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	for i, rec := range []*recorder{first, second} {
		if len(rec.changes) != 1 || rec.changes[0].Source != m {
			t.Errorf("observer %d changes = %+v, want one from model", i, rec.changes)
		}
	}
	if len(order) != 1 {
		t.Errorf("func observer calls = %d, want 1", len(order))
	}
}

func TestWithObserverTypeMismatch(t *testing.T) {
	wrong := ObserverFunc[Change[int]](func(Change[int]) {})
	m, err := New[any](fakeCaps{}, false, Value[any]{}, WithObserver[int](wrong))
	if err == nil {
		t.Fatal("New() error = nil for observer of another date type")
	}
	if m != nil {
		t.Errorf("New() model = %v, want nil", m)
	}
	if errors.Is(err, ErrInvalidSelection) {
		t.Errorf("error %v should not be an invalid selection", err)
	}
}

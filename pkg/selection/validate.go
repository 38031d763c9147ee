package selection

// validateDate accepts null or a single valid date instance.
func (m *Model[D]) validateDate(v Value[D]) error {
	if v.Range != nil {
		return invalid(ModeSingle, ReasonNotDate)
	}
	if v.Date == nil {
		return nil
	}
	if !m.isDate(*v.Date) {
		return invalid(ModeSingle, ReasonNotDate)
	}
	return nil
}

// validateRange accepts null, {nil, nil}, or two valid date instances with
// begin not after end.
func (m *Model[D]) validateRange(v Value[D]) error {
	if v.Date != nil {
		return invalid(ModeRange, ReasonNotRange)
	}
	if v.Range == nil || (v.Range.Begin == nil && v.Range.End == nil) {
		return nil
	}
	begin, end := v.Range.Begin, v.Range.End
	if begin == nil || end == nil || !m.isDate(*begin) || !m.isDate(*end) {
		return invalid(ModeRange, ReasonNotRange)
	}
	if m.caps.CompareDate(*begin, *end) > 0 {
		return invalid(ModeRange, ReasonBeginAfterEnd)
	}
	return nil
}

func (m *Model[D]) isDate(d D) bool {
	return m.caps.IsDateInstance(d) && m.caps.IsValid(d)
}

// dateChanged compares single-mode values.
func (m *Model[D]) dateChanged(old, next Value[D]) bool {
	return !m.caps.SameDate(old.Date, next.Date)
}

// rangeChanged compares range-mode values endpoint by endpoint. A null range
// compares as {nil, nil}.
func (m *Model[D]) rangeChanged(old, next Value[D]) bool {
	oldBegin, oldEnd := old.bounds()
	newBegin, newEnd := next.bounds()
	return !m.caps.SameDate(oldBegin, newBegin) || !m.caps.SameDate(oldEnd, newEnd)
}

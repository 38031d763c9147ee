package app

import (
	"fmt"
	"strings"

	"github.com/bft-labs/dateselect/internal/domain"
	"github.com/bft-labs/dateselect/internal/ports"
	"github.com/bft-labs/dateselect/pkg/selection"
)

const rangeSep = ".."

// Operation is a parsed textual operation.
type Operation[D any] struct {
	// Clear requests Model.Clear instead of Model.Select.
	Clear bool
	Value selection.Value[D]
}

// ParseOperation parses one operation:
//
//	clear                   clear the selection
//	none, null              select null
//	..                      select a range with no endpoints
//	2024-01-01..2024-01-05  select a range; either side may be empty
//	2024-01-05              select a single date
//	today                   select the current day; also valid as a range endpoint
//
// The shape is not checked against a mode; the model rejects mismatches.
func ParseOperation[D any](codec ports.Codec[D], op string) (Operation[D], error) {
	op = strings.TrimSpace(op)
	switch strings.ToLower(op) {
	case "":
		return Operation[D]{}, fmt.Errorf("%w: empty operation", domain.ErrUnknownOperation)
	case "clear":
		return Operation[D]{Clear: true}, nil
	case "none", "null":
		return Operation[D]{}, nil
	}

	if begin, end, ok := strings.Cut(op, rangeSep); ok {
		r := &selection.Range[D]{}
		var err error
		if r.Begin, err = parseEndpoint(codec, begin); err != nil {
			return Operation[D]{}, err
		}
		if r.End, err = parseEndpoint(codec, end); err != nil {
			return Operation[D]{}, err
		}
		return Operation[D]{Value: selection.Value[D]{Range: r}}, nil
	}

	d, err := parseDate(codec, op)
	if err != nil {
		return Operation[D]{}, err
	}
	return Operation[D]{Value: selection.Date(d)}, nil
}

func parseDate[D any](codec ports.Codec[D], s string) (D, error) {
	if strings.EqualFold(strings.TrimSpace(s), "today") {
		return codec.Today(), nil
	}
	d, err := codec.Parse(s)
	if err != nil {
		var zero D
		return zero, fmt.Errorf("%w: %v", domain.ErrUnknownOperation, err)
	}
	return d, nil
}

func parseEndpoint[D any](codec ports.Codec[D], s string) (*D, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := parseDate(codec, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FormatValue renders v in the syntax ParseOperation reads.
func FormatValue[D any](codec ports.Codec[D], v selection.Value[D]) string {
	switch {
	case v.Date != nil:
		return codec.Format(*v.Date)
	case v.Range != nil:
		return formatEndpoint(codec, v.Range.Begin) + rangeSep + formatEndpoint(codec, v.Range.End)
	default:
		return "none"
	}
}

func formatEndpoint[D any](codec ports.Codec[D], d *D) string {
	if d == nil {
		return ""
	}
	return codec.Format(*d)
}

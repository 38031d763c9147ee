package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/dateselect/internal/ports"
	"github.com/bft-labs/dateselect/pkg/log"
	"github.com/bft-labs/dateselect/pkg/selection"
)

// Session drives a selection model from textual operations and writes one
// line per change notification to out.
type Session[D any] struct {
	model  *selection.Model[D]
	codec  ports.Codec[D]
	out    io.Writer
	logger log.Logger
	sub    *selection.Subscription
}

var _ ports.Applier = (*Session[int])(nil)

// NewSession subscribes to model and returns a session writing to out.
// Call Close to unsubscribe.
func NewSession[D any](model *selection.Model[D], codec ports.Codec[D], out io.Writer, logger log.Logger) *Session[D] {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	s := &Session[D]{
		model:  model,
		codec:  codec,
		out:    out,
		logger: logger,
	}
	s.sub = model.Changes().SubscribeFunc(s.report)
	return s
}

// Apply parses op and applies it to the model.
func (s *Session[D]) Apply(op string) error {
	parsed, err := ParseOperation(s.codec, op)
	if err != nil {
		return err
	}
	if parsed.Clear {
		s.model.Clear()
		return nil
	}
	if err := s.model.Select(parsed.Value); err != nil {
		return fmt.Errorf("select %q: %w", op, err)
	}
	return nil
}

// ApplyAll applies ops in order. Failed operations are logged and skipped;
// the returned error joins all failures.
func (s *Session[D]) ApplyAll(ops []string) error {
	var errs []error
	for _, op := range ops {
		if err := s.Apply(op); err != nil {
			s.logger.Warn("operation rejected", log.String("op", op), log.Err(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Current returns the current selection in operation syntax.
func (s *Session[D]) Current() string {
	return FormatValue(s.codec, s.model.Selected())
}

// Model returns the underlying model.
func (s *Session[D]) Model() *selection.Model[D] {
	return s.model
}

// Close stops reporting changes.
func (s *Session[D]) Close() {
	s.sub.Unsubscribe()
}

func (s *Session[D]) report(c selection.Change[D]) {
	line := fmt.Sprintf("%s %s finished=%t\n", c.Source.Mode(), FormatValue(s.codec, c.Value), c.SelectionFinished)
	if _, err := io.WriteString(s.out, line); err != nil {
		s.logger.Error("write change", log.Err(err))
	}
}

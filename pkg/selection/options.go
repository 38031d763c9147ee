package selection

import "github.com/bft-labs/dateselect/pkg/log"

// Option configures optional behavior of a Model.
type Option func(*options)

type options struct {
	logger    log.Logger
	name      string
	observers []any
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets a logger for debug output about changes and rejected values.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName labels the model in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithObserver subscribes o to the model's changes when it is created.
// Observers are subscribed in option order. D must match the date type of
// the model passed to New, otherwise New returns an error.
func WithObserver[D any](o Observer[Change[D]]) Option {
	return func(opts *options) {
		if o != nil {
			opts.observers = append(opts.observers, o)
		}
	}
}

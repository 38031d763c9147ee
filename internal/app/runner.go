package app

import (
	"fmt"
	"io"
	"time"

	"cloudeng.io/datetime"

	"github.com/bft-labs/dateselect/internal/adapters/text"
	"github.com/bft-labs/dateselect/internal/cliconfig"
	"github.com/bft-labs/dateselect/internal/domain"
	"github.com/bft-labs/dateselect/internal/ports"
	"github.com/bft-labs/dateselect/pkg/dateadapter"
	"github.com/bft-labs/dateselect/pkg/log"
	"github.com/bft-labs/dateselect/pkg/selection"
)

// Runner is a session whose date type is hidden behind the configuration.
type Runner interface {
	ports.Applier
	ApplyAll(ops []string) error
	Close()
}

// NewRunner builds a model and session for a validated configuration.
// The initial selection comes from cfg.Date or cfg.Begin/cfg.End.
func NewRunner(cfg cliconfig.Config, out io.Writer, logger log.Logger) (Runner, error) {
	switch cfg.Calendar {
	case cliconfig.CalendarNative:
		return newRunner[time.Time](dateadapter.Native{}, text.NativeCodec{}, cfg, out, logger)
	case cliconfig.CalendarCivil:
		return newRunner[datetime.CalendarDate](dateadapter.Calendar{}, text.CalendarCodec{}, cfg, out, logger)
	default:
		return nil, fmt.Errorf("%w: unknown calendar %q", domain.ErrInvalidConfig, cfg.Calendar)
	}
}

func newRunner[D any](caps selection.DateCapability[D], codec ports.Codec[D], cfg cliconfig.Config, out io.Writer, logger log.Logger) (Runner, error) {
	op, err := ParseOperation(codec, initialOperation(cfg))
	if err != nil {
		return nil, fmt.Errorf("initial selection: %w", err)
	}
	model, err := selection.New(caps, cfg.RangeMode(), op.Value,
		selection.WithLogger(logger),
		selection.WithName(cfg.Calendar),
	)
	if err != nil {
		return nil, fmt.Errorf("initial selection: %w", err)
	}
	return NewSession(model, codec, out, logger), nil
}

func initialOperation(cfg cliconfig.Config) string {
	switch {
	case cfg.Date != "":
		return cfg.Date
	case cfg.Begin != "" || cfg.End != "":
		return cfg.Begin + rangeSep + cfg.End
	default:
		return "none"
	}
}

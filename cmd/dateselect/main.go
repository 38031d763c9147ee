package main

import (
	"os"

	"github.com/bft-labs/dateselect/internal/cliconfig"
)

func main() {
	logger := cliconfig.Logger()
	if err := newRootCommand(&logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("dateselect")
		os.Exit(1)
	}
}

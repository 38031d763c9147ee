// Package watch applies a selection file to an Applier whenever the file
// is written.
//
// The file is TOML:
//
//	begin = "2024-01-01"
//	end = "2024-01-05"
//
// or `date = "2024-01-05"` for single mode, or `clear = true`. A file with
// no keys selects null.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/dateselect/internal/ports"
	"github.com/bft-labs/dateselect/pkg/log"
)

// File is the content of a selection file.
type File struct {
	Date  string `toml:"date"`
	Begin string `toml:"begin"`
	End   string `toml:"end"`
	Clear bool   `toml:"clear"`
}

// Operation returns the textual operation the file describes.
func (f File) Operation() string {
	switch {
	case f.Clear:
		return "clear"
	case f.Begin != "" || f.End != "":
		return f.Begin + ".." + f.End
	case f.Date != "":
		return f.Date
	default:
		return "none"
	}
}

// ReadFile loads a selection file.
func ReadFile(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := toml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Config holds configuration for a Watcher.
type Config struct {
	// Path is the selection file to watch.
	Path string

	// DebounceDelay is the delay to wait after a file change before applying.
	// Default: 100 milliseconds
	DebounceDelay time.Duration
}

// Watcher applies a selection file to a target. All calls into the target
// happen on the goroutine running Run.
type Watcher struct {
	path     string
	debounce time.Duration
	target   ports.Applier
	logger   log.Logger

	// applied is invoked after each application attempt; tests use it.
	applied func(op string, err error)
}

// New creates a watcher for cfg.Path driving target.
func New(cfg Config, target ports.Applier, logger log.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     cfg.Path,
		debounce: cfg.DebounceDelay,
		target:   target,
		logger:   logger,
	}
}

// Run applies the current file, if present, and then every change until
// ctx is canceled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are seen.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	if _, err := os.Stat(w.path); err == nil {
		w.apply()
	}

	name := filepath.Base(w.path)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(w.debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			w.apply()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) apply() {
	f, err := ReadFile(w.path)
	if err != nil {
		w.logger.Warn("read selection file", log.String("path", w.path), log.Err(err))
		w.report("", err)
		return
	}
	op := f.Operation()
	err = w.target.Apply(op)
	if err != nil {
		w.logger.Warn("selection file rejected", log.String("op", op), log.Err(err))
	} else {
		w.logger.Info("selection file applied", log.String("op", op), log.String("selected", w.target.Current()))
	}
	w.report(op, err)
}

func (w *Watcher) report(op string, err error) {
	if w.applied != nil {
		w.applied(op, err)
	}
}

// ErrNoPath is returned by Validate when no path is configured.
var ErrNoPath = errors.New("watch: no selection file")

// Validate checks that c names a file in an existing directory.
func (c Config) Validate() error {
	if c.Path == "" {
		return ErrNoPath
	}
	info, err := os.Stat(filepath.Dir(c.Path))
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch: %s is not a directory", filepath.Dir(c.Path))
	}
	return nil
}

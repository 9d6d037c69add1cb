// Package statusfile provides a connectivity source driven by a status file.
//
// A network hook (for example a NetworkManager dispatcher script, or the
// "pizzahunt net" command) writes "online" or "offline" to the file. The
// source watches the file with fsnotify and emits a signal on every change,
// so nothing is polled.
package statusfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
	"github.com/custodia-labs/pizza-hunt/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ConnectivitySource = (*Source)(nil)

// DefaultState is assumed when the status file is missing or unreadable.
const DefaultState = domain.StateOnline

// Source reads connectivity signals from a status file.
type Source struct {
	path string
}

// New creates a source for the status file at path.
func New(path string) *Source {
	return &Source{path: filepath.Clean(path)}
}

// Path returns the watched file path.
func (s *Source) Path() string {
	return s.path
}

// Current reads the status file now.
func (s *Source) Current() domain.ConnectivityState {
	state, err := read(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Reading status file: %v", err)
		}
		return DefaultState
	}
	return state
}

// Subscribe watches the status file's directory and emits the file's state
// each time it is written or replaced. The channel closes when ctx is done.
func (s *Source) Subscribe(ctx context.Context) (<-chan domain.ConnectivityState, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating status directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Watch the directory, not the file, so atomic replaces are seen.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	out := make(chan domain.ConnectivityState)
	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !s.relevant(event) {
					continue
				}
				state, err := read(s.path)
				if err != nil {
					logger.Debug("Ignoring status file event: %v", err)
					continue
				}
				select {
				case out <- state:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Status file watcher: %v", err)
			}
		}
	}()

	return out, nil
}

// relevant reports whether event changed the status file's content.
func (s *Source) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != s.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Write atomically replaces the status file with state.
func Write(path string, state domain.ConnectivityState) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating status directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".status-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.WriteString(state.String() + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("writing status: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing status: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing status file: %w", err)
	}
	return nil
}

func read(path string) (domain.ConnectivityState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultState, err
	}
	return domain.ParseConnectivityState(strings.TrimSpace(string(data)))
}

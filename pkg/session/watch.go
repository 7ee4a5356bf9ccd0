package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// ScriptFunc runs one script file.
type ScriptFunc func(ctx context.Context, path string) error

// Expand resolves doublestar patterns ("notes/**/*.jot") into a sorted,
// de-duplicated list of files.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// Watcher re-runs scripts whose files change.
type Watcher struct {
	Patterns []string
	Run      ScriptFunc
	Logger   *slog.Logger
	// Debounce coalesces bursts of writes. Defaults to 50ms.
	Debounce time.Duration
	// OnError receives script and watcher errors. Defaults to logging.
	OnError func(error)
}

// Watch blocks until ctx is cancelled, re-running a script after each change
// to a file matching one of the patterns.
func (w *Watcher) Watch(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = 50 * time.Millisecond
	}
	report := w.OnError
	if report == nil {
		report = func(err error) { logger.Error("watch", "error", err) }
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range w.dirs() {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("watching", "dir", dir)
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				found := w.track(watcher, event.Name, logger)
				for _, p := range found {
					pending[p] = true
				}
				if len(found) > 0 {
					timer.Reset(debounce)
				}
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			logger.Debug("event received", "name", event.Name, "op", event.Op.String())
			pending[event.Name] = true
			timer.Reset(debounce)

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)

			for _, p := range paths {
				logger.Info("re-running script", "path", p)
				if err := w.Run(ctx, p); err != nil {
					report(fmt.Errorf("%s: %w", p, err))
				}
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			report(wErr)
		}
	}
}

func (w *Watcher) matches(name string) bool {
	for _, p := range w.Patterns {
		if ok, _ := doublestar.PathMatch(filepath.Clean(p), filepath.Clean(name)); ok {
			return true
		}
	}
	return false
}

// track subscribes to a directory created while watching, and to any
// directories below it. Scripts already inside are returned so they run even
// if they were written before the subscription.
func (w *Watcher) track(watcher *fsnotify.Watcher, dir string, logger *slog.Logger) []string {
	entries, err := doublestar.FilepathGlob(filepath.Join(dir, "**"))
	if err != nil {
		entries = []string{dir}
	}
	var found []string
	for _, e := range entries {
		switch {
		case isDir(e):
			if err := watcher.Add(e); err != nil {
				logger.Warn("watch", "dir", e, "error", err)
				continue
			}
			logger.Debug("watching", "dir", e)
		case w.matches(e):
			found = append(found, e)
		}
	}
	return found
}

// dirs lists the directories to subscribe to: the static base of each
// pattern and every directory below it.
func (w *Watcher) dirs() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(d string) {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	for _, p := range w.Patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(p))
		base = filepath.FromSlash(base)
		add(base)
		subdirs, err := doublestar.FilepathGlob(filepath.Join(base, "**"))
		if err != nil {
			continue
		}
		for _, d := range subdirs {
			if d != base && isDir(d) {
				add(d)
			}
		}
	}
	sort.Strings(out)
	return out
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

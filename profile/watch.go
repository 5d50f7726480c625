package profile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/strkit/truncate"
)

// previewBytes bounds file content quoted in reload warnings.
const previewBytes = 200

// pollInterval is how often the polling fallback checks the file.
var pollInterval = time.Second

// Watch loads the profile file at path, passes the set to onChange, and
// calls onChange again with a fresh set each time the file is written or
// replaced. A reload that fails is logged and skipped; the previous set stays
// in effect for the caller.
//
// Watch uses fsnotify and falls back to polling the file's size and
// modification time when a watcher cannot be set up.
//
// The initial load must succeed. Watch blocks until ctx is done and then
// returns ctx.Err(). onChange runs on the calling goroutine.
func Watch(ctx context.Context, path string, onChange func(*Set)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("fsnotify unavailable, polling profile file",
			slog.String("path", path),
			slog.Any("error", err))
		return watchPolling(ctx, path, onChange)
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file by rename.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		slog.Warn("cannot watch profile directory, polling profile file",
			slog.String("path", path),
			slog.Any("error", fmt.Errorf("watch %s: %w", dir, err)))
		return watchPolling(ctx, path, onChange)
	}

	set, err := Load(path)
	if err != nil {
		return err
	}
	onChange(set)

	baseName := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload(path, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("profile watcher error", slog.String("path", path), slog.Any("error", err))
		}
	}
}

// watchPolling is the fallback when fsnotify isn't available. A change in
// size or modification time triggers a reload.
func watchPolling(ctx context.Context, path string, onChange func(*Set)) error {
	lastSize, lastMod := statFile(path)

	set, err := Load(path)
	if err != nil {
		return err
	}
	onChange(set)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			size, mod := statFile(path)
			if size < 0 || (size == lastSize && mod.Equal(lastMod)) {
				continue
			}
			lastSize, lastMod = size, mod
			reload(path, onChange)
		}
	}
}

// statFile returns the file's size and modification time, or -1 if it
// cannot be stat'ed.
func statFile(path string) (int64, time.Time) {
	info, err := os.Stat(path)
	if err != nil {
		return -1, time.Time{}
	}
	return info.Size(), info.ModTime()
}

// reload loads path and hands the set to onChange, logging failures.
func reload(path string, onChange func(*Set)) {
	set, data, err := loadFile(path)
	if err != nil {
		slog.Warn("profile reload failed, keeping previous profiles",
			slog.String("path", path),
			slog.Any("error", err),
			slog.String("content_preview", truncate.Ellipsize(string(data), previewBytes)))
		return
	}
	onChange(set)
}

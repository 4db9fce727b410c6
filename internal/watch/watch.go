// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     watch
// Description: Debounced file watching for run --watch
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
)

// DefaultDebounce is used when Options.Debounce is zero
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc receives the watched files that changed, sorted
type ChangeFunc func(changed []string)

// Options configures a Watcher
type Options struct {
	Debounce time.Duration // Quiet period after the last event
	Logger   *mdwlog.Logger
	OnChange ChangeFunc
}

// Watcher reports changes to a fixed set of files. It watches the parent
// directories so that editors replacing a file on save are noticed.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	logger   *mdwlog.Logger
	onChange ChangeFunc
}

// New starts watching files. Events are delivered once Run is called.
func New(files []string, opts Options) (*Watcher, error) {
	if len(files) == 0 {
		return nil, mdwerror.New("no files to watch").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("watch.New")
	}
	if opts.OnChange == nil {
		return nil, mdwerror.New("watcher needs a change handler").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("watch.New")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeIO).
			WithOperation("watch.New")
	}

	w := &Watcher{
		watcher:  fsw,
		files:    make(map[string]bool, len(files)),
		debounce: opts.Debounce,
		logger:   opts.Logger.WithField("component", "kyotamd-watch"),
		onChange: opts.OnChange,
	}

	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			fsw.Close()
			return nil, mdwerror.Wrap(err, "failed to resolve path").
				WithCode(mdwerror.CodeIO).
				WithOperation("watch.New").
				WithDetail("file", file)
		}
		w.files[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, mdwerror.Wrap(err, "failed to watch directory").
				WithCode(mdwerror.CodeIO).
				WithOperation("watch.New").
				WithDetail("dir", dir)
		}
		dirs[dir] = true
	}

	w.logger.Debug("Watching files", mdwlog.Fields{
		"files":    len(w.files),
		"dirs":     len(dirs),
		"debounce": w.debounce.String(),
	})

	return w, nil
}

// Run delivers debounced changes until ctx is cancelled, then closes the
// watcher
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("Stopping file watcher")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Trace("File event", mdwlog.Fields{
				"file": event.Name,
				"op":   event.Op.String(),
			})
			pending[filepath.Clean(event.Name)] = true
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			sort.Strings(changed)
			pending = make(map[string]bool)

			w.logger.Debug("Files changed", mdwlog.Fields{"files": changed})
			w.onChange(changed)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnWithErr("Watcher error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return w.files[filepath.Clean(event.Name)]
}

// Files returns the watched files as absolute paths, sorted
func (w *Watcher) Files() []string {
	files := make([]string, 0, len(w.files))
	for file := range w.files {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

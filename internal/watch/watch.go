// Package watch runs a callback when input files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oakwood-commons/docsite/pkg/logger"
)

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// target is the set of watched directories and the files of interest in
// each. A nil file set means every entry of the directory counts.
type target map[string]map[string]bool

func (t target) add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if info.IsDir() {
		t[abs] = nil
		return nil
	}
	dir := filepath.Dir(abs)
	files, seen := t[dir]
	if seen && files == nil {
		return nil
	}
	if files == nil {
		files = make(map[string]bool)
		t[dir] = files
	}
	files[abs] = true
	return nil
}

func (t target) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	files, ok := t[filepath.Dir(abs)]
	if !ok {
		return false
	}
	return files == nil || files[abs]
}

// Run watches paths and calls fn once per burst of changes, after
// debounce has elapsed without further events. Files are watched through
// their parent directory, so editors that save by replacing the file keep
// triggering rebuilds. Errors returned by fn are logged and do not stop the
// watch. Run blocks until ctx is cancelled and returns nil in that case.
func Run(ctx context.Context, paths []string, debounce time.Duration, fn func(context.Context) error) error {
	if len(paths) == 0 {
		return errors.New("watch: no paths given")
	}
	log := logger.FromContext(ctx)

	tgt := make(target)
	for _, p := range paths {
		if err := tgt.add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	for dir := range tgt {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	log.Info("watching for changes", "paths", paths, "debounce", debounce.String())

	// Since Go 1.23, Stop and Reset discard any pending tick.
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&relevantOps == 0 || !tgt.matches(ev.Name) {
				continue
			}
			log.V(1).Info("input changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)

		case <-timer.C:
			if err := fn(ctx); err != nil {
				log.Error(err, "rebuild failed")
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watcher error")
		}
	}
}

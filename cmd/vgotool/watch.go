package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watcher re-exports scene descriptions in dir when they change. Exports
// run one at a time on the watch loop.
type watcher struct {
	dir      string
	pattern  string
	debounce time.Duration
	log      *zap.Logger
	export   func(src string) (string, error)
}

func (w *watcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	ready := make(chan string, 16)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			path := event.Name
			if t, ok := timers[path]; ok {
				t.Reset(w.debounce)
				continue
			}
			timers[path] = time.AfterFunc(w.debounce, func() {
				select {
				case ready <- path:
				case <-ctx.Done():
				}
			})

		case path := <-ready:
			delete(timers, path)
			w.rebuild(path)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return matchPattern(w.pattern, event.Name)
}

func (w *watcher) rebuild(src string) {
	out, err := w.export(src)
	if err != nil {
		w.log.Error("re-export failed", zap.String("source", src), zap.Error(err))
		return
	}
	w.log.Info("re-exported", zap.String("source", src), zap.String("output", out))
}

func matchPattern(pattern, path string) bool {
	ok, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && ok
}

// outputPath maps a scene description path to its export path:
// room.vgo.yaml and room.yaml both become room<ext>.
func outputPath(src, ext string) string {
	base := src
	for _, suffix := range []string{".yaml", ".yml", ".vgo"} {
		if strings.HasSuffix(strings.ToLower(base), suffix) {
			base = base[:len(base)-len(suffix)]
		}
	}
	return base + ext
}

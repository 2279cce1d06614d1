// Package watch keeps wrapped copies of text files current.
//
// Each watched file src is filled paragraph by paragraph and written to
// Output(src) whenever src changes.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	fsnotify "github.com/fsnotify/fsnotify"

	"github.com/an-ttt/MySpyder-sub002/internal/system"
	"github.com/an-ttt/MySpyder-sub002/internal/textwrap"
)

// Debounce is how long a file must stay quiet before it is rewrapped.
var Debounce = 120 * time.Millisecond

// Output returns the path the wrapped copy of src is written to.
func Output(src string) string { return src + ".wrapped" }

// RewrapFile fills src with opts and writes the result to Output(src).
func RewrapFile(src string, opts textwrap.Options) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	out, err := textwrap.FillParagraphs(string(b), opts)
	if err != nil {
		return err
	}
	if out != "" {
		out += "\n"
	}
	return os.WriteFile(Output(src), []byte(out), 0o644)
}

// Run rewraps every file once and then again after each change, until
// ctx is done. Failures for a single file are logged and do not stop the
// watcher.
func Run(ctx context.Context, files []string, opts textwrap.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	// watch parent dirs: editors often replace files instead of writing them
	for d := range dirs {
		if err := w.Add(d); err != nil {
			return err
		}
		system.Logger.Debug("watching dir", "dir", d)
	}
	for f := range watched {
		rewrap(f, opts)
	}

	changed := make(chan string, len(watched))
	var mu sync.Mutex
	timers := map[string]*time.Timer{}
	defer func() {
		mu.Lock()
		for _, t := range timers {
			t.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(ev.Name)
			if !watched[name] || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			mu.Lock()
			if t, ok := timers[name]; ok {
				t.Reset(Debounce)
			} else {
				timers[name] = time.AfterFunc(Debounce, func() {
					select {
					case changed <- name:
					case <-ctx.Done():
					}
				})
			}
			mu.Unlock()
		case name := <-changed:
			mu.Lock()
			delete(timers, name)
			mu.Unlock()
			rewrap(name, opts)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			system.Logger.Warn("watch error", "err", err)
		}
	}
}

func rewrap(src string, opts textwrap.Options) {
	if err := RewrapFile(src, opts); err != nil {
		system.Logger.Warn("rewrap failed", "file", src, "err", err)
		return
	}
	system.Logger.Info("rewrapped", "file", src, "out", Output(src))
}

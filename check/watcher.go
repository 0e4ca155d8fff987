package check

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("clasp.check")

// Watcher polls a tree and re-checks source files whose modification
// time advanced, reporting each fresh verdict through a callback.
type Watcher struct {
	root     string
	interval time.Duration
	report   func(Verdict)
	stopCh   chan struct{}
	modTimes map[string]time.Time
}

// NewWatcher prepares a watcher over root. The report callback runs on
// the watcher's goroutine. A non-positive interval means one second.
func NewWatcher(root string, interval time.Duration, report func(Verdict)) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{
		root:     root,
		interval: interval,
		report:   report,
		stopCh:   make(chan struct{}),
		modTimes: make(map[string]time.Time),
	}
}

func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) Stop() {
	close(w.stopCh)
}

func (w *Watcher) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *Watcher) scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != w.root {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsSourceFile(path) {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			v, err := File(path)
			if err != nil {
				log.Error(err.Error())
				return nil
			}
			w.report(v)
		}
		return nil
	})

	// Forget deleted files so a re-created one reports again.
	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
		}
	}
}

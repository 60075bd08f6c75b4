// Package pointsfile reads, writes and watches YAML files of labeled training
// points:
//
//	points:
//	  - {x: -0.5, y: 0.5, label: 0}
//	  - {x: 0.5, y: 0.5, label: 1}
//
// Coordinates are on the normalized plane [-1, 1]².
package pointsfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz/neural"
)

// Debounce is how long Watch waits after the last change before reloading.
const Debounce = 50 * time.Millisecond

type document struct {
	Points []neural.Point `yaml:"points"`
}

// Parse decodes and validates a points document.
func Parse(data []byte) ([]neural.Point, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse points: %w", err)
	}
	for i, p := range doc.Points {
		if err := neural.ValidatePoint(p); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}
	return doc.Points, nil
}

// Load reads and validates the points file at path.
func Load(path string) ([]neural.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read points: %w", err)
	}
	return Parse(data)
}

// Save writes pts to path as a points document.
func Save(path string, pts []neural.Point) error {
	data, err := yaml.Marshal(document{Points: pts})
	if err != nil {
		return fmt.Errorf("failed to marshal points: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write points: %w", err)
	}
	return nil
}

// Watch reloads path whenever it changes and hands the result to fn, until
// ctx is cancelled. The parent directory is watched so editors that replace
// the file on save are seen too. Bursts of events within Debounce collapse
// into one reload. fn runs on the Watch goroutine; a failed reload is passed
// as a non-nil error and watching continues.
//
// Watch blocks and returns ctx.Err() on cancellation.
func Watch(ctx context.Context, path string, fn func([]neural.Point, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	dir, name := filepath.Dir(path), filepath.Base(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				reload = time.After(Debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, err)

		case <-reload:
			reload = nil
			pts, err := Load(path)
			fn(pts, err)
		}
	}
}

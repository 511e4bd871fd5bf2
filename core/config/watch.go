// File: watch.go
// Title: Configuration File Watching
// Description: Implements a polling watcher so a running process can pick
//              up log level changes without restarting. Polling keeps the
//              watcher dependency-free and works on every filesystem the
//              appliances use.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation of polling watcher

package config

import (
	"os"
	"time"

	tserror "github.com/tessera-storage/foundation/core/error"
	"github.com/tessera-storage/foundation/utils/stringx"
)

// DefaultWatchInterval is the polling period used when none is given.
const DefaultWatchInterval = time.Second

// Watch polls path every interval and calls onChange with the freshly
// loaded configuration whenever the file's modification time advances.
// Load failures during a poll are skipped and watching continues. The
// returned stop function ends the watcher; calling it twice is safe.
func Watch(path string, interval time.Duration, onChange func(*Config)) (stop func(), err error) {
	if stringx.IsBlank(path) {
		return nil, tserror.New("file path required for watching").
			WithCode(tserror.BadConfiguration)
	}
	if onChange == nil {
		return nil, tserror.New("change handler required for watching").
			WithCode(tserror.BadConfiguration)
	}
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	var lastModified time.Time
	if info, statErr := os.Stat(path); statErr == nil {
		lastModified = info.ModTime()
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				info, statErr := os.Stat(path)
				if statErr != nil {
					// File deleted or moved; keep watching.
					continue
				}
				if !info.ModTime().After(lastModified) {
					continue
				}
				lastModified = info.ModTime()

				cfg, loadErr := Load(path)
				if loadErr != nil {
					continue
				}
				onChange(cfg)
			}
		}
	}()

	stopped := false
	return func() {
		if !stopped {
			stopped = true
			close(done)
		}
	}, nil
}

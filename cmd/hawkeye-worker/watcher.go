/*
DESCRIPTION
  watcher.go logs writes to the watcher config file so an operator can
  see a configuration change land, even though the running process does
  not currently hot-reload transitions (see DESIGN.md).

LICENSE
  Copyright (C) 2026 the Hawkeye Authors.

  This is free software: you can redistribute it and/or modify it
  under the terms of the GNU General Public License as published by
  the Free Software Foundation, either version 3 of the License, or
  (at your option) any later version.

  This is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY
  or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public
  License for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses/.
*/

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ausocean/utils/logging"
	"github.com/fsnotify/fsnotify"
)

// watchConfigFile watches the directory containing file and logs any
// write to it. Watching the containing directory rather than the file
// itself avoids missing events when an editor replaces the file
// atomically (rename-over-write), per the fsnotify docs.
func watchConfigFile(ctx context.Context, file string, l logging.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write && event.Name == file {
					l.Info("watcher config file modified; restart the worker to apply changes", "file", file)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.Error("config file watcher error", "error", err)
			}
		}
	}()

	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("could not watch directory of %s: %w", file, err)
	}
	return nil
}

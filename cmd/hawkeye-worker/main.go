/*
DESCRIPTION
  hawkeye-worker is the per-stream binary: it reads a Watcher config
  file, fetches the reference slate, runs the frame pipeline and the
  action runtime side by side, and serves the latest-frame/metrics
  endpoints, per spec.md §4, §6.

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
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hawkeye-video/hawkeye/internal/actions"
	"github.com/hawkeye-video/hawkeye/internal/model"
	"github.com/hawkeye-video/hawkeye/internal/pipeline"
)

const (
	logPath      = "/var/log/hawkeye/worker.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logSuppress  = true
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hawkeye-worker <path to watcher.json>")
		os.Exit(2)
	}
	configPath := os.Args[1]

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logging.Info, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	w, err := loadWatcher(configPath)
	if err != nil {
		log.Fatal("could not load watcher config", "error", err)
	}

	slate, err := model.FetchSlate(context.Background(), w)
	if err != nil {
		log.Fatal("could not fetch reference slate", "error", err)
	}

	events := make(chan actions.Event, 8)
	executors := actions.BuildExecutors(w, log)
	runtime := actions.NewRuntime(executors, events, log)

	pl, err := pipeline.New(w.Source, slate, events, log)
	if err != nil {
		log.Fatal("could not build frame pipeline", "error", err)
	}
	pl.Start()

	// SIGINT and SIGTERM both request graceful shutdown: a previous
	// revision only hooked SIGINT, which meant a Kubernetes-issued
	// SIGTERM (the default Stop signal) fell through to a hard kill
	// after terminationGracePeriodSeconds. See DESIGN.md.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watchConfigFile(ctx, configPath, log); err != nil {
		log.Warning("could not watch config file for changes", "error", err)
	}

	go runtime.Run(ctx)

	go func() {
		if err := pipeline.ListenAndServe(pl); err != nil {
			log.Error("latest-frame server stopped", "error", err)
		}
	}()

	if err := pl.Run(ctx); err != nil {
		log.Fatal("pipeline terminated with error", "error", err)
	}
	log.Info("worker shutting down")
}

func loadWatcher(path string) (*model.Watcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return model.Parse(data)
}

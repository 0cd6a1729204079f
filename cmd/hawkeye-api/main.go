/*
DESCRIPTION
  hawkeye-api is the control plane binary: it serves the REST API of
  spec.md §6 over the cluster's watcher objects, and runs a periodic
  reconcile sweep.

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
	"crypto/rand"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ausocean/utils/logging"
	cron "github.com/robfig/cron/v3"
	"gopkg.in/natefinch/lumberjack.v2"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/hawkeye-video/hawkeye/internal/api"
	"github.com/hawkeye-video/hawkeye/internal/control"
	"github.com/hawkeye-video/hawkeye/internal/orchestrator"
)

const (
	logPath      = "/var/log/hawkeye/api.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logSuppress  = true

	defaultNamespace   = "default"
	defaultDockerImage = "hawkeye-dev:latest"
	defaultAddr        = ":8080"
	reconcileSpec      = "@every 10m"
	tokenCharset       = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func main() {
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logging.Info, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	namespace := envOrDefault("HAWKEYE_NAMESPACE", defaultNamespace)
	dockerImage := envOrDefault("HAWKEYE_DOCKER_IMAGE", defaultDockerImage)

	token := os.Getenv("HAWKEYE_FIXED_TOKEN")
	if token == "" {
		var err error
		token, err = randomToken()
		if err != nil {
			log.Fatal("could not generate api token", "error", err)
		}
		os.Setenv("HAWKEYE_FIXED_TOKEN", token)
		log.Info("generated api bearer token", "token", token)
	}

	clientset, err := buildClientset()
	if err != nil {
		log.Fatal("could not build kubernetes clientset", "error", err)
	}
	orchClient := orchestrator.NewK8sClient(clientset, namespace)

	ctrl := control.NewService(orchClient, namespace, dockerImage)
	srv := api.NewServer(ctrl, namespace, token, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cron.New()
	if _, err := c.AddFunc(reconcileSpec, func() { reconcileSweep(ctx, orchClient, log) }); err != nil {
		log.Fatal("could not schedule reconcile sweep", "error", err)
	}
	c.Start()
	defer c.Stop()

	addr := envOrDefault("HAWKEYE_LISTEN_ADDR", defaultAddr)
	httpServer := &http.Server{Addr: addr, Handler: srv.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("listening", "addr", addr, "namespace", namespace)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api server stopped", "error", err)
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// randomToken generates a random 24-character alphanumeric string for
// use as the API's fixed bearer token, per spec.md §6.
func randomToken() (string, error) {
	const length = 24
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = tokenCharset[int(b)%len(tokenCharset)]
	}
	return string(out), nil
}

// buildClientset tries in-cluster config first, falling back to
// KUBECONFIG for local/dev use, matching the usual client-go idiom.
func buildClientset() (kubernetes.Interface, error) {
	cfg, err := rest.InClusterConfig()
	if err != nil {
		kubeconfig := os.Getenv("KUBECONFIG")
		if kubeconfig == "" {
			kubeconfig = os.ExpandEnv("$HOME/.kube/config")
		}
		cfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("could not load kubeconfig: %w", err)
		}
	}
	return kubernetes.NewForConfig(cfg)
}

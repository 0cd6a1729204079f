/*
DESCRIPTION
  client.go defines Client: the orchestrator operations internal/control
  needs (list/get/create/patch/delete across ConfigMaps, Deployments and
  Services, plus pod lookup for status_description). A concrete
  client-go implementation lives in k8sclient.go; a fake for unit tests
  lives in orchestratortest.

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

package orchestrator

import (
	"context"
	"errors"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
)

// ErrNotFound is returned by Client lookups when the named object does
// not exist. Callers (internal/control) translate it to apperr.ErrNotFound.
var ErrNotFound = errors.New("orchestrator: object not found")

// Client is the orchestrator surface internal/control depends on.
// Implementations must treat "not found" uniformly as ErrNotFound so
// callers can apply spec.md §4.5's tolerate-absence rules without
// inspecting implementation-specific error types.
type Client interface {
	GetConfigMap(ctx context.Context, name string) (*corev1.ConfigMap, error)
	GetDeployment(ctx context.Context, name string) (*appsv1.Deployment, error)
	GetService(ctx context.Context, name string) (*corev1.Service, error)

	CreateConfigMap(ctx context.Context, cm *corev1.ConfigMap) error
	CreateDeployment(ctx context.Context, d *appsv1.Deployment) error
	CreateService(ctx context.Context, svc *corev1.Service) error

	// ScaleDeployment sets a Deployment's replica count and its
	// target_status label in one update (spec.md §4.5 Start/Stop).
	ScaleDeployment(ctx context.Context, name string, replicas int32, targetStatus string) error

	DeleteConfigMap(ctx context.Context, name string) error
	DeleteDeployment(ctx context.Context, name string) error
	DeleteService(ctx context.Context, name string) error

	// ListConfigMaps and ListDeployments return every object carrying
	// the {app=hawkeye} label, for the List operation's join.
	ListConfigMaps(ctx context.Context) ([]corev1.ConfigMap, error)
	ListDeployments(ctx context.Context) ([]appsv1.Deployment, error)

	// FirstPodWaitingMessage returns the waiting.message of the first
	// container of the first pod matching {app=hawkeye, watcher_id=id},
	// or "" if none is set (spec.md §4.5 Get, Pending status).
	FirstPodWaitingMessage(ctx context.Context, watcherID string) (string, error)
}

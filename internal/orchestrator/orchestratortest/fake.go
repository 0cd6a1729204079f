/*
DESCRIPTION
  fake.go implements an in-memory orchestrator.Client for unit-testing
  internal/control's state transitions without a real cluster.

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

// Package orchestratortest provides a fake orchestrator.Client for
// tests, backed by plain maps rather than a cluster.
package orchestratortest

import (
	"context"
	"sync"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/hawkeye-video/hawkeye/internal/orchestrator"
)

// Fake is an in-memory orchestrator.Client.
type Fake struct {
	mu sync.Mutex

	configMaps  map[string]*corev1.ConfigMap
	deployments map[string]*appsv1.Deployment
	services    map[string]*corev1.Service

	// WaitingMessages lets tests stage a pod waiting.message by watcher id.
	WaitingMessages map[string]string
}

// New returns an empty Fake.
func New() *Fake {
	return &Fake{
		configMaps:      make(map[string]*corev1.ConfigMap),
		deployments:     make(map[string]*appsv1.Deployment),
		services:        make(map[string]*corev1.Service),
		WaitingMessages: make(map[string]string),
	}
}

var _ orchestrator.Client = (*Fake)(nil)

func (f *Fake) GetConfigMap(ctx context.Context, name string) (*corev1.ConfigMap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cm, ok := f.configMaps[name]
	if !ok {
		return nil, orchestrator.ErrNotFound
	}
	return cm.DeepCopy(), nil
}

func (f *Fake) GetDeployment(ctx context.Context, name string) (*appsv1.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deployments[name]
	if !ok {
		return nil, orchestrator.ErrNotFound
	}
	return d.DeepCopy(), nil
}

func (f *Fake) GetService(ctx context.Context, name string) (*corev1.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	svc, ok := f.services[name]
	if !ok {
		return nil, orchestrator.ErrNotFound
	}
	return svc.DeepCopy(), nil
}

func (f *Fake) CreateConfigMap(ctx context.Context, cm *corev1.ConfigMap) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configMaps[cm.Name] = cm.DeepCopy()
	return nil
}

func (f *Fake) CreateDeployment(ctx context.Context, d *appsv1.Deployment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deployments[d.Name] = d.DeepCopy()
	return nil
}

func (f *Fake) CreateService(ctx context.Context, svc *corev1.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.services[svc.Name] = svc.DeepCopy()
	return nil
}

func (f *Fake) ScaleDeployment(ctx context.Context, name string, replicas int32, targetStatus string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deployments[name]
	if !ok {
		return orchestrator.ErrNotFound
	}
	d.Spec.Replicas = &replicas
	if d.Labels == nil {
		d.Labels = map[string]string{}
	}
	d.Labels["target_status"] = targetStatus
	d.Status.AvailableReplicas = replicas
	return nil
}

func (f *Fake) DeleteConfigMap(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.configMaps[name]; !ok {
		return orchestrator.ErrNotFound
	}
	delete(f.configMaps, name)
	return nil
}

func (f *Fake) DeleteDeployment(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.deployments[name]; !ok {
		return orchestrator.ErrNotFound
	}
	delete(f.deployments, name)
	return nil
}

func (f *Fake) DeleteService(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.services[name]; !ok {
		return orchestrator.ErrNotFound
	}
	delete(f.services, name)
	return nil
}

func (f *Fake) ListConfigMaps(ctx context.Context) ([]corev1.ConfigMap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]corev1.ConfigMap, 0, len(f.configMaps))
	for _, cm := range f.configMaps {
		out = append(out, *cm.DeepCopy())
	}
	return out, nil
}

func (f *Fake) ListDeployments(ctx context.Context) ([]appsv1.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]appsv1.Deployment, 0, len(f.deployments))
	for _, d := range f.deployments {
		out = append(out, *d.DeepCopy())
	}
	return out, nil
}

func (f *Fake) FirstPodWaitingMessage(ctx context.Context, watcherID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.WaitingMessages[watcherID], nil
}

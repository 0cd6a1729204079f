/*
DESCRIPTION
  service.go implements Service: the Create/Start/Stop/Delete/Get/List
  operations of spec.md §4.5, joining internal/orchestrator's cluster
  observations through statemachine.DeriveStatus.

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

// Package control implements the watcher lifecycle: it is the only
// caller of internal/orchestrator and internal/statemachine, and the
// only place spec.md §4.5's transitions are decided.
package control

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hawkeye-video/hawkeye/internal/apperr"
	"github.com/hawkeye-video/hawkeye/internal/model"
	"github.com/hawkeye-video/hawkeye/internal/orchestrator"
	"github.com/hawkeye-video/hawkeye/internal/statemachine"
)

// Service implements the watcher control plane.
type Service struct {
	client      orchestrator.Client
	namespace   string
	dockerImage string
}

// NewService builds a Service backed by an orchestrator.Client.
func NewService(client orchestrator.Client, namespace, dockerImage string) *Service {
	return &Service{client: client, namespace: namespace, dockerImage: dockerImage}
}

// Create assigns a UUID, persists the watcher.json config, and creates
// a workload at replicas=0/target_status=Ready and its service, per
// spec.md §4.5 Create.
func (s *Service) Create(ctx context.Context, w model.Watcher) (*model.Watcher, error) {
	id := uuid.NewString()
	w.ID = &id
	w.Status = ""
	w.StatusDescription = nil
	w.Source.IngestIP = nil

	body, err := model.Serialise(&w)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
	}

	spec := orchestrator.BuildSpec{
		ID:          id,
		Namespace:   s.namespace,
		IngestPort:  w.Source.IngestPort,
		DockerImage: s.dockerImage,
		WatcherJSON: body,
	}

	if err := s.client.CreateConfigMap(ctx, orchestrator.NewConfigMap(spec)); err != nil {
		return nil, fmt.Errorf("%w: create config: %v", apperr.ErrUpstream, err)
	}
	if err := s.client.CreateDeployment(ctx, orchestrator.NewDeployment(spec)); err != nil {
		return nil, fmt.Errorf("%w: create workload: %v", apperr.ErrUpstream, err)
	}
	if err := s.client.CreateService(ctx, orchestrator.NewService(spec)); err != nil {
		return nil, fmt.Errorf("%w: create ingress: %v", apperr.ErrUpstream, err)
	}

	w.Status = model.StatusPending
	return &w, nil
}

// Start scales a workload to 1 replica and sets target_status=Running,
// per spec.md §4.5 Start. It rejects the transition with apperr per the
// watcher's current derived status.
func (s *Service) Start(ctx context.Context, id string) error {
	d, err := s.client.GetDeployment(ctx, orchestrator.DeploymentName(id))
	if err != nil {
		return translateNotFound(err)
	}

	switch status := statemachine.DeriveStatus(observationFromDeployment(d)); status {
	case model.StatusRunning:
		return fmt.Errorf("%w: already running", apperr.ErrConflict)
	case model.StatusPending:
		return fmt.Errorf("%w: watcher is still updating", apperr.ErrConflict)
	case model.StatusError:
		return fmt.Errorf("%w: watcher in error state cannot be set to running", apperr.ErrErrorState)
	case model.StatusReady:
		if err := s.client.ScaleDeployment(ctx, orchestrator.DeploymentName(id), 1, string(statemachine.TargetRunning)); err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unexpected status %q", apperr.ErrUpstream, status)
	}
}

// Stop scales a workload to 0 replicas and sets target_status=Ready,
// the symmetric counterpart of Start, per spec.md §4.5 Stop.
func (s *Service) Stop(ctx context.Context, id string) error {
	d, err := s.client.GetDeployment(ctx, orchestrator.DeploymentName(id))
	if err != nil {
		return translateNotFound(err)
	}

	switch status := statemachine.DeriveStatus(observationFromDeployment(d)); status {
	case model.StatusReady:
		return fmt.Errorf("%w: already stopped", apperr.ErrConflict)
	case model.StatusPending:
		return fmt.Errorf("%w: watcher is still updating", apperr.ErrConflict)
	case model.StatusError:
		return fmt.Errorf("%w: watcher in error state cannot be set to ready", apperr.ErrErrorState)
	case model.StatusRunning:
		if err := s.client.ScaleDeployment(ctx, orchestrator.DeploymentName(id), 0, string(statemachine.TargetReady)); err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unexpected status %q", apperr.ErrUpstream, status)
	}
}

// Delete removes the workload, config and ingress, in that order, per
// spec.md §4.5 Delete. Absence of workload or config is tolerated;
// absence of the ingress is reported as 404, since it is the system's
// uniqueness anchor.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteDeployment(ctx, orchestrator.DeploymentName(id)); err != nil && !errors.Is(err, orchestrator.ErrNotFound) {
		return fmt.Errorf("%w: delete workload: %v", apperr.ErrUpstream, err)
	}
	if err := s.client.DeleteConfigMap(ctx, orchestrator.ConfigName(id)); err != nil && !errors.Is(err, orchestrator.ErrNotFound) {
		return fmt.Errorf("%w: delete config: %v", apperr.ErrUpstream, err)
	}
	if err := s.client.DeleteService(ctx, orchestrator.ServiceName(id)); err != nil {
		if errors.Is(err, orchestrator.ErrNotFound) {
			return fmt.Errorf("%w: ingress", apperr.ErrNotFound)
		}
		return fmt.Errorf("%w: delete ingress: %v", apperr.ErrUpstream, err)
	}
	return nil
}

// Get looks up a watcher's workload and config, parses watcher.json,
// overlays its derived status, and, when Pending or not-Error,
// enriches it with pod waiting message / ingest_ip, per spec.md §4.5 Get.
func (s *Service) Get(ctx context.Context, id string) (*model.Watcher, error) {
	d, err := s.client.GetDeployment(ctx, orchestrator.DeploymentName(id))
	if err != nil {
		return nil, translateNotFound(err)
	}
	cm, err := s.client.GetConfigMap(ctx, orchestrator.ConfigName(id))
	if err != nil {
		return nil, translateNotFound(err)
	}

	w, err := model.Parse([]byte(cm.Data["watcher.json"]))
	if err != nil {
		return nil, fmt.Errorf("%w: stored watcher.json: %v", apperr.ErrUpstream, err)
	}

	status := statemachine.DeriveStatus(observationFromDeployment(d))
	w.Status = status
	w.StatusDescription = nil
	w.Source.IngestIP = nil

	if status == model.StatusPending {
		msg, err := s.client.FirstPodWaitingMessage(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: pod lookup: %v", apperr.ErrUpstream, err)
		}
		if msg != "" {
			w.StatusDescription = &msg
		}
	}

	if status != model.StatusError {
		svc, err := s.client.GetService(ctx, orchestrator.ServiceName(id))
		if err == nil {
			w.Source.IngestIP = ingestIPFromService(svc)
		} else if !errors.Is(err, orchestrator.ErrNotFound) {
			return nil, fmt.Errorf("%w: ingress lookup: %v", apperr.ErrUpstream, err)
		}
	}

	return w, nil
}

// List returns every watcher carrying {app=hawkeye, watcher_id}, joined
// by watcher_id across ConfigMaps and Deployments. Watchers whose
// workload is absent receive status=Error, per spec.md §4.5 List.
func (s *Service) List(ctx context.Context) ([]*model.Watcher, error) {
	configs, err := s.client.ListConfigMaps(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list configs: %v", apperr.ErrUpstream, err)
	}
	deployments, err := s.client.ListDeployments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list workloads: %v", apperr.ErrUpstream, err)
	}

	byWatcherID := make(map[string]int, len(deployments))
	for i, d := range deployments {
		if id, ok := d.Labels["watcher_id"]; ok {
			byWatcherID[id] = i
		}
	}

	out := make([]*model.Watcher, 0, len(configs))
	for _, cm := range configs {
		id, ok := cm.Labels["watcher_id"]
		if !ok {
			continue
		}
		w, err := model.Parse([]byte(cm.Data["watcher.json"]))
		if err != nil {
			return nil, fmt.Errorf("%w: stored watcher.json for %s: %v", apperr.ErrUpstream, id, err)
		}

		if idx, ok := byWatcherID[id]; ok {
			w.Status = statemachine.DeriveStatus(observationFromDeployment(&deployments[idx]))
		} else {
			w.Status = model.StatusError
		}
		out = append(out, w)
	}
	return out, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, orchestrator.ErrNotFound) {
		return fmt.Errorf("%w", apperr.ErrNotFound)
	}
	return fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
}

/*
DESCRIPTION
  observe.go translates a Deployment/Service observed from the cluster
  into the inputs statemachine.DeriveStatus needs.

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

package control

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/hawkeye-video/hawkeye/internal/statemachine"
)

// observationFromDeployment maps a Deployment onto a statemachine
// Observation. A Deployment the control plane created always carries a
// target_status label and a status subresource; ObservedGeneration
// stays 0 until the controller manager has reported status at least
// once, which is the real-cluster analogue of spec.md §4.5's "no
// status present" row.
func observationFromDeployment(d *appsv1.Deployment) statemachine.Observation {
	var obs statemachine.Observation

	if d.Status.ObservedGeneration > 0 {
		r := int(d.Status.AvailableReplicas)
		obs.Replicas = &r
	}
	if raw, ok := d.Labels["target_status"]; ok {
		t := statemachine.TargetStatus(raw)
		obs.Target = &t
	}
	return obs
}

// ingestIPFromService returns the first hostname or IP exposed by a
// Service's load-balancer status, per spec.md §4.5 Get.
func ingestIPFromService(svc *corev1.Service) *string {
	for _, ing := range svc.Status.LoadBalancer.Ingress {
		if ing.Hostname != "" {
			h := ing.Hostname
			return &h
		}
		if ing.IP != "" {
			ip := ing.IP
			return &ip
		}
	}
	return nil
}

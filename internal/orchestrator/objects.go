/*
DESCRIPTION
  objects.go builds the three Kubernetes object bodies spec.md §4.6
  describes, deterministically from (id, ingest_port, docker image).

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
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	intstr "k8s.io/apimachinery/pkg/util/intstr"

	appsv1 "k8s.io/api/apps/v1"
)

const (
	logLevelKey     = "log_level"
	watcherJSONKey  = "watcher.json"
	defaultLogLevel = "INFO"

	terminationGracePeriod int64 = 5

	// nlbAnnotationKey/nlbAnnotationValue provision an AWS Network Load
	// Balancer rather than the classic ELB a bare LoadBalancer Service
	// would otherwise get. A classic ELB cannot carry the UDP ingest
	// port, so this annotation is required for the ingest path to work.
	nlbAnnotationKey   = "service.beta.kubernetes.io/aws-load-balancer-type"
	nlbAnnotationValue = "nlb"
)

// BuildSpec is the input NewConfigMap/NewDeployment/NewService need to
// synthesise their objects.
type BuildSpec struct {
	ID          string
	Namespace   string
	IngestPort  int
	DockerImage string
	WatcherJSON []byte
}

// NewConfigMap builds the ConfigMap carrying the serialised Watcher and
// the worker's log level, per spec.md §4.6.
func NewConfigMap(s BuildSpec) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      ConfigName(s.ID),
			Namespace: s.Namespace,
			Labels:    Labels(s.ID),
		},
		Data: map[string]string{
			logLevelKey:    defaultLogLevel,
			watcherJSONKey: string(s.WatcherJSON),
		},
	}
}

// NewDeployment builds the workload running the worker binary, with
// the resource shape, ports and restart policy spec.md §4.6 mandates.
// Initial replicas is always 0; Start scales it to 1.
func NewDeployment(s BuildSpec) *appsv1.Deployment {
	labels := Labels(s.ID)
	var replicas int32 = 0

	container := corev1.Container{
		Name:  "hawkeye-worker",
		Image: s.DockerImage,
		Args:  []string{"/config/watcher.json"},
		Env: []corev1.EnvVar{
			{
				Name: "RUST_LOG",
				ValueFrom: &corev1.EnvVarSource{
					ConfigMapKeyRef: &corev1.ConfigMapKeySelector{
						LocalObjectReference: corev1.LocalObjectReference{Name: ConfigName(s.ID)},
						Key:                  logLevelKey,
					},
				},
			},
		},
		Ports: []corev1.ContainerPort{
			{ContainerPort: int32(s.IngestPort), Protocol: corev1.ProtocolUDP},
			{ContainerPort: int32(MetricsPort), Protocol: corev1.ProtocolTCP},
		},
		Resources: corev1.ResourceRequirements{
			Requests: corev1.ResourceList{
				corev1.ResourceCPU:    resource.MustParse("1150m"),
				corev1.ResourceMemory: resource.MustParse("50Mi"),
			},
			Limits: corev1.ResourceList{
				corev1.ResourceCPU:    resource.MustParse("2000m"),
				corev1.ResourceMemory: resource.MustParse("70Mi"),
			},
		},
		VolumeMounts: []corev1.VolumeMount{
			{Name: "config", MountPath: "/config"},
		},
	}

	podSpec := corev1.PodSpec{
		Containers:                    []corev1.Container{container},
		Volumes:                       []corev1.Volume{configVolume(s.ID)},
		TerminationGracePeriodSeconds: ptrInt64(terminationGracePeriod),
		RestartPolicy:                 corev1.RestartPolicyAlways,
		DNSPolicy:                     corev1.DNSDefault,
	}

	withTarget := make(map[string]string, len(labels)+1)
	for k, v := range labels {
		withTarget[k] = v
	}
	withTarget["target_status"] = "Ready"

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      DeploymentName(s.ID),
			Namespace: s.Namespace,
			Labels:    withTarget,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{MatchLabels: labels},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: withTarget},
				Spec:       podSpec,
			},
		},
	}
}

// NewService builds the Service fronting a workload's ingest port and
// metrics port, spec.md §4.6's "ingress".
func NewService(s BuildSpec) *corev1.Service {
	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:        ServiceName(s.ID),
			Namespace:   s.Namespace,
			Labels:      Labels(s.ID),
			Annotations: map[string]string{nlbAnnotationKey: nlbAnnotationValue},
		},
		Spec: corev1.ServiceSpec{
			Selector: SelectorLabels(s.ID),
			Ports: []corev1.ServicePort{
				{
					Name:       "ingest",
					Port:       int32(s.IngestPort),
					TargetPort: intstr.FromInt(s.IngestPort),
					Protocol:   corev1.ProtocolUDP,
				},
				{
					Name:       "frames",
					Port:       int32(MetricsPort),
					TargetPort: intstr.FromInt(MetricsPort),
					Protocol:   corev1.ProtocolTCP,
				},
			},
			Type: corev1.ServiceTypeLoadBalancer,
		},
	}
}

func configVolume(id string) corev1.Volume {
	return corev1.Volume{
		Name: "config",
		VolumeSource: corev1.VolumeSource{
			ConfigMap: &corev1.ConfigMapVolumeSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: ConfigName(id)},
			},
		},
	}
}

func ptrInt64(v int64) *int64 { return &v }

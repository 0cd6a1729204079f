/*
DESCRIPTION
  k8sclient.go is the client-go-backed implementation of Client, talking
  to a real (or kind/minikube) cluster over the typed clientset.

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
	"encoding/json"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes"
)

// K8sClient implements Client against a real Kubernetes API server.
type K8sClient struct {
	clientset kubernetes.Interface
	namespace string
}

// NewK8sClient builds a K8sClient scoped to one namespace.
func NewK8sClient(clientset kubernetes.Interface, namespace string) *K8sClient {
	return &K8sClient{clientset: clientset, namespace: namespace}
}

func wrapNotFound(err error) error {
	if err == nil {
		return nil
	}
	if apierrors.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (c *K8sClient) GetConfigMap(ctx context.Context, name string) (*corev1.ConfigMap, error) {
	cm, err := c.clientset.CoreV1().ConfigMaps(c.namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return cm, nil
}

func (c *K8sClient) GetDeployment(ctx context.Context, name string) (*appsv1.Deployment, error) {
	d, err := c.clientset.AppsV1().Deployments(c.namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return d, nil
}

func (c *K8sClient) GetService(ctx context.Context, name string) (*corev1.Service, error) {
	svc, err := c.clientset.CoreV1().Services(c.namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return svc, nil
}

func (c *K8sClient) CreateConfigMap(ctx context.Context, cm *corev1.ConfigMap) error {
	_, err := c.clientset.CoreV1().ConfigMaps(c.namespace).Create(ctx, cm, metav1.CreateOptions{})
	return err
}

func (c *K8sClient) CreateDeployment(ctx context.Context, d *appsv1.Deployment) error {
	_, err := c.clientset.AppsV1().Deployments(c.namespace).Create(ctx, d, metav1.CreateOptions{})
	return err
}

func (c *K8sClient) CreateService(ctx context.Context, svc *corev1.Service) error {
	_, err := c.clientset.CoreV1().Services(c.namespace).Create(ctx, svc, metav1.CreateOptions{})
	return err
}

// ScaleDeployment patches both spec.replicas and the target_status
// label in a single strategic merge patch, so Get never observes the
// two changes torn apart.
func (c *K8sClient) ScaleDeployment(ctx context.Context, name string, replicas int32, targetStatus string) error {
	patch := map[string]any{
		"metadata": map[string]any{
			"labels": map[string]string{"target_status": targetStatus},
		},
		"spec": map[string]any{
			"replicas": replicas,
			"template": map[string]any{
				"metadata": map[string]any{
					"labels": map[string]string{"target_status": targetStatus},
				},
			},
		},
	}
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("orchestrator: marshal scale patch: %w", err)
	}
	_, err = c.clientset.AppsV1().Deployments(c.namespace).Patch(ctx, name, types.StrategicMergePatchType, data, metav1.PatchOptions{})
	return wrapNotFound(err)
}

func (c *K8sClient) DeleteConfigMap(ctx context.Context, name string) error {
	err := c.clientset.CoreV1().ConfigMaps(c.namespace).Delete(ctx, name, metav1.DeleteOptions{})
	return wrapNotFound(err)
}

func (c *K8sClient) DeleteDeployment(ctx context.Context, name string) error {
	err := c.clientset.AppsV1().Deployments(c.namespace).Delete(ctx, name, metav1.DeleteOptions{})
	return wrapNotFound(err)
}

func (c *K8sClient) DeleteService(ctx context.Context, name string) error {
	err := c.clientset.CoreV1().Services(c.namespace).Delete(ctx, name, metav1.DeleteOptions{})
	return wrapNotFound(err)
}

func (c *K8sClient) ListConfigMaps(ctx context.Context) ([]corev1.ConfigMap, error) {
	list, err := c.clientset.CoreV1().ConfigMaps(c.namespace).List(ctx, metav1.ListOptions{
		LabelSelector: "app=" + AppLabel,
	})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *K8sClient) ListDeployments(ctx context.Context) ([]appsv1.Deployment, error) {
	list, err := c.clientset.AppsV1().Deployments(c.namespace).List(ctx, metav1.ListOptions{
		LabelSelector: "app=" + AppLabel,
	})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *K8sClient) FirstPodWaitingMessage(ctx context.Context, watcherID string) (string, error) {
	list, err := c.clientset.CoreV1().Pods(c.namespace).List(ctx, metav1.ListOptions{
		LabelSelector: fmt.Sprintf("app=%s,watcher_id=%s", AppLabel, watcherID),
	})
	if err != nil {
		return "", err
	}
	if len(list.Items) == 0 {
		return "", nil
	}
	statuses := list.Items[0].Status.ContainerStatuses
	if len(statuses) == 0 || statuses[0].State.Waiting == nil {
		return "", nil
	}
	return statuses[0].State.Waiting.Message, nil
}

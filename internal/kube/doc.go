// Package kube builds Kubernetes clients from kubeconfig files. It is used by
// the ConfigMap deck source.
package kube

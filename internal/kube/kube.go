package kube

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	_ "k8s.io/client-go/plugin/pkg/client/auth" // Important for various auth providers
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

// loadingRules returns the default kubeconfig loading rules, pinned to
// kubeconfig when it is set.
func loadingRules(kubeconfig string) *clientcmd.ClientConfigLoadingRules {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		rules.ExplicitPath = kubeconfig
	}
	return rules
}

// NewClient returns a clientset for kubeContext, or the current context when
// kubeContext is empty.
var NewClient = func(kubeconfig, kubeContext string) (kubernetes.Interface, error) {
	configOverrides := &clientcmd.ConfigOverrides{CurrentContext: kubeContext}
	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules(kubeconfig), configOverrides)

	restConfig, err := kubeConfig.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}
	return clientset, nil
}

// StartingConfig loads the merged kubeconfig.
func StartingConfig(kubeconfig string) (*api.Config, error) {
	config, err := loadingRules(kubeconfig).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to get starting kubeconfig: %w", err)
	}
	return config, nil
}

// CurrentContext retrieves the name of the active context.
func CurrentContext(kubeconfig string) (string, error) {
	config, err := StartingConfig(kubeconfig)
	if err != nil {
		return "", err
	}
	if config.CurrentContext == "" {
		return "", fmt.Errorf("current kubeconfig context is not set")
	}
	return config.CurrentContext, nil
}

// ResolveContext returns kubeContext if it exists in the kubeconfig, or the
// current context when kubeContext is empty.
func ResolveContext(kubeconfig, kubeContext string) (string, error) {
	if kubeContext == "" {
		return CurrentContext(kubeconfig)
	}
	config, err := StartingConfig(kubeconfig)
	if err != nil {
		return "", err
	}
	if _, exists := config.Contexts[kubeContext]; !exists {
		return "", fmt.Errorf("context '%s' does not exist in kubeconfig", kubeContext)
	}
	return kubeContext, nil
}

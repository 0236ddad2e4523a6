package deck

import (
	"context"
	"fmt"
	"sort"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

type configMap struct {
	client    kubernetes.Interface
	namespace string
	name      string
}

// ConfigMap serves one slide per data key of a ConfigMap, ordered by key.
func ConfigMap(client kubernetes.Interface, namespace, name string) Source {
	return &configMap{client: client, namespace: namespace, name: name}
}

func (c *configMap) Name() string {
	return fmt.Sprintf("configmap:%s/%s", c.namespace, c.name)
}

func (c *configMap) Load(ctx context.Context) ([]Item, error) {
	cm, err := c.client.CoreV1().ConfigMaps(c.namespace).Get(ctx, c.name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return nil, fmt.Errorf("configmap %s/%s not found", c.namespace, c.name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get configmap %s/%s: %w", c.namespace, c.name, err)
	}

	keys := make([]string, 0, len(cm.Data))
	for k := range cm.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]Item, 0, len(keys))
	for _, k := range keys {
		body := cm.Data[k]
		items = append(items, Item{
			ID:     k,
			Title:  titleOf(body, k),
			Body:   body,
			Format: formatFor(k),
		})
	}
	return items, nil
}

// ParseConfigMapRef splits "namespace/name". A bare name lives in "default".
func ParseConfigMapRef(ref string) (namespace, name string, err error) {
	ns, n, found := strings.Cut(ref, "/")
	if !found {
		ns, n = "default", ref
	}
	if ns == "" || n == "" || strings.Contains(n, "/") {
		return "", "", fmt.Errorf("invalid configmap reference %q, expected namespace/name", ref)
	}
	return ns, n, nil
}

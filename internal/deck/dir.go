package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type dir struct {
	path string
}

// Dir serves every *.md, *.markdown and *.txt file directly inside path,
// ordered by file name. The file name is the slide ID.
func Dir(path string) Source {
	return &dir{path: path}
}

func (d *dir) Name() string { return "dir:" + d.path }

func (d *dir) Load(ctx context.Context) ([]Item, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slide directory: %w", err)
	}

	// os.ReadDir returns entries sorted by file name
	var items []Item
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || !isSlideFile(e.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(d.path, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read slide %s: %w", e.Name(), err)
		}
		body := string(data)
		items = append(items, Item{
			ID:     e.Name(),
			Title:  titleOf(body, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))),
			Body:   body,
			Format: formatFor(e.Name()),
		})
	}
	return items, nil
}

func isSlideFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".txt":
		return true
	}
	return false
}

// Package items loads the ordered external collection the editor assigns
// delays to. Only the count and per-item key matter downstream; everything
// else in the input is carried opaquely or ignored.
package items

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item is one entry of the external collection.
type Item struct {
	Key string `yaml:"key"`
}

// entry accepts both YAML shapes: a bare string or a {key: ...} mapping.
type entry struct {
	item Item
}

func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.item = Item{Key: node.Value}
		return nil
	}
	return node.Decode(&e.item)
}

// Load reads an item list from path. Files with a .yaml/.yml extension are
// parsed as a YAML sequence of strings or {key: ...} mappings; anything
// else is read as one key per line, blank lines and #-comments skipped.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseLines(data), nil
	}
}

// Keys projects the ordered key list out of an item collection.
func Keys(list []Item) []string {
	keys := make([]string, len(list))
	for i, it := range list {
		keys[i] = it.Key
	}
	return keys
}

func parseYAML(data []byte) ([]Item, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	list := make([]Item, 0, len(entries))
	for _, e := range entries {
		if e.item.Key == "" {
			continue
		}
		list = append(list, e.item)
	}
	return list, nil
}

func parseLines(data []byte) []Item {
	var list []Item
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, Item{Key: line})
	}
	return list
}

// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAtlas — координаты спрайтов стандартного листа
func DefaultAtlas() *Atlas {
	return &Atlas{
		Sheet: "sheet.png",
		Sprites: map[string]Region{
			"player": {X: 224, Y: 832, W: 99, H: 75},
			"enemy":  {X: 425, Y: 552, W: 93, H: 84},
			"laser":  {X: 858, Y: 230, W: 9, H: 54},
		},
	}
}

// LoadAtlas reads a YAML sprite table.
func LoadAtlas(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas file: %w", err)
	}
	return ParseAtlas(data)
}

// ParseAtlas decodes and checks a YAML sprite table.
func ParseAtlas(data []byte) (*Atlas, error) {
	var atlas Atlas
	if err := yaml.Unmarshal(data, &atlas); err != nil {
		return nil, fmt.Errorf("failed to unmarshal atlas: %w", err)
	}
	for name, r := range atlas.Sprites {
		if r.W <= 0 || r.H <= 0 || r.X < 0 || r.Y < 0 {
			return nil, fmt.Errorf("sprite %q: invalid region %+v", name, r)
		}
	}
	return &atlas, nil
}

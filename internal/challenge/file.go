package challenge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a replacement challenge table from a YAML file:
//
//	challenges:
//	  - id: 1
//	    text: Say hello to a neighbor.
//	    category: warm
//	    difficulty: 1
func LoadFile(path string) ([]Challenge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read challenge file: %w", err)
	}

	var doc struct {
		Challenges []Challenge `yaml:"challenges"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse challenge file %s: %w", path, err)
	}
	if len(doc.Challenges) == 0 {
		return nil, fmt.Errorf("challenge file %s has no challenges", path)
	}

	seen := make(map[int]bool, len(doc.Challenges))
	for i, c := range doc.Challenges {
		if c.Text == "" {
			return nil, fmt.Errorf("challenge %d: text is required", i+1)
		}
		if !c.Category.IsValid() {
			return nil, fmt.Errorf("challenge %d: invalid category %q", i+1, c.Category)
		}
		if c.Difficulty < 1 || c.Difficulty > 3 {
			return nil, fmt.Errorf("challenge %d: difficulty must be 1-3, got %d", i+1, c.Difficulty)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("challenge %d: duplicate id %d", i+1, c.ID)
		}
		seen[c.ID] = true
	}
	return doc.Challenges, nil
}

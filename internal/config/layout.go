package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BlockLayout describes one named group of channels in a scan layout.
type BlockLayout struct {
	// Key is the stable identifier of the block, used as its anchor id
	// in the rendered table of contents. Must be unique within a layout.
	Key string `yaml:"key"`

	// Name is the display name of the block.
	Name string `yaml:"name"`

	// Channels lists the channel names scanned in this block, in order.
	Channels []string `yaml:"channels"`

	// FrequencyRange optionally restricts the analysis band, in Hz.
	FrequencyRange []float64 `yaml:"frequencyRange,omitempty"`

	// QRange optionally restricts the Q plane search range.
	QRange []float64 `yaml:"qRange,omitempty"`
}

// Layout represents the structure of a YAML scan-layout file: the channel
// blocks an omega scan is configured to analyze. The renderer does not
// drive the analysis, but it validates layouts and reproduces them in
// full on the about page.
type Layout struct {
	// Blocks are the channel blocks, in scan order.
	Blocks []BlockLayout `yaml:"blocks"`
}

// LoadLayout reads and parses a YAML scan-layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan layout: %w", err)
	}

	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse scan layout %s: %w", path, err)
	}
	return &layout, nil
}

// Validate checks the layout invariants the renderer depends on.
// Block keys become anchor targets, so duplicates are rejected here
// rather than silently colliding in the rendered page.
func (l *Layout) Validate() error {
	if len(l.Blocks) == 0 {
		return ErrNoBlocks
	}

	seen := make(map[string]bool, len(l.Blocks))
	for _, block := range l.Blocks {
		if seen[block.Key] {
			return fmt.Errorf("%w: %q", ErrDuplicateBlockKey, block.Key)
		}
		seen[block.Key] = true
	}
	return nil
}

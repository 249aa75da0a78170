package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// TileStats holds the properties of the most significant time-frequency
// tile found for a channel. A channel with no TileStats was not analyzed.
type TileStats struct {
	// Time is the central GPS time of the tile, in seconds.
	Time float64 `json:"time"`

	// Frequency is the central frequency of the tile, in Hz.
	Frequency float64 `json:"frequency"`

	// Q is the quality factor of the tile.
	Q float64 `json:"q"`

	// Energy is the normalized tile energy.
	Energy float64 `json:"energy"`

	// SNR is the signal-to-noise ratio of the tile.
	SNR float64 `json:"snr"`
}

// Channel is one monitored data stream together with its computed tile
// statistics and plot images.
//
// Design decision: Analysis state is modeled by the nilness of Stats
// rather than a separate boolean. The analysis pipeline only produces
// statistics for channels that passed its significance threshold, so
// "has statistics" and "was analyzed" are the same fact; keeping one
// field prevents the two from drifting apart.
type Channel struct {
	// Name is the full channel name (e.g. "L1:GDS-CALIB_STRAIN").
	Name string `json:"name"`

	// Stats holds the most significant tile's properties.
	// It is nil for channels that were not analyzed; such channels are
	// skipped during rendering.
	Stats *TileStats `json:"stats,omitempty"`

	// Plots maps a plot-type label (e.g. "qscan_whitened") to the ordered
	// plot references for that type, one per time range.
	Plots map[string][]Plot `json:"plots,omitempty"`

	// Ranges is the ordered list of time-axis durations, in seconds, used
	// by the view-toggle controls. Each plot type has one image per range.
	Ranges []int `json:"ranges,omitempty"`
}

// Analyzed reports whether the channel carries computed tile statistics.
// Unanalyzed channels are soft-skipped by the renderer, not an error.
func (c *Channel) Analyzed() bool {
	return c.Stats != nil
}

// IDToken returns the channel name in the form used for HTML element ids
// and script arguments: hyphens become underscores first, then colons
// become hyphens, so "L1:GDS-CALIB_STRAIN" yields "L1-GDS_CALIB_STRAIN".
// The replacement order matters.
func (c *Channel) IDToken() string {
	token := strings.ReplaceAll(c.Name, "-", "_")
	return strings.ReplaceAll(token, ":", "-")
}

// Block is a named group of channels scanned together. Key is a stable
// identifier used as the anchor target for this block in the table of
// contents; keys must be unique within a scan result.
type Block struct {
	// Name is the display name of the block (e.g. "Calibration").
	Name string `json:"name"`

	// Key is the stable anchor key of the block (e.g. "calibration").
	Key string `json:"key"`

	// Channels are the channels in this block, in scan order.
	Channels []Channel `json:"channels"`
}

// AnalyzedChannels returns the number of channels in the block that carry
// tile statistics.
func (b *Block) AnalyzedChannels() int {
	var n int
	for i := range b.Channels {
		if b.Channels[i].Analyzed() {
			n++
		}
	}
	return n
}

// ScanResult is the root of the result hierarchy produced by an omega
// scan: the instrument and central GPS time of the analysis, plus the
// ordered channel blocks that were scanned.
type ScanResult struct {
	// Instrument is the observatory prefix of the scanned instrument.
	Instrument Instrument `json:"instrument"`

	// GPSTime is the central GPS time of the analysis, in seconds.
	GPSTime float64 `json:"gps_time"`

	// Blocks are the scanned channel blocks, in configuration order.
	Blocks []Block `json:"blocks"`
}

// TotalChannels returns the number of channels across all blocks.
func (r *ScanResult) TotalChannels() int {
	var n int
	for i := range r.Blocks {
		n += len(r.Blocks[i].Channels)
	}
	return n
}

// AnalyzedChannels returns the number of analyzed channels across all blocks.
func (r *ScanResult) AnalyzedChannels() int {
	var n int
	for i := range r.Blocks {
		n += r.Blocks[i].AnalyzedChannels()
	}
	return n
}

// LoadScanResult reads a JSON-serialized ScanResult from path.
// This is the hand-off format used by the analysis pipeline.
func LoadScanResult(path string) (*ScanResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan result: %w", err)
	}
	var result ScanResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse scan result %s: %w", path, err)
	}
	return &result, nil
}

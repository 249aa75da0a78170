package model

import "time"

// ScanSummary condenses a ScanResult for the secondary report formats:
// the headline numbers plus per-block analyzed counts.
//
// Design decision: We keep the summary separate from ScanResult rather
// than computing counts inside the writers so every output format works
// from the same numbers.
type ScanSummary struct {
	// Instrument is the observatory prefix of the scanned instrument.
	Instrument Instrument `json:"instrument"`

	// GPSTime is the central GPS time of the analysis, in seconds.
	GPSTime float64 `json:"gps_time"`

	// UTCTime is GPSTime converted to UTC.
	UTCTime time.Time `json:"utc_time"`

	// TotalChannels is the number of channels across all blocks.
	TotalChannels int `json:"total_channels"`

	// AnalyzedChannels is the number of channels carrying tile statistics.
	AnalyzedChannels int `json:"analyzed_channels"`

	// Blocks summarizes each channel block, in scan order.
	Blocks []BlockSummary `json:"blocks"`
}

// BlockSummary is the per-block slice of a ScanSummary.
type BlockSummary struct {
	// Name is the display name of the block.
	Name string `json:"name"`

	// Key is the stable anchor key of the block.
	Key string `json:"key"`

	// TotalChannels is the number of channels in the block.
	TotalChannels int `json:"total_channels"`

	// AnalyzedChannels is the number of analyzed channels in the block.
	AnalyzedChannels int `json:"analyzed_channels"`
}

// NewScanSummary computes the summary for a scan result.
func NewScanSummary(result *ScanResult) *ScanSummary {
	summary := &ScanSummary{
		Instrument:       result.Instrument,
		GPSTime:          result.GPSTime,
		UTCTime:          GPSToUTC(result.GPSTime),
		TotalChannels:    result.TotalChannels(),
		AnalyzedChannels: result.AnalyzedChannels(),
		Blocks:           make([]BlockSummary, 0, len(result.Blocks)),
	}
	for i := range result.Blocks {
		b := &result.Blocks[i]
		summary.Blocks = append(summary.Blocks, BlockSummary{
			Name:             b.Name,
			Key:              b.Key,
			TotalChannels:    len(b.Channels),
			AnalyzedChannels: b.AnalyzedChannels(),
		})
	}
	return summary
}

// NullResult reports whether the analysis produced no analyzed channels.
func (s *ScanSummary) NullResult() bool {
	return s.AnalyzedChannels == 0
}

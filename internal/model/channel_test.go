package model

import (
	"os"
	"path/filepath"
	"testing"
)

// createTestResult creates a scan result with sample data for testing.
func createTestResult() *ScanResult {
	return &ScanResult{
		Instrument: LIGOLivingston,
		GPSTime:    1187008882,
		Blocks: []Block{
			{
				Name: "Primary",
				Key:  "primary",
				Channels: []Channel{
					{
						Name:  "L1:TEST-CHANNEL",
						Stats: &TileStats{Time: 1187008882.123, Frequency: 120.7, Q: 8.0, Energy: 50.2, SNR: 12.3},
						Plots: map[string][]Plot{
							"qscan_whitened": {NewPlot("L1-TEST_CHANNEL-4.png", "")},
						},
						Ranges: []int{4},
					},
					{Name: "L1:QUIET-CHANNEL"},
				},
			},
		},
	}
}

// TestChannelAnalyzed tests the analyzed/unanalyzed distinction.
func TestChannelAnalyzed(t *testing.T) {
	t.Parallel()

	t.Run("channel with stats is analyzed", func(t *testing.T) {
		t.Parallel()
		c := Channel{Name: "L1:TEST", Stats: &TileStats{SNR: 5}}
		if !c.Analyzed() {
			t.Error("expected channel with stats to be analyzed")
		}
	})

	t.Run("channel without stats is unanalyzed", func(t *testing.T) {
		t.Parallel()
		c := Channel{Name: "L1:TEST"}
		if c.Analyzed() {
			t.Error("expected channel without stats to be unanalyzed")
		}
	})
}

// TestChannelIDToken tests the name-to-id transformation order.
func TestChannelIDToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		// Hyphens must be replaced before colons, otherwise the colon
		// replacement would be clobbered.
		{"L1:TEST-CHANNEL", "L1-TEST_CHANNEL"},
		{"L1:GDS-CALIB_STRAIN", "L1-GDS_CALIB_STRAIN"},
		{"H1:SUS-ETMY_L2_WIT", "H1-SUS_ETMY_L2_WIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Channel{Name: tt.name}
			if got := c.IDToken(); got != tt.want {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

// TestScanResultCounts tests channel counting across blocks.
func TestScanResultCounts(t *testing.T) {
	t.Parallel()

	result := createTestResult()

	t.Run("counts all channels", func(t *testing.T) {
		t.Parallel()
		if got := result.TotalChannels(); got != 2 {
			t.Errorf("got %d, expected 2", got)
		}
	})

	t.Run("counts only analyzed channels", func(t *testing.T) {
		t.Parallel()
		if got := result.AnalyzedChannels(); got != 1 {
			t.Errorf("got %d, expected 1", got)
		}
	})
}

// TestLoadScanResult tests loading a scan result from a JSON file.
func TestLoadScanResult(t *testing.T) {
	t.Parallel()

	t.Run("loads valid result", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "result.json")
		data := `{
			"instrument": "L1",
			"gps_time": 1187008882,
			"blocks": [
				{
					"name": "Primary",
					"key": "primary",
					"channels": [
						{
							"name": "L1:TEST-CHANNEL",
							"stats": {"time": 1187008882.123, "frequency": 120.7, "q": 8.0, "energy": 50.2, "snr": 12.3},
							"plots": {"qscan_whitened": [{"img": "L1-TEST_CHANNEL-4.png"}]},
							"ranges": [4]
						}
					]
				}
			]
		}`
		if err := os.WriteFile(path, []byte(data), 0600); err != nil {
			t.Fatal(err)
		}

		result, err := LoadScanResult(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Instrument != LIGOLivingston {
			t.Errorf("got instrument %q, expected L1", result.Instrument)
		}
		if len(result.Blocks) != 1 {
			t.Fatalf("got %d blocks, expected 1", len(result.Blocks))
		}
		ch := result.Blocks[0].Channels[0]
		if !ch.Analyzed() {
			t.Error("expected channel to be analyzed")
		}
		if ch.Stats.Q != 8.0 {
			t.Errorf("got Q %v, expected 8.0", ch.Stats.Q)
		}
	})

	t.Run("fails on missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadScanResult(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("fails on malformed JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadScanResult(path); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})
}

package model

import "testing"

// TestInstrumentObservatory tests observatory lookup for known prefixes.
func TestInstrumentObservatory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		instrument Instrument
		name       string
		context    string
		color      string
	}{
		{GEO, "GEO", "default", "#222222"},
		{LIGOHanford, "LIGO Hanford", "danger", "#ee0000"},
		{LIGOIndia, "LIGO India", "success", "#b0dd8b"},
		{KAGRA, "KAGRA", "warning", "#ffb200"},
		{LIGOLivingston, "LIGO Livingston", "info", "#4ba6ff"},
		{Virgo, "Virgo", "primary", "#9b59b6"},
	}

	for _, tt := range tests {
		t.Run(string(tt.instrument), func(t *testing.T) {
			t.Parallel()

			obs, ok := tt.instrument.Observatory()
			if !ok {
				t.Fatalf("expected %s to be a known instrument", tt.instrument)
			}
			if obs.Name != tt.name {
				t.Errorf("got name %q, expected %q", obs.Name, tt.name)
			}
			if obs.Context != tt.context {
				t.Errorf("got context %q, expected %q", obs.Context, tt.context)
			}
			if obs.Color != tt.color {
				t.Errorf("got color %q, expected %q", obs.Color, tt.color)
			}
		})
	}
}

// TestInstrumentUnknown tests fallback behavior for unknown prefixes.
func TestInstrumentUnknown(t *testing.T) {
	t.Parallel()

	unknown := Instrument("X9")

	t.Run("is not valid", func(t *testing.T) {
		t.Parallel()
		if unknown.Valid() {
			t.Error("expected X9 to be invalid")
		}
	})

	t.Run("display name falls back to prefix", func(t *testing.T) {
		t.Parallel()
		if got := unknown.DisplayName(); got != "X9" {
			t.Errorf("got %q, expected %q", got, "X9")
		}
	})

	t.Run("context falls back to default", func(t *testing.T) {
		t.Parallel()
		if got := unknown.Context(); got != "default" {
			t.Errorf("got %q, expected %q", got, "default")
		}
	})

	t.Run("color falls back to neutral gray", func(t *testing.T) {
		t.Parallel()
		if got := unknown.Color(); got != "#222222" {
			t.Errorf("got %q, expected %q", got, "#222222")
		}
	})
}

// TestInstruments tests that the instrument list covers the observatory map.
func TestInstruments(t *testing.T) {
	t.Parallel()

	all := Instruments()
	if len(all) != len(observatoryMap) {
		t.Fatalf("got %d instruments, expected %d", len(all), len(observatoryMap))
	}
	for _, inst := range all {
		if !inst.Valid() {
			t.Errorf("listed instrument %s is not in the observatory map", inst)
		}
	}
}

package model

import (
	"errors"
	"testing"
)

// TestNewPlot tests Plot construction and caption defaulting.
func TestNewPlot(t *testing.T) {
	t.Parallel()

	t.Run("uses given caption", func(t *testing.T) {
		t.Parallel()
		p := NewPlot("plots/L1-GDS_CALIB_STRAIN-4.png", "Whitened spectrogram")
		if p.Caption != "Whitened spectrogram" {
			t.Errorf("got %q, expected %q", p.Caption, "Whitened spectrogram")
		}
	})

	t.Run("defaults caption to base filename", func(t *testing.T) {
		t.Parallel()
		p := NewPlot("plots/L1-GDS_CALIB_STRAIN-4.png", "")
		if p.Caption != "L1-GDS_CALIB_STRAIN-4.png" {
			t.Errorf("got %q, expected base filename", p.Caption)
		}
	})
}

// TestNewPlotFrom tests caption inheritance between plot references.
func TestNewPlotFrom(t *testing.T) {
	t.Parallel()

	src := NewPlot("L1-TEST-4.png", "original caption")

	t.Run("inherits caption when not overridden", func(t *testing.T) {
		t.Parallel()
		p := NewPlotFrom(src, "")
		if p.Caption != "original caption" {
			t.Errorf("got %q, expected inherited caption", p.Caption)
		}
		if p.Img != src.Img {
			t.Errorf("got %q, expected same image path", p.Img)
		}
	})

	t.Run("override replaces caption", func(t *testing.T) {
		t.Parallel()
		p := NewPlotFrom(src, "new caption")
		if p.Caption != "new caption" {
			t.Errorf("got %q, expected %q", p.Caption, "new caption")
		}
	})
}

// TestParsePlotName tests the plot filename parser.
func TestParsePlotName(t *testing.T) {
	t.Parallel()

	t.Run("parses conforming filename", func(t *testing.T) {
		t.Parallel()

		name, err := ParsePlotName("plots/L1-TEST_CHANNEL-qscan_whitened-4.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name.Detector != "L1" {
			t.Errorf("got detector %q, expected %q", name.Detector, "L1")
		}
		if name.Channel != "TEST_CHANNEL" {
			t.Errorf("got channel %q, expected %q", name.Channel, "TEST_CHANNEL")
		}
		if name.Duration != "4" {
			t.Errorf("got duration %q, expected %q", name.Duration, "4")
		}
	})

	t.Run("parses minimal three-token filename", func(t *testing.T) {
		t.Parallel()

		name, err := ParsePlotName("L1-TEST_CHANNEL-4.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := name.IDSuffix(); got != "L1-TEST_CHANNEL_4" {
			t.Errorf("got id suffix %q, expected %q", got, "L1-TEST_CHANNEL_4")
		}
	})

	t.Run("rejects filename without enough tokens", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePlotName("snapshot.png")
		if !errors.Is(err, ErrMalformedPlotName) {
			t.Errorf("got %v, expected ErrMalformedPlotName", err)
		}
	})
}

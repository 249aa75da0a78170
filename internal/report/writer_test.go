package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// createTestResult creates a scan result with sample data for testing.
func createTestResult() *model.ScanResult {
	return &model.ScanResult{
		Instrument: model.LIGOLivingston,
		GPSTime:    1187008882,
		Blocks: []model.Block{
			{
				Name: "Primary",
				Key:  "primary",
				Channels: []model.Channel{
					{
						Name: "L1:TEST-CHANNEL",
						Stats: &model.TileStats{
							Time: 1187008882.43, Frequency: 120.7,
							Q: 8.0, Energy: 50.2, SNR: 12.3,
						},
					},
					{Name: "L1:QUIET-CHANNEL"},
				},
			},
			{
				Name:     "Auxiliary",
				Key:      "aux",
				Channels: []model.Channel{{Name: "L1:AUX-CHANNEL"}},
			},
		},
	}
}

// TestSimpleWriter tests the human-readable report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "OMEGA SCAN REPORT") {
			t.Error("expected output to contain header")
		}
		if !strings.Contains(output, "LIGO Livingston (L1)") {
			t.Error("expected output to contain interferometer")
		}
		if !strings.Contains(output, "2017-08-17 12:41:04") {
			t.Error("expected output to contain UTC time")
		}
	})

	t.Run("writes channel counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "3 scanned, 1 analyzed") {
			t.Errorf("expected channel counts, got %q", buf.String())
		}
	})

	t.Run("skips empty blocks by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Primary") {
			t.Error("expected output to contain analyzed block")
		}
		if strings.Contains(output, "Auxiliary") {
			t.Error("expected output to skip empty block")
		}
	})

	t.Run("shows empty blocks when configured", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithShowEmpty(true))

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "Auxiliary") {
			t.Error("expected output to contain empty block")
		}
	})

	t.Run("marks null results", func(t *testing.T) {
		t.Parallel()

		result := createTestResult()
		result.Blocks[0].Channels[0].Stats = nil

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(result); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "NULL RESULT") {
			t.Errorf("expected null-result status, got %q", buf.String())
		}
	})
}

// TestJSONWriter tests the machine-readable report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes valid JSON with summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var wrapped JSONReport
		if err := json.Unmarshal(buf.Bytes(), &wrapped); err != nil {
			t.Fatalf("unexpected unmarshal error: %v", err)
		}
		if wrapped.Result == nil || wrapped.Result.Instrument != model.LIGOLivingston {
			t.Errorf("got result %+v, expected instrument L1", wrapped.Result)
		}
		if wrapped.Summary == nil || wrapped.Summary.AnalyzedChannels != 1 {
			t.Errorf("got summary %+v, expected 1 analyzed channel", wrapped.Summary)
		}
	})

	t.Run("pretty print indents output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})

	t.Run("summary only omits channel detail", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		summary := model.NewScanSummary(createTestResult())
		if _, err := w.WriteSummary(summary); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "L1:TEST-CHANNEL") {
			t.Error("expected summary output without channel names")
		}
		if !strings.Contains(output, `"analyzed_channels":1`) {
			t.Errorf("expected analyzed count, got %q", output)
		}
	})
}

// TestMarkdownWriter tests the documentation report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes header and block table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Omega Scan Report") {
			t.Error("expected markdown title")
		}
		if !strings.Contains(output, "LIGO Livingston") {
			t.Error("expected interferometer row")
		}
		if !strings.Contains(output, "Primary") || !strings.Contains(output, "`primary`") {
			t.Error("expected block table row")
		}
	})

	t.Run("alerts on partial analysis", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "1 of 3 scanned channels") {
			t.Errorf("expected partial-analysis alert, got %q", buf.String())
		}
	})

	t.Run("notes null results", func(t *testing.T) {
		t.Parallel()

		result := createTestResult()
		result.Blocks[0].Channels[0].Stats = nil

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(result); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "null-result") {
			t.Errorf("expected null-result note, got %q", buf.String())
		}
	})
}

// TestMultiWriter tests fan-out to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var text, js bytes.Buffer
		w := NewMultiWriter(NewSimpleWriter(&text), NewJSONWriter(&js))

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if text.Len() == 0 || js.Len() == 0 {
			t.Error("expected output in all writers")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMultiWriter(NewJSONWriter(failWriter{}), NewJSONWriter(&buf))

		if _, err := w.Write(createTestResult()); err == nil {
			t.Error("expected error, got nil")
		}
		if buf.Len() != 0 {
			t.Error("expected no output after failed writer")
		}
	})
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

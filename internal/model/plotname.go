package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrMalformedPlotName is returned when a plot filename does not follow
// the expected <detector>-<channel>-...-<duration>.<ext> structure.
var ErrMalformedPlotName = errors.New("malformed plot filename")

// PlotName is the parsed form of a plot image filename.
//
// Plot filenames produced by the analysis pipeline follow the grammar
//
//	<detector>-<channel>-...-<duration>.<ext>
//
// where hyphens delimit tokens, the first two tokens identify the channel,
// and the final token before the extension is the time-axis duration
// (e.g. "L1-GDS_CALIB_STRAIN-qscan_whitened-4.png").
//
// Design decision: The filename structure is parsed once into an explicit
// value rather than sliced ad hoc at each use site. Filenames from older
// pipelines do not always match the grammar, and an explicit parse gives
// callers a single place to apply a fallback.
type PlotName struct {
	// Detector is the first hyphen-delimited token (e.g. "L1").
	Detector string

	// Channel is the second hyphen-delimited token (e.g. "GDS_CALIB_STRAIN").
	Channel string

	// Duration is the final token before the extension (e.g. "4").
	Duration string
}

// ParsePlotName parses the base filename of path into its components.
// It returns ErrMalformedPlotName (wrapped) when the name has fewer than
// three hyphen-delimited tokens.
func ParsePlotName(path string) (PlotName, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	tokens := strings.Split(stem, "-")
	if len(tokens) < 3 {
		return PlotName{}, fmt.Errorf("%w: %q", ErrMalformedPlotName, base)
	}
	return PlotName{
		Detector: tokens[0],
		Channel:  tokens[1],
		Duration: tokens[len(tokens)-1],
	}, nil
}

// IDSuffix returns the id component shared by a plot's anchor and image
// elements: "<detector>-<channel>_<duration>".
func (n PlotName) IDSuffix() string {
	return n.Detector + "-" + n.Channel + "_" + n.Duration
}

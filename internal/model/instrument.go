package model

// Instrument is a two-character observatory prefix (e.g. "L1").
type Instrument string

// The gravitational-wave observatories this tool knows how to label.
const (
	GEO            Instrument = "G1"
	LIGOHanford    Instrument = "H1"
	LIGOIndia      Instrument = "I1"
	KAGRA          Instrument = "K1"
	LIGOLivingston Instrument = "L1"
	Virgo          Instrument = "V1"
)

// Observatory holds the presentation attributes of one observatory:
// its display name, its Bootstrap styling context and its banner color.
type Observatory struct {
	Name    string
	Context string
	Color   string
}

// observatoryMap fixes the presentation attributes per prefix. The
// colors match the conventions used across detector-characterization
// reports so a reader can identify the site at a glance.
var observatoryMap = map[Instrument]Observatory{
	GEO:            {Name: "GEO", Context: "default", Color: "#222222"},
	LIGOHanford:    {Name: "LIGO Hanford", Context: "danger", Color: "#ee0000"},
	LIGOIndia:      {Name: "LIGO India", Context: "success", Color: "#b0dd8b"},
	KAGRA:          {Name: "KAGRA", Context: "warning", Color: "#ffb200"},
	LIGOLivingston: {Name: "LIGO Livingston", Context: "info", Color: "#4ba6ff"},
	Virgo:          {Name: "Virgo", Context: "primary", Color: "#9b59b6"},
}

// Valid reports whether the instrument is a known observatory prefix.
func (i Instrument) Valid() bool {
	_, ok := observatoryMap[i]
	return ok
}

// Observatory returns the presentation attributes for the instrument.
// The boolean reports whether the prefix is known.
func (i Instrument) Observatory() (Observatory, bool) {
	obs, ok := observatoryMap[i]
	return obs, ok
}

// DisplayName returns the observatory display name, falling back to the
// raw prefix for unknown instruments so pages still render.
func (i Instrument) DisplayName() string {
	if obs, ok := observatoryMap[i]; ok {
		return obs.Name
	}
	return string(i)
}

// Context returns the Bootstrap styling context for the instrument,
// falling back to "default" for unknown prefixes.
func (i Instrument) Context() string {
	if obs, ok := observatoryMap[i]; ok {
		return obs.Context
	}
	return "default"
}

// Color returns the banner color for the instrument, falling back to a
// neutral gray for unknown prefixes.
func (i Instrument) Color() string {
	if obs, ok := observatoryMap[i]; ok {
		return obs.Color
	}
	return "#222222"
}

// Instruments returns the known observatory prefixes in alphabetical
// order.
func Instruments() []Instrument {
	return []Instrument{GEO, LIGOHanford, LIGOIndia, KAGRA, LIGOLivingston, Virgo}
}

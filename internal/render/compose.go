package render

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/scottcoughlin2014/gwdetchar/internal/highlight"
	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// tableClass is the Bootstrap class list shared by the summary and
// per-channel statistics tables.
const tableClass = "table table-condensed table-hover table-responsive"

// plotFamily describes one dropdown group of view-toggle controls:
// a display title, the plot-type class prefix, and the variants the
// analysis produces for that family.
type plotFamily struct {
	Title string
	Class string
	Types []string
}

// plotFamilies is the fixed set of toggle-control groups rendered for
// every analyzed channel. Plot-type labels are "<class>_<type>".
var plotFamilies = []plotFamily{
	{Title: "Timeseries", Class: "timeseries", Types: []string{"raw", "highpassed", "whitened"}},
	{Title: "Q-transform", Class: "qscan", Types: []string{"raw", "whitened", "autoscaled"}},
	{Title: "Eventgram", Class: "eventgram", Types: []string{"raw", "whitened", "autoscaled"}},
}

// titleCaser capitalizes plot-family class names for button ids.
var titleCaser = cases.Title(language.English)

// Summary returns the analysis summary fragment: a fixed description of
// the analysis plus a table naming the interferometer and the UTC time.
func Summary(inst model.Instrument, gpstime float64) string {
	var b strings.Builder
	b.WriteString("<h2>Analysis Summary</h2>\n")
	b.WriteString(`<p>This page shows time-frequency maps of a user-configured list of ` +
		`channels for a given interferometer and GPS time. Time-frequency maps are computed ` +
		`using the ` +
		Link("https://gwpy.github.io/docs/stable/examples/timeseries/qscan.html", "Q-transform", nil) +
		`.</p>` + "\n")
	b.WriteString("<p>This analysis is based on the following run arguments.</p>\n")
	fmt.Fprintf(&b, `<table class="%s">`+"\n<tbody>\n", tableClass)
	fmt.Fprintf(&b, "<tr>\n<td><b>Interferometer</b></td>\n<td>%s (%s)</td>\n</tr>\n",
		inst.DisplayName(), inst)
	fmt.Fprintf(&b, "<tr>\n<td><b>UTC Time</b></td>\n<td>%s</td>\n</tr>\n",
		model.GPSToUTC(gpstime).Format("2006-01-02 15:04:05"))
	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}

// TOC returns the table of contents: one anchor link per block, labeled
// by block name, targeting "#block-<key>". Keys are assumed unique; the
// renderer does not detect collisions here (layouts are validated at
// load time).
func TOC(blocks []model.Block) string {
	var b strings.Builder
	b.WriteString(`<div class="container">` + "\n")
	b.WriteString("<h2>Table of Contents</h2>\n<ul>\n")
	for _, block := range blocks {
		fmt.Fprintf(&b, `<li>`+"\n"+`<a href="#block-%s">%s</a>`+"\n</li>\n", block.Key, block.Name)
	}
	b.WriteString("</ul>\n</div>\n")
	return b.String()
}

// BlockPanel returns the collapsible panel for one channel block: a
// context-colored heading with a back-to-top link, then one list entry
// per analyzed channel. Channels without tile statistics are skipped
// silently; they were scanned but produced nothing worth reporting.
func BlockPanel(block model.Block, context string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="panel panel-%s" id="block-%s">`+"\n", context, block.Key)

	// heading
	b.WriteString(`<div class="panel-heading clearfix">` + "\n")
	b.WriteString(`<div class="pull-right">` + "\n")
	fmt.Fprintf(&b, `<a href="#" class="%s"><small>[top]</small></a>`+"\n", topLinkClass(context))
	b.WriteString("</div>\n")
	fmt.Fprintf(&b, `<h3 class="panel-title">%s</h3>`+"\n", block.Name)
	b.WriteString("</div>\n")

	// body
	b.WriteString(`<ul class="list-group">` + "\n")
	for i := range block.Channels {
		ch := &block.Channels[i]
		if !ch.Analyzed() {
			continue
		}
		b.WriteString(channelEntry(ch, i))
	}
	b.WriteString("</ul>\n</div>\n")
	return b.String()
}

// topLinkClass picks the text class for a panel's back-to-top link so it
// stays legible against the context-colored heading.
func topLinkClass(context string) string {
	switch context {
	case "primary":
		return "text-light"
	case "default":
		return "text-dark"
	default:
		return "text-" + context
	}
}

// channelEntry returns the list entry for one analyzed channel: the
// CIS-linked heading, the tile statistics table, the three toggle-control
// groups, and the whitened Q-transform plot grid.
func channelEntry(ch *model.Channel, index int) string {
	var b strings.Builder
	b.WriteString(`<li class="list-group-item">` + "\n")
	b.WriteString(`<div class="container">` + "\n")
	fmt.Fprintf(&b, "<h4>%s</h4>\n", CISLink(ch.Name, nil))
	b.WriteString(`<div class="row">` + "\n")

	// statistics table
	b.WriteString(`<div class="col-md-3">` + "\n")
	b.WriteString("<p>Properties of the most significant time-frequency tile</p>\n")
	fmt.Fprintf(&b, `<table class="%s" style="width: 95%%;">`+"\n<tbody>\n", tableClass)
	rows := [][2]string{
		{"GPS Time", fmt.Sprintf("%.3f", ch.Stats.Time)},
		{"Frequency", fmt.Sprintf("%.1f Hz", ch.Stats.Frequency)},
		{"Q Factor", fmt.Sprintf("%.1f", ch.Stats.Q)},
		{"Energy", fmt.Sprintf("%.1f", ch.Stats.Energy)},
		{"SNR", fmt.Sprintf("%.1f", ch.Stats.SNR)},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "<tr>\n<td><b>%s</b></td>\n<td>%s</td>\n</tr>\n", row[0], row[1])
	}
	b.WriteString("</tbody>\n</table>\n</div>\n")

	// toggle controls and plots
	b.WriteString(`<div class="col-md-9">` + "\n")
	b.WriteString(`<div class="btn-group" role="group">` + "\n")
	for _, family := range plotFamilies {
		b.WriteString(toggleGroup(family, ch, index))
	}
	b.WriteString("</div>\n")

	perRow := len(ch.Ranges)
	if perRow > DefaultPlotsPerRow {
		perRow = DefaultPlotsPerRow
	}
	b.WriteString(ScaffoldPlots(ch.Plots["qscan_whitened"], perRow))

	b.WriteString("</div>\n</div>\n</div>\n</li>\n")
	return b.String()
}

// toggleGroup returns one dropdown of view-toggle controls for a plot
// family. The button id carries the channel index so ids stay unique
// across a block.
func toggleGroup(family plotFamily, ch *model.Channel, index int) string {
	id := fmt.Sprintf("btnGroup%s%d", titleCaser.String(family.Class), index)

	var b strings.Builder
	b.WriteString(`<div class="btn-group" role="group">` + "\n")
	fmt.Fprintf(&b,
		`<button id="%s" type="button" class="btn btn-info dropdown-toggle" data-toggle="dropdown">`+
			"%s view <span class=\"caret\"></span></button>\n",
		id, family.Title)
	fmt.Fprintf(&b, `<ul class="dropdown-menu" role="menu" aria-labelledby="%s">`+"\n", id)
	for _, ptype := range family.Types {
		fmt.Fprintf(&b, "<li>%s</li>\n", ToggleLink(family.Class+"_"+ptype, ch, ch.Ranges))
	}
	b.WriteString("</ul>\n</div>\n")
	return b.String()
}

// ResultsPage returns the main results fragment: the table of contents,
// a results heading, and one block panel per block in input order.
func ResultsPage(blocks []model.Block, context string) string {
	var b strings.Builder
	b.WriteString(TOC(blocks))
	b.WriteString("<h2>Results</h2>\n")
	b.WriteString("<p>The following blocks of channels were scanned for interesting " +
		"time-frequency morphology:</p>\n")
	for _, block := range blocks {
		b.WriteString(BlockPanel(block, context))
	}
	return b.String()
}

// NullPage returns the null-result fragment: a single context-styled
// alert box holding the explanation.
func NullPage(reason, context string) string {
	return fmt.Sprintf(`<div class="alert alert-%s">`+"\n<p>%s</p>\n</div>\n", context, reason)
}

// AboutPage returns the about fragment: the verbatim command invocation
// plus the full contents of each scan-layout file, highlighted when the
// external highlighter is available. The returned error is non-nil only
// when a layout file cannot be read at all.
func AboutPage(configFiles []string) (string, error) {
	var b strings.Builder
	b.WriteString("<h2>On the command line</h2>\n")
	b.WriteString("<p>This page was generated with the command line call shown below.</p>\n")
	fmt.Fprintf(&b, "<pre>%s</pre>\n", strings.Join(os.Args, " "))
	b.WriteString("<h2>Configuration files</h2>\n")
	b.WriteString("<p>Omega scans are configured through YAML-format scan layouts. " +
		"The files used for this analysis are reproduced below in full.</p>\n")
	for _, path := range configFiles {
		formatted, err := highlight.File(path, "yaml")
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "<pre>%s</pre>\n", formatted)
	}
	return b.String(), nil
}

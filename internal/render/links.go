package render

import (
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// cisURL is the Channel Information System lookup endpoint; the rendered
// report only links to it, it is never queried.
const cisURL = "https://cis.ligo.org/channel/byname/"

// Attrs holds additional HTML attributes for a generated tag.
//
// Design decision: Attributes are emitted in sorted key order so that
// generated markup is deterministic and directly comparable in tests.
// An attribute with an empty value is dropped, which is how callers
// suppress a default (e.g. target).
type Attrs map[string]string

// String renders the attributes as ` key="value"` pairs with escaped
// values. The result is empty for an empty map.
func (a Attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		if a[k] == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, ` %s="%s"`, k, html.EscapeString(a[k]))
	}
	return b.String()
}

// merge returns a copy of a with overrides applied on top.
func (a Attrs) merge(overrides Attrs) Attrs {
	merged := make(Attrs, len(a)+len(overrides))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Link returns an <a> fragment for href with the given display text.
// Links open in a new viewing context (target="_blank") unless the
// caller overrides target in attrs; text passes through unescaped so
// callers can embed markup.
func Link(href, text string, attrs Attrs) string {
	merged := Attrs{"target": "_blank"}.merge(attrs)
	return fmt.Sprintf(`<a href="%s"%s>%s</a>`, html.EscapeString(href), merged.String(), text)
}

// CISLink returns a link to the Channel Information System entry for the
// named channel, in monospace with an explanatory tooltip. Caller
// attributes merge over these defaults.
func CISLink(channel string, attrs Attrs) string {
	defaults := Attrs{
		"title": "CIS entry for " + channel,
		"style": `font-family: Monaco, "Courier New", monospace;`,
	}
	return Link(cisURL+channel, channel, defaults.merge(attrs))
}

// ToggleLink returns a dropdown menu item that instructs the bundled
// page script to swap the displayed image set for one plot-type family
// of a channel. The payload carries the quoted time ranges and the
// per-plot captions for that plot type; a plot type missing from the
// channel's mapping yields an empty caption list rather than an error.
func ToggleLink(plotType string, ch *model.Channel, ranges []int) string {
	// Display text is the variant half of the label, e.g. "whitened"
	// from "qscan_whitened".
	text := plotType
	if _, after, ok := strings.Cut(plotType, "_"); ok {
		text = after
	}

	quoted := make([]string, len(ranges))
	for i, r := range ranges {
		quoted[i] = fmt.Sprintf("'%d'", r)
	}

	captions := make([]string, 0, len(ch.Plots[plotType]))
	for _, p := range ch.Plots[plotType] {
		captions = append(captions, p.Caption)
	}
	payload, err := json.Marshal(captions)
	if err != nil {
		payload = []byte("[]")
	}

	onclick := fmt.Sprintf("showImage('%s', [%s], '%s', %s);",
		ch.IDToken(), strings.Join(quoted, ","), plotType, payload)
	return fmt.Sprintf(`<a class="dropdown-item" onclick="%s"><b>%s</b></a>`,
		html.EscapeString(onclick), text)
}

package render

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
	"github.com/scottcoughlin2014/gwdetchar/internal/version"
)

// projectURL is the attribution link emitted in every page footer.
const projectURL = "https://github.com/scottcoughlin2014/gwdetchar"

// pageState tracks the Page lifecycle.
type pageState int

const (
	pageUnopened pageState = iota
	pageOpen
	pageClosed
)

// Page accumulates one HTML document from OpenPage through Close.
//
// A Page moves strictly unopened -> open -> closed: OpenPage emits the
// document shell (doctype, head, instrument banner) and returns an open
// handle; Add appends body fragments; Close emits the footer and writes
// the finished document to disk. Out-of-order calls return the sentinel
// lifecycle errors from errors.go.
type Page struct {
	buf   strings.Builder
	state pageState
}

// PageOptions configures OpenPage.
type PageOptions struct {
	// Title is the document title. Empty means no <title> element.
	Title string

	// Base is the href for the <base> element. Defaults to ".".
	Base string

	// CSS and JS are the asset reference lists linked in the head, in
	// order. When both are nil the bundled defaults are used.
	CSS []string
	JS  []string

	// StaticDir is the directory that receives local asset copies.
	// Defaults to "static" under the current directory. Pages sharing an
	// output tree must share one static directory.
	StaticDir string
}

// OpenPage starts a new document for the given instrument and GPS time:
// it resolves the asset lists into usable URLs, emits the head, and
// emits the instrument-colored banner. The returned page is open and
// ready for body content.
func OpenPage(inst model.Instrument, gpstime float64, opts PageOptions) (*Page, error) {
	if opts.Base == "" {
		opts.Base = "."
	}
	if opts.StaticDir == "" {
		opts.StaticDir = "static"
	}

	css, js := opts.CSS, opts.JS
	if css == nil && js == nil {
		var err error
		css, js, err = DefaultAssets(opts.StaticDir)
		if err != nil {
			return nil, err
		}
	}
	css, js, err := FinalizeStaticURLs(opts.StaticDir, css, js)
	if err != nil {
		return nil, err
	}

	p := &Page{state: pageOpen}
	p.buf.WriteString("<!DOCTYPE HTML>\n")
	p.buf.WriteString(`<html lang="en">` + "\n")

	// head
	p.buf.WriteString("<head>\n")
	fmt.Fprintf(&p.buf, `<base href="%s" />`+"\n", opts.Base)
	for _, f := range css {
		fmt.Fprintf(&p.buf, `<link href="%s" rel="stylesheet" type="text/css" media="all" />`+"\n", f)
	}
	for _, f := range js {
		fmt.Fprintf(&p.buf, `<script src="%s" type="text/javascript"></script>`+"\n", f)
	}
	if opts.Title != "" {
		fmt.Fprintf(&p.buf, "<title>%s</title>\n", opts.Title)
	}
	p.buf.WriteString("</head>\n<body>\n")

	// instrument banner
	fmt.Fprintf(&p.buf,
		`<div class="navbar navbar-fixed-top" role="banner" style="background-color:%s;">`+"\n",
		inst.Color())
	p.buf.WriteString(`<div class="container">` + "\n")
	fmt.Fprintf(&p.buf,
		`<h4 style="text-align:left;">%s Omega Scan <span style="float:right;">%s</span></h4>`+"\n",
		inst, FormatGPS(gpstime))
	p.buf.WriteString("</div>\n</div>\n")

	// open main content container
	p.buf.WriteString(`<div class="container">` + "\n")
	return p, nil
}

// Add appends a body fragment to an open page.
func (p *Page) Add(fragment string) error {
	switch p.state {
	case pageOpen:
		p.buf.WriteString(fragment)
		return nil
	case pageClosed:
		return ErrPageClosed
	default:
		return ErrPageNotOpen
	}
}

// Close completes the document with a footer and writes it to target,
// overwriting any existing file. The footer records when and by whom the
// page was generated; date defaults to the current time with sub-minute
// precision truncated. A non-empty about links the "How was this page
// generated?" line. The page cannot be used after Close.
func (p *Page) Close(target, about string, date time.Time) error {
	switch p.state {
	case pageClosed:
		return ErrPageClosed
	case pageUnopened:
		return ErrPageNotOpen
	}

	p.buf.WriteString("</div>\n")
	p.buf.WriteString(writeFooter(about, date))
	p.buf.WriteString("</body>\n</html>\n")
	p.state = pageClosed

	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(p.buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}

// writeFooter returns the footer fragment shared by all pages.
func writeFooter(about string, date time.Time) string {
	if date.IsZero() {
		date = time.Now().Truncate(time.Minute)
	}

	var b strings.Builder
	b.WriteString(`<footer class="footer">` + "\n")
	b.WriteString(`<div class="container">` + "\n")
	link := Link(projectURL, "GW-DetChar version "+version.Version(), Attrs{"style": "color:#eee;"})
	fmt.Fprintf(&b, "<p>Page generated using %s by %s at %s</p>\n",
		link, currentUser(), date.Format("2006-01-02 15:04:05"))
	if about != "" {
		fmt.Fprintf(&b, `<a href="%s" style="color:#eee;">How was this page generated?</a>`+"\n", about)
	}
	b.WriteString("</div>\n</footer>\n")
	return b.String()
}

// currentUser names the generating user for the footer.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

// FormatGPS renders a GPS time without trailing zeros, matching how the
// analysis pipeline labels its output.
func FormatGPS(gpstime float64) string {
	return strconv.FormatFloat(gpstime, 'f', -1, 64)
}

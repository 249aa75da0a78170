package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// fragmentName is the file holding a page's asynchronously-loaded body
// content. Keeping large content out of the main document lets the
// browser paint the shell before the block panels arrive.
const fragmentName = "_inner.html"

// ContentFunc produces the inner fragment of one report page. The
// context argument carries the instrument's styling context when the
// page is a full report with an about-page; it is empty otherwise.
type ContentFunc func(context string) (string, error)

// WriteOptions configures WritePage.
type WriteOptions struct {
	// OutDir is the directory receiving index.html and its satellite
	// files. Created if absent. Defaults to ".".
	OutDir string

	// Title is the document title. Defaults to "<instrument> Qscan | <gps>".
	Title string

	// Base is the href for the <base> element. Defaults to ".".
	Base string

	// ConfigFiles are scan-layout paths to reproduce on an about-page.
	// When non-empty, an about/ subdirectory is generated and linked
	// from the main page footer.
	ConfigFiles []string

	// staticDir overrides the shared static directory; used internally
	// so the about-page reuses its parent report's static assets.
	staticDir string
}

// WritePage runs the full page pipeline: resolve the output directory,
// generate and link the about-page when configuration files were
// supplied, open the page shell, delegate to the content function, write
// its output as an asynchronously-loaded fragment, and close the page.
// It returns the path of the written index.html.
//
// Design decision: This is an explicit pipeline over plain values (page
// handle, fragment string, output paths) rather than a decorator around
// the content functions; every intermediate product is inspectable and
// each stage's failure surfaces as a wrapped error.
func WritePage(inst model.Instrument, gpstime float64, content ContentFunc, opts WriteOptions) (string, error) {
	outdir := opts.OutDir
	if outdir == "" {
		outdir = "."
	}
	if err := os.MkdirAll(outdir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s Qscan | %s", inst, FormatGPS(gpstime))
	}
	base := opts.Base
	if base == "" {
		base = "."
	}
	static := opts.staticDir
	if static == "" {
		static = filepath.Join(outdir, "static")
	}

	// Generate the about-page first so the main footer can link it.
	var about string
	if len(opts.ConfigFiles) > 0 {
		aboutBase := base
		if aboutBase == "." {
			aboutBase = ".."
		}
		aboutPath, err := WritePage(inst, gpstime,
			func(string) (string, error) { return AboutPage(opts.ConfigFiles) },
			WriteOptions{
				OutDir:    filepath.Join(outdir, "about"),
				Title:     title,
				Base:      aboutBase,
				staticDir: static,
			})
		if err != nil {
			return "", fmt.Errorf("failed to write about page: %w", err)
		}
		// The footer link must resolve from the main page, so relativize
		// against the output directory.
		about, err = filepath.Rel(outdir, aboutPath)
		if err != nil {
			about = aboutPath
		}
		about = filepath.ToSlash(about)
		// Directory links read better than explicit index.html targets.
		if filepath.Base(about) == "index.html" {
			about = filepath.ToSlash(filepath.Dir(about)) + "/"
		}
	}

	page, err := OpenPage(inst, gpstime, PageOptions{Title: title, Base: base, StaticDir: static})
	if err != nil {
		return "", err
	}

	// The analysis summary and instrument styling belong to full report
	// pages only; their presence is keyed off the about-page.
	context := ""
	if about != "" {
		if err := page.Add(Summary(inst, gpstime)); err != nil {
			return "", err
		}
		context = inst.Context()
	}

	fragment, err := content(context)
	if err != nil {
		return "", err
	}
	fragmentPath := filepath.Join(outdir, fragmentName)
	if err := os.WriteFile(fragmentPath, []byte(fragment), 0644); err != nil {
		return "", fmt.Errorf("failed to write content fragment: %w", err)
	}

	if err := page.Add(`<div id="content"></div>` + "\n"); err != nil {
		return "", err
	}
	// The loader URL resolves against the document base, not the page's
	// own directory, so it must be emitted relative to the base. On the
	// about page (base "..") the bare fragment name would fetch the main
	// page's fragment instead of its own.
	fragmentURL, err := filepath.Rel(filepath.Join(outdir, base), fragmentPath)
	if err != nil {
		fragmentURL = fragmentName
	}
	fragmentURL = filepath.ToSlash(fragmentURL)
	if err := page.Add(fmt.Sprintf("<script>$('#content').load('%s');</script>\n", fragmentURL)); err != nil {
		return "", err
	}

	index := filepath.Join(outdir, "index.html")
	if err := page.Close(index, about, time.Time{}); err != nil {
		return "", err
	}
	return index, nil
}

// WriteQscanPage renders the full results page for a scan result.
// The block panels take the instrument's styling context even when no
// about-page forwards one.
func WriteQscanPage(result *model.ScanResult, opts WriteOptions) (string, error) {
	return WritePage(result.Instrument, result.GPSTime, func(context string) (string, error) {
		if context == "" {
			context = result.Instrument.Context()
		}
		return ResultsPage(result.Blocks, context), nil
	}, opts)
}

// WriteNullPage renders the page reporting that an analysis produced no
// channels worth showing. The alert defaults to the "info" context when
// no instrument context is forwarded.
func WriteNullPage(inst model.Instrument, gpstime float64, reason string, opts WriteOptions) (string, error) {
	return WritePage(inst, gpstime, func(context string) (string, error) {
		if context == "" {
			context = "info"
		}
		return NullPage(reason, context), nil
	}, opts)
}

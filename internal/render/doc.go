// Package render composes omega-scan results into static HTML report
// pages.
//
// The package is organized around three layers:
//   - Document primitives: link, thumbnail, and toggle-control fragment
//     builders, plus the grid layout for plot thumbnails.
//   - Page lifecycle: a Page accumulates one document from OpenPage
//     (doctype, head, instrument banner) through Close (footer, write to
//     disk), with asset references resolved into a shared static/ dir.
//   - Composition: the fragment builders for each page kind (results,
//     null result, about) and WritePage, the pipeline that wires a
//     content function into an opened page, writes the content as an
//     asynchronously-loaded fragment, and persists everything.
//
// Design decision: Fragments are plain strings built with
// strings.Builder rather than html/template trees. The report structure
// is fixed and recursive (blocks of channels of plots), so a template
// would be one giant conditional; explicit builder functions keep each
// structural rule (grid row closing, toggle payloads, anchor ids) in one
// named, testable place.
//
// All operations are sequential and synchronous. Concurrent renders into
// the same output tree race benignly on static-asset copies (last writer
// wins, contents identical); the engine provides no locking.
package render

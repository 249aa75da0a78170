package render

import "errors"

// Page lifecycle errors.
// A Page moves strictly from unopened through open to closed; calls out
// of order are caller contract violations and are reported, not ignored.
var (
	// ErrPageNotOpen is returned when content is added to, or Close is
	// called on, a page that was never opened.
	ErrPageNotOpen = errors.New("page is not open")

	// ErrPageClosed is returned when a page is used after Close.
	ErrPageClosed = errors.New("page is already closed")
)

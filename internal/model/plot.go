package model

import "path/filepath"

// Plot pairs an image path with the caption displayed when the image is
// opened in its fancybox overlay. A Plot is immutable once created.
type Plot struct {
	// Img is the path of the image file, relative to the report directory.
	Img string `json:"img"`

	// Caption is the text displayed under the enlarged image.
	Caption string `json:"caption,omitempty"`
}

// NewPlot creates a Plot for the given image path. If caption is empty,
// the image's base filename is used.
func NewPlot(img, caption string) Plot {
	if caption == "" {
		caption = filepath.Base(img)
	}
	return Plot{Img: img, Caption: caption}
}

// NewPlotFrom derives a Plot from an existing one, inheriting its caption
// unless a replacement is given. This mirrors how plot variants (raw,
// whitened, autoscaled) share one caption across renderings.
func NewPlotFrom(src Plot, caption string) Plot {
	if caption == "" {
		caption = src.Caption
	}
	return Plot{Img: src.Img, Caption: caption}
}

// Basename returns the base filename of the plot image.
func (p Plot) Basename() string {
	return filepath.Base(p.Img)
}

package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/scottcoughlin2014/gwdetchar/internal/model"
)

// FancyboxImage returns the clickable thumbnail markup for a plot: an
// anchor wrapping an <img>, both carrying ids derived from the plot
// filename so the bundled page script can address them as a pair when
// swapping image sets. Caller attributes merge over the defaults
// (linkAttrs for the anchor, imgAttrs for the image).
func FancyboxImage(p model.Plot, linkAttrs, imgAttrs Attrs) string {
	suffix := imageIDSuffix(p.Img)

	aDefaults := Attrs{
		"id":                  "a_" + suffix,
		"title":               p.Caption,
		"class":               "fancybox",
		"target":              "_blank",
		"data-fancybox-group": "qscan-image",
		"href":                p.Img,
	}
	imgDefaults := Attrs{
		"id":    "img_" + suffix,
		"alt":   p.Basename(),
		"class": "img-responsive",
		"src":   p.Img,
	}

	return fmt.Sprintf("<a%s>\n<img%s />\n</a>",
		aDefaults.merge(linkAttrs).String(),
		imgDefaults.merge(imgAttrs).String())
}

// imageIDSuffix derives the id component shared by a thumbnail's anchor
// and image elements. Filenames that don't match the plot-name grammar
// fall back to the bare filename without extension, which keeps the ids
// unique even if the page script cannot toggle those images.
func imageIDSuffix(img string) string {
	name, err := model.ParsePlotName(img)
	if err != nil {
		base := filepath.Base(img)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return name.IDSuffix()
}

package render

import (
	"embed"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// CDN-hosted framework assets linked from every page head.
// Protocol-relative URLs inherit the scheme of the report itself.
const (
	BootstrapCSS = "//cdnjs.cloudflare.com/ajax/libs/twitter-bootstrap/3.3.7/css/bootstrap.min.css"
	BootstrapJS  = "//cdnjs.cloudflare.com/ajax/libs/twitter-bootstrap/3.3.7/js/bootstrap.min.js"
	JQueryJS     = "//code.jquery.com/jquery-1.12.3.min.js"
	FancyboxCSS  = "//cdnjs.cloudflare.com/ajax/libs/fancybox/2.1.5/jquery.fancybox.min.css"
	FancyboxJS   = "//cdnjs.cloudflare.com/ajax/libs/fancybox/2.1.5/jquery.fancybox.min.js"
)

// Bundled report assets, compiled into the binary and materialized into
// each report's static directory on first use.
//
//go:embed static/omega.min.css static/omega.min.js
var staticFS embed.FS

// DefaultAssets writes the bundled stylesheet and script into the static
// directory and returns the default asset lists: framework assets first
// (their load order matters to the page script), report assets last.
// The returned local paths still need resolving via FinalizeStaticURLs.
func DefaultAssets(static string) (css, js []string, err error) {
	cssPath, err := materialize(static, "omega.min.css")
	if err != nil {
		return nil, nil, err
	}
	jsPath, err := materialize(static, "omega.min.js")
	if err != nil {
		return nil, nil, err
	}

	css = []string{BootstrapCSS, FancyboxCSS, cssPath}
	js = []string{JQueryJS, BootstrapJS, FancyboxJS, jsPath}
	return css, js, nil
}

// materialize writes one embedded asset into the static directory and
// returns its on-disk path.
func materialize(static, name string) (string, error) {
	data, err := staticFS.ReadFile("static/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded asset %s: %w", name, err)
	}
	if err := os.MkdirAll(static, 0750); err != nil {
		return "", fmt.Errorf("failed to create static directory: %w", err)
	}
	target := filepath.Join(static, name)
	if err := os.WriteFile(target, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write embedded asset %s: %w", name, err)
	}
	return target, nil
}

// FinalizeStaticURLs resolves the stylesheet and script reference lists
// into URLs usable from a document head whose base is the parent of the
// static directory.
//
// References that are already absolute external URLs (they carry a host)
// pass through unchanged. Local paths already under the static directory
// are rewritten relative to its parent; any other local path is first
// copied into the static directory, which is created lazily so that an
// all-CDN asset list produces no empty directory.
//
// Input order is preserved in both lists; it determines load order in
// the emitted head. Copy failures propagate unretried.
func FinalizeStaticURLs(static string, cssFiles, jsFiles []string) ([]string, []string, error) {
	absStatic, err := filepath.Abs(static)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve static directory: %w", err)
	}

	css, err := resolveAssets(absStatic, cssFiles)
	if err != nil {
		return nil, nil, err
	}
	js, err := resolveAssets(absStatic, jsFiles)
	if err != nil {
		return nil, nil, err
	}
	return css, js, nil
}

// resolveAssets resolves one ordered reference list.
func resolveAssets(static string, refs []string) ([]string, error) {
	resolved := make([]string, len(refs))
	for i, ref := range refs {
		if u, err := url.Parse(ref); err == nil && u.Host != "" {
			resolved[i] = ref
			continue
		}
		local, err := localURL(static, ref)
		if err != nil {
			return nil, err
		}
		resolved[i] = local
	}
	return resolved, nil
}

// localURL maps a local asset path to a URL relative to the static
// directory's parent, copying the file into static when it isn't
// already below it.
func localURL(static, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve asset path %s: %w", path, err)
	}

	local := abs
	if !underDir(static, abs) {
		if err := os.MkdirAll(static, 0750); err != nil {
			return "", fmt.Errorf("failed to create static directory: %w", err)
		}
		local = filepath.Join(static, filepath.Base(abs))
		if err := copyFile(abs, local); err != nil {
			return "", err
		}
	}

	rel, err := filepath.Rel(filepath.Dir(static), local)
	if err != nil {
		return "", fmt.Errorf("failed to relativize asset path %s: %w", local, err)
	}
	return filepath.ToSlash(rel), nil
}

// underDir reports whether path lies at or below dir.
func underDir(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// copyFile copies src to dst, overwriting dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open asset %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create asset copy %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy asset %s: %w", src, err)
	}
	return out.Close()
}

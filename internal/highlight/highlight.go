// Package highlight renders configuration files as HTML with syntax
// highlighting by shelling out to the external highlight(1) tool.
//
// Design decision: The highlighter is an optional collaborator, not a
// dependency. Any failure to run it (tool not installed, non-zero exit)
// falls back to the raw file contents, so the about page degrades to an
// unstyled dump rather than failing the whole render.
package highlight

import (
	"fmt"
	"os"
	"os/exec"
)

// command is the name of the external highlighter binary.
// It is a variable so tests can point it at a missing tool.
var command = "highlight"

// File returns an HTML-formatted copy of the file at path, highlighted
// for the given syntax (e.g. "yaml", "ini"). The returned markup is a
// fragment with inline CSS, suitable for embedding inside <pre> tags.
//
// On any highlighter failure the raw file contents are returned
// unmodified. An error is returned only when the file itself cannot
// be read.
func File(path, syntax string) (string, error) {
	out, err := run(path, syntax)
	if err == nil {
		return out, nil
	}

	raw, rerr := os.ReadFile(path)
	if rerr != nil {
		return "", fmt.Errorf("failed to read config file: %w", rerr)
	}
	return string(raw), nil
}

// run invokes the external highlighter and returns its output.
func run(path, syntax string) (string, error) {
	cmd := exec.Command(command,
		"--out-format", "html",
		"--syntax", syntax,
		"--inline-css",
		"--fragment",
		"--input", path,
	)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("highlight failed: %w", err)
	}
	return string(out), nil
}

// Package diag renders a caret-underlined source excerpt for a failing
// position. It is a CLI-facing convenience, not part of the compilation
// pipeline's contract.
package diag

import (
	"strings"

	"github.com/inkmarrow/bloggc/core/position"
)

// Snippet renders the source line containing pos, underlined with a caret
// at the failing column.
func Snippet(source string, pos position.Position) string {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}
	line := lines[pos.Line-1]
	col := pos.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	underline := strings.Repeat("-", col) + "^" + strings.Repeat("-", max(0, len(line)-col-1))
	return "\n>> " + line + "\n   " + underline
}

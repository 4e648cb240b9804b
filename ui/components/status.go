package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/Rorical/RoriSelect/internal/update"
	"github.com/Rorical/RoriSelect/ui/styles"
)

// RenderStatus draws the status line, named after the widget instance when
// prefix is set.
func RenderStatus(prefix, status string, keys update.KeyMap, width int) string {
	statusStyle := styles.StatusStyle(width)

	h := help.New()
	h.Width = width

	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix + ": ")
	}
	b.WriteString(status)
	if hints := h.ShortHelpView(keys.ShortHelp()); hints != "" {
		b.WriteString("  ")
		b.WriteString(hints)
	}
	return statusStyle.Render(b.String())
}

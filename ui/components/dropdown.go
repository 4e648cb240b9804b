package components

import (
	"strings"

	"github.com/Rorical/RoriSelect/internal/core"
	"github.com/Rorical/RoriSelect/internal/presentation"
	"github.com/Rorical/RoriSelect/ui/styles"
)

// RenderDropdown draws the control line and, when open, the menu.
func RenderDropdown(p presentation.Props, input string, spinner string, width int) string {
	var control strings.Builder

	switch {
	case p.InputValue != "":
		control.WriteString(input)
	case p.Value != nil:
		if p.Value.Avatar != nil {
			control.WriteString(RenderAvatar(*p.Value.Avatar) + " ")
		}
		control.WriteString(styles.ValueStyle().Render(p.Value.Label))
	case p.ShowPlaceholder:
		control.WriteString(styles.PlaceholderStyle().Render(p.Placeholder))
	}

	var indicators []string
	if p.Loading {
		indicators = append(indicators, spinner)
	}
	if p.Clearable {
		indicators = append(indicators, styles.IndicatorStyle().Render("✕"))
	}
	indicators = append(indicators, "▾")
	control.WriteString("  " + strings.Join(indicators, " "))

	out := styles.ControlStyle(width, p.DefaultStyle).Render(control.String())
	if p.MenuOpen {
		out += "\n" + RenderMenu(p, width)
	}
	return out
}

// RenderMenu draws the visible window of menu rows around the highlight.
func RenderMenu(p presentation.Props, width int) string {
	var rows []string
	highlighted := -1
	for i, opt := range p.Options {
		if opt.Highlighted {
			highlighted = i
		}
		rows = append(rows, RenderOption(opt))
	}
	if p.Create != nil {
		if p.Create.Highlighted {
			highlighted = len(rows)
		}
		rows = append(rows, styles.CreateStyle(p.Create.Highlighted).Render(p.Create.Label))
	}

	if len(rows) == 0 {
		message := "No options"
		if p.Phase == core.PhaseLoading || p.Loading {
			message = "Loading..."
		}
		rows = append(rows, styles.PlaceholderStyle().Render(message))
	}

	if p.MenuHeight > 0 && len(rows) > p.MenuHeight {
		start := 0
		if highlighted >= p.MenuHeight {
			start = highlighted - p.MenuHeight + 1
		}
		rows = rows[start : start+p.MenuHeight]
	}

	return styles.MenuStyle(width, p.DefaultStyle).Render(strings.Join(rows, "\n"))
}

func RenderOption(opt presentation.OptionProps) string {
	var b strings.Builder
	if opt.Avatar != nil {
		b.WriteString(RenderAvatar(*opt.Avatar) + " ")
	}
	b.WriteString(opt.Label)
	if opt.Secondary != "" {
		b.WriteString(styles.SecondaryStyle().Render(opt.Secondary))
	}
	return styles.OptionStyle(opt.Highlighted, opt.Selected).Render(b.String())
}

// RenderAvatar shows the image reference; terminals cannot draw the image
// itself, so the placeholder glyph stands in when there is none.
func RenderAvatar(a presentation.AvatarProps) string {
	if a.Placeholder {
		return styles.AvatarStyle(true).Render("(" + a.Glyph + ")")
	}
	return styles.AvatarStyle(false).Render("[" + a.URL + "]")
}

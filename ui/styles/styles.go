package styles

import "github.com/charmbracelet/lipgloss"

func ControlStyle(width int, defaultStyle bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Padding(0, 1).
		Width(max(width-4, 10))
	if defaultStyle {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))
	}
	return style
}

func MenuStyle(width int, defaultStyle bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Padding(0, 1).
		Width(max(width-4, 10))
	if defaultStyle {
		style = style.
			Border(lipgloss.NormalBorder(), false, true, true, true).
			BorderForeground(lipgloss.Color("240"))
	}
	return style
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
}

func ValueStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)
}

func OptionStyle(highlighted, selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if selected {
		style = style.Foreground(lipgloss.Color("214"))
	}
	if highlighted {
		style = style.Background(lipgloss.Color("237"))
	}
	return style
}

func SecondaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		PaddingLeft(1)
}

func AvatarStyle(placeholder bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true)
	if placeholder {
		style = style.Foreground(lipgloss.Color("240"))
	}
	return style
}

func CreateStyle(highlighted bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("72")).
		Italic(true).
		Padding(0, 1)
	if highlighted {
		style = style.Background(lipgloss.Color("237"))
	}
	return style
}

func IndicatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("166"))
}

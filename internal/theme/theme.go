// Package theme defines the colour themes used for terminal output.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps colour roles to concrete colours.
type Theme struct {
	Name    string
	Border  lipgloss.Color // table rules and borders
	Muted   lipgloss.Color // hints and secondary text
	Text    lipgloss.Color // primary content
	Accent  lipgloss.Color // titles and headers
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:    "flexoki-dark",
	Border:  lipgloss.Color("#575653"),
	Muted:   lipgloss.Color("#878580"),
	Text:    lipgloss.Color("#FFFCF0"),
	Accent:  lipgloss.Color("#3AA99F"),
	Success: lipgloss.Color("#879A39"),
	Warning: lipgloss.Color("#DA702C"),
	Error:   lipgloss.Color("#D14D41"),
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:    "catppuccin-mocha",
	Border:  lipgloss.Color("#7F849C"),
	Muted:   lipgloss.Color("#A6ADC8"),
	Text:    lipgloss.Color("#CDD6F4"),
	Accent:  lipgloss.Color("#89B4FA"),
	Success: lipgloss.Color("#A6E3A1"),
	Warning: lipgloss.Color("#FAB387"),
	Error:   lipgloss.Color("#F38BA8"),
}

// TokyoNight is a cool blue theme.
var TokyoNight = Theme{
	Name:    "tokyo-night",
	Border:  lipgloss.Color("#7982A9"),
	Muted:   lipgloss.Color("#A9B1D6"),
	Text:    lipgloss.Color("#C0CAF5"),
	Accent:  lipgloss.Color("#7AA2F7"),
	Success: lipgloss.Color("#9ECE6A"),
	Warning: lipgloss.Color("#FF9E64"),
	Error:   lipgloss.Color("#F7768E"),
}

// Terminal sticks to the ANSI 16 palette.
var Terminal = Theme{
	Name:    "terminal",
	Border:  lipgloss.Color("8"),
	Muted:   lipgloss.Color("7"),
	Text:    lipgloss.Color("15"),
	Accent:  lipgloss.Color("6"),
	Success: lipgloss.Color("2"),
	Warning: lipgloss.Color("3"),
	Error:   lipgloss.Color("1"),
}

// All lists the selectable themes, default first.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Names returns the names of all themes in All order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns the named theme, falling back to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

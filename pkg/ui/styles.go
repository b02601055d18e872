package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color tokens for the preview UI.
type Theme struct {
	Bg       lipgloss.Color
	BgSubtle lipgloss.Color
	Text     lipgloss.Color
	Subtext  lipgloss.Color
	Muted    lipgloss.Color
	Primary  lipgloss.Color
	Info     lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Danger   lipgloss.Color
}

// DarkTheme is the default Dracula-inspired palette.
func DarkTheme() Theme {
	return Theme{
		Bg:       lipgloss.Color("#282A36"),
		BgSubtle: lipgloss.Color("#44475A"),
		Text:     lipgloss.Color("#F8F8F2"),
		Subtext:  lipgloss.Color("#BFBFBF"),
		Muted:    lipgloss.Color("#6272A4"),
		Primary:  lipgloss.Color("#BD93F9"),
		Info:     lipgloss.Color("#8BE9FD"),
		Success:  lipgloss.Color("#50FA7B"),
		Warning:  lipgloss.Color("#FFB86C"),
		Danger:   lipgloss.Color("#FF5555"),
	}
}

// LightTheme is a high-contrast palette for light terminals.
func LightTheme() Theme {
	return Theme{
		Bg:       lipgloss.Color("#FAFAFA"),
		BgSubtle: lipgloss.Color("#E0E0E0"),
		Text:     lipgloss.Color("#1A1A2E"),
		Subtext:  lipgloss.Color("#44475A"),
		Muted:    lipgloss.Color("#8A8FA6"),
		Primary:  lipgloss.Color("#7C3AED"),
		Info:     lipgloss.Color("#0284C7"),
		Success:  lipgloss.Color("#16A34A"),
		Warning:  lipgloss.Color("#D97706"),
		Danger:   lipgloss.Color("#DC2626"),
	}
}

// ThemeByName returns the theme matching a config name, falling back to
// dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles precomputes the lipgloss styles derived from a theme.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	ActiveRow    lipgloss.Style
	InactiveRow  lipgloss.Style
	SegmentIdle  lipgloss.Style
	SegmentHot   lipgloss.Style
	Marker       lipgloss.Style
	StatusBar    lipgloss.Style
	StatusNotice lipgloss.Style
	Panel        lipgloss.Style
	Overlay      lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Header:       lipgloss.NewStyle().Bold(true).Foreground(t.Subtext),
		Label:        lipgloss.NewStyle().Foreground(t.Muted),
		Value:        lipgloss.NewStyle().Foreground(t.Text),
		ActiveRow:    lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		InactiveRow:  lipgloss.NewStyle().Foreground(t.Subtext),
		SegmentIdle:  lipgloss.NewStyle().Foreground(t.Text).Background(t.BgSubtle),
		SegmentHot:   lipgloss.NewStyle().Bold(true).Foreground(t.Bg).Background(t.Primary),
		Marker:       lipgloss.NewStyle().Bold(true).Foreground(t.Danger),
		StatusBar:    lipgloss.NewStyle().Foreground(t.Muted),
		StatusNotice: lipgloss.NewStyle().Foreground(t.Warning),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BgSubtle).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(1, 2),
	}
}

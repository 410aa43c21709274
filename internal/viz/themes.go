package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a named hue pairing: the wave variant flips between the two
// hues on the sign of the amplitude, the rain variant uses its own base hue.
type Theme struct {
	Name        string
	HuePositive float64
	HueNegative float64
	RainHue     float64
	Accent      lipgloss.Color
}

var Themes = []Theme{
	{
		Name:        "aurora",
		HuePositive: 197, // cyan crest
		HueNegative: 330, // magenta trough
		RainHue:     130,
		Accent:      lipgloss.Color("86"),
	},
	{
		Name:        "ember",
		HuePositive: 28,
		HueNegative: 348,
		RainHue:     18,
		Accent:      lipgloss.Color("208"),
	},
	{
		Name:        "phosphor",
		HuePositive: 130,
		HueNegative: 90,
		RainHue:     130,
		Accent:      lipgloss.Color("82"),
	},
	{
		Name:        "violet",
		HuePositive: 265,
		HueNegative: 190,
		RainHue:     280,
		Accent:      lipgloss.Color("213"),
	},
}

// ThemeIndex resolves a theme name to its position in Themes, defaulting
// to the first theme for unknown names.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// ThemeNames lists the available theme names in order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

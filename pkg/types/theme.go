package types

import "strings"

// Theme represents the colour scheme selected for a session.
type Theme int

const (
	// ThemeDark is the theme every session starts with unless configured otherwise
	ThemeDark Theme = iota
	// ThemeLight is a light background theme
	ThemeLight
	// ThemeMatrix is green-on-black
	ThemeMatrix
	// ThemeDracula is the purple dracula palette
	ThemeDracula
)

var themeNames = map[Theme]string{
	ThemeDark:    "dark",
	ThemeLight:   "light",
	ThemeMatrix:  "matrix",
	ThemeDracula: "dracula",
}

var themeDescriptions = map[Theme]string{
	ThemeDark:    "default dark theme",
	ThemeLight:   "light theme for bright rooms",
	ThemeMatrix:  "follow the white rabbit",
	ThemeDracula: "purple vampire vibes",
}

// Themes returns all themes in display order.
func Themes() []Theme {
	return []Theme{ThemeDark, ThemeLight, ThemeMatrix, ThemeDracula}
}

// String returns the keyword used to select the theme.
func (t Theme) String() string {
	if name, ok := themeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Description returns a one-line description of the theme.
func (t Theme) Description() string {
	return themeDescriptions[t]
}

// ParseTheme looks up a theme by its keyword. Matching is exact and case-sensitive.
func ParseTheme(name string) (Theme, bool) {
	for t, n := range themeNames {
		if n == name {
			return t, true
		}
	}
	return ThemeDark, false
}

// ThemeKeywords returns the theme keywords joined for messages.
func ThemeKeywords() string {
	names := make([]string, 0, len(themeNames))
	for _, t := range Themes() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

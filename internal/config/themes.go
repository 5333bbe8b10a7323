package config

import "webterm/pkg/types"

// Palette holds the colours of one theme as lipgloss colour strings.
type Palette struct {
	Background string
	Foreground string
	Prompt     string
	Directory  string
	File       string
	Muted      string
	Error      string
	Border     string
}

var palettes = map[types.Theme]Palette{
	types.ThemeDark: {
		Background: "#1E1E2E",
		Foreground: "#CDD6F4",
		Prompt:     "#89B4FA",
		Directory:  "#74C7EC",
		File:       "#CDD6F4",
		Muted:      "#6C7086",
		Error:      "#F38BA8",
		Border:     "#45475A",
	},
	types.ThemeLight: {
		Background: "#EFF1F5",
		Foreground: "#4C4F69",
		Prompt:     "#1E66F5",
		Directory:  "#209FB5",
		File:       "#4C4F69",
		Muted:      "#9CA0B0",
		Error:      "#D20F39",
		Border:     "#BCC0CC",
	},
	types.ThemeMatrix: {
		Background: "#000000",
		Foreground: "#00FF41",
		Prompt:     "#00FF41",
		Directory:  "#008F11",
		File:       "#00FF41",
		Muted:      "#003B00",
		Error:      "#FF3131",
		Border:     "#008F11",
	},
	types.ThemeDracula: {
		Background: "#282A36",
		Foreground: "#F8F8F2",
		Prompt:     "#BD93F9",
		Directory:  "#8BE9FD",
		File:       "#F8F8F2",
		Muted:      "#6272A4",
		Error:      "#FF5555",
		Border:     "#44475A",
	},
}

// PaletteFor returns the palette of t
func PaletteFor(t types.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[types.ThemeDark]
}

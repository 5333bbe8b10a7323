//go:build !nogui

package gui

import (
	"image/color"

	"webterm/internal/config"
	"webterm/internal/log"
	"webterm/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"
)

// paletteTheme paints fyne's default theme with a webterm palette
type paletteTheme struct {
	palette config.Palette
	variant fyne.ThemeVariant
}

func newPaletteTheme(t types.Theme) *paletteTheme {
	variant := theme.VariantDark
	if t == types.ThemeLight {
		variant = theme.VariantLight
	}
	return &paletteTheme{palette: config.PaletteFor(t), variant: variant}
}

func (p *paletteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	var hex string
	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		hex = p.palette.Background
	case theme.ColorNameForeground:
		hex = p.palette.Foreground
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		hex = p.palette.Prompt
	case theme.ColorNameError:
		hex = p.palette.Error
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		hex = p.palette.Muted
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		hex = p.palette.Border
	default:
		return theme.DefaultTheme().Color(name, p.variant)
	}

	c, err := hexColor(hex)
	if err != nil {
		log.LogWithError(err).With(log.F("color", string(name)), log.F("value", hex)).Warn("invalid palette colour")
		return theme.DefaultTheme().Color(name, p.variant)
	}
	return c
}

func (p *paletteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (p *paletteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (p *paletteTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// hexColor parses a "#RRGGBB" or "#RGB" palette entry into an opaque colour.
func hexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

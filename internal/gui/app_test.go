//go:build !nogui

package gui

import (
	"image/color"
	"testing"

	"webterm/internal/catalog"
	"webterm/internal/session"
	"webterm/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, opts session.Options) *App {
	t.Helper()
	a := NewApp(test.NewApp(), session.New(catalog.Default(), opts))
	t.Cleanup(a.Window().Close)
	return a
}

func submitTyped(a *App, line string) {
	test.Type(a.input, line)
	a.input.OnSubmitted(a.input.Text)
}

func TestWindowLayout(t *testing.T) {
	a := newTestApp(t, session.DefaultOptions())

	_, ok := a.Window().Content().(*fyne.Container)
	require.True(t, ok)
	assert.Equal(t, "guest@webterm:/$ ", a.prompt.Text)
	assert.Equal(t, 0, a.Entries())
	assert.True(t, Available())
}

func TestSubmitAppendsEntry(t *testing.T) {
	a := newTestApp(t, session.DefaultOptions())

	submitTyped(a, "cd about")
	assert.Equal(t, "", a.input.Text)
	assert.Equal(t, 1, a.Entries())
	assert.Equal(t, "guest@webterm:/about/$ ", a.prompt.Text)

	submitTyped(a, "nope")
	require.Equal(t, 2, a.Entries())
	box := a.output.Objects[2].(*fyne.Container)
	require.Len(t, box.Objects, 2)
	out := box.Objects[1].(*widget.Label)
	assert.Equal(t, "command not found: nope", out.Text)
	assert.Equal(t, widget.DangerImportance, out.Importance)
}

func TestMarkdownUsesRichText(t *testing.T) {
	a := newTestApp(t, session.DefaultOptions())
	a.Submit("cd about")
	a.Submit("cat skills.md")

	box := a.output.Objects[2].(*fyne.Container)
	_, ok := box.Objects[1].(*widget.RichText)
	assert.True(t, ok)
}

func TestClearEmptiesOutput(t *testing.T) {
	a := newTestApp(t, session.DefaultOptions())
	a.Submit("ls")
	a.Submit("pwd")
	require.Equal(t, 2, a.Entries())

	a.Submit("clear")
	assert.Equal(t, 0, a.Entries())
}

func TestHistoryLimitDropsOldEntries(t *testing.T) {
	opts := session.DefaultOptions()
	opts.HistoryLimit = 2
	a := newTestApp(t, opts)

	a.Submit("pwd")
	a.Submit("cd work")
	a.Submit("pwd")
	assert.Equal(t, 2, a.Entries())

	last := a.output.Objects[2].(*fyne.Container).Objects[0].(*widget.Label)
	assert.Equal(t, "guest@webterm:/work/$ pwd", last.Text)
}

func TestThemeSwitch(t *testing.T) {
	a := newTestApp(t, session.DefaultOptions())
	a.Submit("theme light")
	assert.Equal(t, types.ThemeLight, a.theme)

	want, err := hexColor("#EFF1F5")
	require.NoError(t, err)
	bg := a.fyneApp.Settings().Theme().Color(theme.ColorNameBackground, theme.VariantLight)
	assert.Equal(t, want, bg)
}

func TestHexColor(t *testing.T) {
	c, err := hexColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, c)

	short, err := hexColor("#0f0")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, short)

	_, err = hexColor("garbage")
	assert.Error(t, err)
}

func TestPaletteThemeFallsBackOnBadColour(t *testing.T) {
	p := newPaletteTheme(types.ThemeDark)
	p.palette.Error = "not-a-colour"

	got := p.Color(theme.ColorNameError, theme.VariantDark)
	assert.Equal(t, theme.DefaultTheme().Color(theme.ColorNameError, theme.VariantDark), got)

	fg, err := hexColor(p.palette.Foreground)
	require.NoError(t, err)
	assert.Equal(t, fg, p.Color(theme.ColorNameForeground, theme.VariantDark))
}

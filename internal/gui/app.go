//go:build !nogui

// Package gui is the desktop front end of a session, built with fyne.
package gui

import (
	"strings"

	"webterm/internal/history"
	"webterm/internal/log"
	"webterm/internal/render"
	"webterm/internal/session"
	"webterm/internal/shell"
	"webterm/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const banner = "welcome to webterm. type help to get started."

var _ Interface = (*App)(nil)

// App is the GUI application
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	session *session.Session
	theme   types.Theme

	prompt *widget.Label
	input  *widget.Entry
	output *fyne.Container
	scroll *container.Scroll
}

// NewApp creates the window for sess on a fyne application
func NewApp(fyneApp fyne.App, sess *session.Session) *App {
	a := &App{
		fyneApp: fyneApp,
		session: sess,
	}
	a.window = fyneApp.NewWindow("webterm")
	a.window.Resize(fyne.NewSize(900, 600))
	a.setupMainWindow()
	a.applyTheme()
	return a
}

// Run creates the application for sess and blocks until the window closes
func Run(sess *session.Session) error {
	NewApp(app.NewWithID("io.github.webterm"), sess).Run()
	return nil
}

// Available reports whether this build includes the GUI
func Available() bool {
	return true
}

// Run shows the window and runs the event loop
func (a *App) Run() {
	a.window.ShowAndRun()
}

// Window returns the main window
func (a *App) Window() fyne.Window {
	return a.window
}

func (a *App) setupMainWindow() {
	a.prompt = widget.NewLabel(a.session.Prompt())
	a.prompt.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}

	a.input = widget.NewEntry()
	a.input.TextStyle = fyne.TextStyle{Monospace: true}
	a.input.SetPlaceHolder("type a command")
	a.input.OnSubmitted = func(line string) {
		a.input.SetText("")
		a.Submit(line)
	}

	a.output = container.NewVBox()
	a.scroll = container.NewVScroll(a.output)
	a.rebuild()

	inputRow := container.NewBorder(nil, nil, a.prompt, nil, a.input)
	a.window.SetContent(container.NewBorder(nil, inputRow, nil, nil, a.scroll))
	a.window.Canvas().Focus(a.input)
}

// Submit runs line through the session and updates the window
func (a *App) Submit(line string) {
	prompt := a.session.Prompt()
	entry, cleared := a.session.Submit(line)

	if cleared {
		a.rebuild()
	} else if a.session.HistoryLen() < len(a.output.Objects) {
		// the history limit dropped old entries
		a.rebuild()
		a.output.Objects[len(a.output.Objects)-1] = a.entryObject(prompt, entry)
		a.output.Refresh()
	} else {
		a.output.Add(a.entryObject(prompt, entry))
	}

	if a.session.Theme() != a.theme {
		a.applyTheme()
	}
	a.prompt.SetText(a.session.Prompt())
	a.scroll.ScrollToBottom()
}

// ShowError shows err in a dialog
func (a *App) ShowError(title string, err error) {
	log.LogWithError(err).Error(title)
	dialog.ShowError(err, a.window)
}

// Entries returns the number of history entries on screen
func (a *App) Entries() int {
	return len(a.output.Objects) - 1
}

// rebuild redraws the output from the retained history. Entries submitted
// before the rebuild are shown under a generic prompt.
func (a *App) rebuild() {
	welcome := widget.NewLabel(banner)
	welcome.Importance = widget.LowImportance

	objects := []fyne.CanvasObject{welcome}
	for _, e := range a.session.History() {
		objects = append(objects, a.entryObject("$ ", e))
	}
	a.output.Objects = objects
	a.output.Refresh()
}

func (a *App) entryObject(prompt string, e history.Entry) fyne.CanvasObject {
	request := widget.NewLabel(prompt + e.Request)
	request.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	request.Importance = widget.HighImportance

	r := e.Result
	switch {
	case !r.OK():
		out := widget.NewLabel(r.Err.Error())
		out.TextStyle = fyne.TextStyle{Monospace: true}
		out.Importance = widget.DangerImportance
		return container.NewVBox(request, out)
	case r.Content.Format == shell.FormatMarkdown:
		return container.NewVBox(request, widget.NewRichTextFromMarkdown(r.Content.Text))
	}

	text := render.Result(r)
	if strings.TrimSpace(text) == "" {
		return container.NewVBox(request)
	}
	out := widget.NewLabel(text)
	out.TextStyle = fyne.TextStyle{Monospace: true}
	out.Wrapping = fyne.TextWrapWord
	return container.NewVBox(request, out)
}

func (a *App) applyTheme() {
	a.theme = a.session.Theme()
	a.fyneApp.Settings().SetTheme(newPaletteTheme(a.theme))
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"transformer-calc/internal/fault"
)

// Screen titles
const (
	titleTables = "Transformer Tables"
	titleAbout  = "About"
)

// Navigator opens screens either as pages replacing the home page or as
// dialogs on top of it.
type Navigator struct {
	win     fyne.Window
	home    fyne.CanvasObject
	style   string
	current string
}

// NewNavigator returns a navigator showing home in win.
func NewNavigator(win fyne.Window, home fyne.CanvasObject, style string) *Navigator {
	n := &Navigator{win: win, home: home, style: style}
	n.Home()
	return n
}

// SetStyle switches between NavPage and NavDialog. The home page is shown.
func (n *Navigator) SetStyle(style string) {
	n.style = style
	n.Home()
}

// Style returns the navigation style.
func (n *Navigator) Style() string {
	return n.style
}

// Current returns the title of the open page, or "" on the home page.
// Dialogs do not change it.
func (n *Navigator) Current() string {
	return n.current
}

// Home shows the home page.
func (n *Navigator) Home() {
	n.current = ""
	n.win.SetContent(n.home)
}

// Show opens content under title.
func (n *Navigator) Show(title string, content fyne.CanvasObject) {
	if n.style == NavDialog {
		d := dialog.NewCustom(title, "Close", content, n.win)
		d.Resize(fyne.NewSize(WindowWidth*0.9, WindowHeight*0.9))
		d.Show()
		return
	}

	back := widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), n.Home)
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	top := container.NewVBox(container.NewHBox(back, heading), widget.NewSeparator())

	n.current = title
	n.win.SetContent(container.NewBorder(top, nil, nil, nil, content))
}

type mainWindow struct {
	app      fyne.App
	win      fyne.Window
	settings Settings

	simple   *CalcForm
	detailed *CalcForm
	tables   *TablesView
	nav      *Navigator
}

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, s Settings) fyne.Window {
	return newMainWindow(app, s).win
}

func newMainWindow(app fyne.App, s Settings) *mainWindow {
	ApplyTheme(app, s.Theme)

	win := app.NewWindow(appTitle)
	win.Resize(NewWindowSize())

	mw := &mainWindow{
		app:      app,
		win:      win,
		settings: s,
		simple:   NewCalcForm(fault.Simple, win),
		detailed: NewCalcForm(fault.Detailed, win),
		tables:   NewTablesView(win),
	}

	prefs := app.Preferences()
	mw.simple.LoadPreferences(prefs)
	mw.detailed.LoadPreferences(prefs)

	mw.tables.OnUse = func(mode fault.Mode, in fault.Input) {
		f := mw.form(mode)
		f.SetInput(in)
		mw.nav.Show(mode.Title(), f.Container())
	}

	mw.nav = NewNavigator(win, mw.homePage(), s.Nav)
	win.SetMainMenu(mw.mainMenu())

	win.SetCloseIntercept(func() {
		mw.simple.SavePreferences(prefs)
		mw.detailed.SavePreferences(prefs)
		mw.settings.Save(prefs)
		win.Close()
	})

	return mw
}

func (mw *mainWindow) form(mode fault.Mode) *CalcForm {
	if mode == fault.Detailed {
		return mw.detailed
	}
	return mw.simple
}

func (mw *mainWindow) showForm(mode fault.Mode) {
	mw.nav.Show(mode.Title(), mw.form(mode).Container())
}

func (mw *mainWindow) showTables() {
	mw.nav.Show(titleTables, mw.tables.Container())
}

func (mw *mainWindow) showAbout() {
	mw.nav.Show(titleAbout, NewAboutView())
}

func (mw *mainWindow) homePage() fyne.CanvasObject {
	title := canvas.NewText(appTitle, accentColor)
	title.TextSize = 28
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	subtitle := widget.NewLabelWithStyle("Professional Power System Analysis Tool", fyne.TextAlignCenter, fyne.TextStyle{})
	version := widget.NewLabelWithStyle("Version "+appVersion, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	prompt := widget.NewLabelWithStyle("Select Calculation Type", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	buttons := container.NewHBox(
		layout.NewSpacer(),
		NewMenuButton(fault.Simple.Title(), "Fault current from the kVA rating", func() { mw.showForm(fault.Simple) }),
		NewMenuButton(fault.Detailed.Title(), "Earth fault loop impedance", func() { mw.showForm(fault.Detailed) }),
		NewMenuButton(titleTables, "Standard transformer ratings", mw.showTables),
		layout.NewSpacer(),
	)

	return container.NewVBox(
		layout.NewSpacer(),
		title, subtitle, version,
		layout.NewSpacer(),
		prompt, buttons,
		layout.NewSpacer(),
	)
}

func (mw *mainWindow) mainMenu() *fyne.MainMenu {
	dark := fyne.NewMenuItem("Dark Theme", nil)
	light := fyne.NewMenuItem("Light Theme", nil)
	pages := fyne.NewMenuItem("Open Screens as Pages", nil)
	dialogs := fyne.NewMenuItem("Open Screens as Dialogs", nil)

	view := fyne.NewMenu("View", dark, light, fyne.NewMenuItemSeparator(), pages, dialogs)
	refresh := func() {
		dark.Checked = mw.settings.Theme == ThemeDark
		light.Checked = mw.settings.Theme == ThemeLight
		pages.Checked = mw.settings.Nav == NavPage
		dialogs.Checked = mw.settings.Nav == NavDialog
		view.Refresh()
	}
	dark.Action = func() { mw.setTheme(ThemeDark); refresh() }
	light.Action = func() { mw.setTheme(ThemeLight); refresh() }
	pages.Action = func() { mw.setNav(NavPage); refresh() }
	dialogs.Action = func() { mw.setNav(NavDialog); refresh() }
	refresh()

	calc := fyne.NewMenu("Calculate",
		fyne.NewMenuItem("Home", mw.nav.Home),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(fault.Simple.Title(), func() { mw.showForm(fault.Simple) }),
		fyne.NewMenuItem(fault.Detailed.Title(), func() { mw.showForm(fault.Detailed) }),
		fyne.NewMenuItem(titleTables, mw.showTables),
	)
	help := fyne.NewMenu("Help", fyne.NewMenuItem(titleAbout, mw.showAbout))

	return fyne.NewMainMenu(calc, view, help)
}

func (mw *mainWindow) setTheme(name string) {
	mw.settings.Theme = name
	ApplyTheme(mw.app, name)
	mw.settings.Save(mw.app.Preferences())
}

func (mw *mainWindow) setNav(style string) {
	mw.settings.Nav = style
	mw.nav.SetStyle(style)
	mw.settings.Save(mw.app.Preferences())
}

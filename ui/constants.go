package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Window dimensions
const (
	WindowWidth  = 900
	WindowHeight = 720
)

// OutputView dimensions
const (
	OutputViewMinWidth  = 480
	OutputViewMinHeight = 260
)

// Menu buttons on the home page
const (
	MenuButtonWidth  = 240
	MenuButtonHeight = 120
)

const appVersion = "1.0.0"

var (
	accentColor  = color.NRGBA{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff}
	panelColor   = color.NRGBA{R: 0x34, G: 0x49, B: 0x5e, A: 0xff}
	lightText    = color.NRGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff}
	disabledFill = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	disabledText = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewOutputViewMinSize returns the minimum size for the output view
func NewOutputViewMinSize() fyne.Size {
	return fyne.NewSize(OutputViewMinWidth, OutputViewMinHeight)
}

// NewMenuButtonSize returns the size of a home page button
func NewMenuButtonSize() fyne.Size {
	return fyne.NewSize(MenuButtonWidth, MenuButtonHeight)
}

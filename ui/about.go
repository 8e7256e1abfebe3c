package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Transformer & Short Circuit Calculator"

var features = []string{
	"Simple and Detailed Calculations",
	"Comprehensive Transformer Rating Tables",
	"Fault Current Analysis",
	"Loop Impedance Calculations",
	"Primary and Secondary Current Analysis",
	"Industry Standard Formulas (IEEE/IEC)",
}

// NewAboutView returns the title, version and feature list.
func NewAboutView() fyne.CanvasObject {
	title := canvas.NewText(appTitle, accentColor)
	title.TextSize = 22
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	version := widget.NewLabelWithStyle("Version "+appVersion, fyne.TextAlignCenter, fyne.TextStyle{})

	list := container.NewVBox(widget.NewLabel("Professional Transformer and Short Circuit Calculator"))
	list.Add(widget.NewLabelWithStyle("Features:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, f := range features {
		list.Add(widget.NewLabel("• " + f))
	}

	return container.NewVBox(title, version, widget.NewSeparator(), list)
}

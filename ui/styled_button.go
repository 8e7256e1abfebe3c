package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// StyledButton is a button with custom colours and an optional caption
// line under the label. Home page buttons use a fixed minimum size.
type StyledButton struct {
	widget.Button
	Caption string

	fill, ink color.Color
	minSize   fyne.Size
}

// NewStyledButton creates a button with custom colors.
func NewStyledButton(label string, tapped func(), fill, ink color.Color) *StyledButton {
	b := &StyledButton{fill: fill, ink: ink}
	b.Text = label
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

// NewMenuButton creates a large outlined home page button.
func NewMenuButton(label, caption string, tapped func()) *StyledButton {
	b := NewStyledButton(label, tapped, panelColor, lightText)
	b.Caption = caption
	b.minSize = NewMenuButtonSize()
	return b
}

// CreateRenderer returns a custom renderer.
func (b *StyledButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	r := &styledBtnRenderer{
		btn:     b,
		bg:      canvas.NewRectangle(b.fill),
		title:   canvas.NewText(b.Text, b.ink),
		caption: canvas.NewText(b.Caption, b.ink),
	}
	r.bg.CornerRadius = theme.InputRadiusSize()
	r.title.TextStyle = fyne.TextStyle{Bold: true}
	r.caption.TextSize = theme.CaptionTextSize()
	r.Refresh()
	return r
}

type styledBtnRenderer struct {
	btn            *StyledButton
	bg             *canvas.Rectangle
	title, caption *canvas.Text
}

func (r *styledBtnRenderer) lines() []*canvas.Text {
	if r.btn.Caption == "" {
		return []*canvas.Text{r.title}
	}
	return []*canvas.Text{r.title, r.caption}
}

// Layout centres the text lines as one block.
func (r *styledBtnRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	var h float32
	for _, t := range r.lines() {
		h += t.MinSize().Height
	}
	y := (size.Height - h) / 2
	for _, t := range r.lines() {
		m := t.MinSize()
		t.Move(fyne.NewPos((size.Width-m.Width)/2, y))
		t.Resize(m)
		y += m.Height
	}
}

func (r *styledBtnRenderer) MinSize() fyne.Size {
	var w, h float32
	for _, t := range r.lines() {
		m := t.MinSize()
		w = fyne.Max(w, m.Width)
		h += m.Height
	}
	pad := theme.InnerPadding()
	return fyne.NewSize(w+pad*4, h+pad*2).Max(r.btn.minSize)
}

func (r *styledBtnRenderer) Refresh() {
	r.title.Text = r.btn.Text
	r.caption.Text = r.btn.Caption

	fill, ink := r.btn.fill, r.btn.ink
	if r.btn.Disabled() {
		fill, ink = disabledFill, disabledText
	}
	r.bg.FillColor = fill
	r.title.Color = ink
	r.caption.Color = ink

	if r.btn.minSize != (fyne.Size{}) {
		r.bg.StrokeColor = accentColor
		r.bg.StrokeWidth = 2
	}

	r.bg.Refresh()
	r.title.Refresh()
	r.caption.Refresh()
}

func (r *styledBtnRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.title, r.caption}
}

func (r *styledBtnRenderer) Destroy() {}

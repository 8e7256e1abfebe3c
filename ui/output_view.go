package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// OutputView shows a calculation report. The text can be selected and
// copied but not edited.
type OutputView struct {
	text      *readOnlyEntry
	scrollBox *container.Scroll
}

// NewOutputView creates a new scrollable output view.
func NewOutputView() *OutputView {
	ov := &OutputView{text: newReadOnlyEntry()}
	ov.text.SetPlaceHolder("Results will appear here.")

	ov.scrollBox = container.NewScroll(ov.text)
	ov.scrollBox.SetMinSize(NewOutputViewMinSize())

	return ov
}

// Container returns the output view's container.
func (ov *OutputView) Container() *container.Scroll {
	return ov.scrollBox
}

// SetText replaces the report and scrolls back to the top.
func (ov *OutputView) SetText(s string) {
	ov.text.SetText(s)
	ov.scrollBox.ScrollToTop()
}

// Text returns the report currently shown.
func (ov *OutputView) Text() string {
	return ov.text.Text
}

// Clear empties the output view.
func (ov *OutputView) Clear() {
	ov.text.SetText("")
}

// readOnlyEntry renders the fault report in monospace so the aligned
// columns line up. Users may select and copy figures out of it; typing,
// pasting and cutting are ignored.
type readOnlyEntry struct {
	widget.Entry
}

func newReadOnlyEntry() *readOnlyEntry {
	e := &readOnlyEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	return e
}

func (e *readOnlyEntry) TypedRune(_ rune) {}

// TypedKey drops keys that would change the report and passes cursor
// movement through.
func (e *readOnlyEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyBackspace, fyne.KeyDelete, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyTab:
		return
	}
	e.Entry.TypedKey(ev)
}

// TypedShortcut keeps copy and select-all.
func (e *readOnlyEntry) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll, *desktop.CustomShortcut:
		e.Entry.TypedShortcut(s)
	}
}

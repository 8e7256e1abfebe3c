package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestOutputView_ReportIsReadOnly(t *testing.T) {
	test.NewTempApp(t)
	ov := NewOutputView()
	ov.SetText("Isc = 24.1 kA")

	clip := test.NewClipboard()
	clip.SetContent("pasted")

	test.Type(ov.text, "x")
	ov.text.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	ov.text.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	ov.text.TypedShortcut(&fyne.ShortcutSelectAll{})
	ov.text.TypedShortcut(&fyne.ShortcutPaste{Clipboard: clip})
	ov.text.TypedShortcut(&fyne.ShortcutCut{Clipboard: clip})

	if got := ov.Text(); got != "Isc = 24.1 kA" {
		t.Errorf("report text = %q after edits, want it unchanged", got)
	}
}

func TestOutputView_Clear(t *testing.T) {
	test.NewTempApp(t)
	ov := NewOutputView()
	ov.SetText("report")
	ov.Clear()

	if got := ov.Text(); got != "" {
		t.Errorf("Text() after Clear = %q, want empty", got)
	}
}

package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"transformer-calc/internal/export"
	"transformer-calc/internal/fault"
	"transformer-calc/internal/format"
	"transformer-calc/internal/logging"
)

// CalcForm holds the input fields, Calculate button and report for one
// calculation mode.
type CalcForm struct {
	mode    fault.Mode
	win     fyne.Window
	fields  []fault.Field
	entries map[string]*widget.Entry

	calcBtn  *StyledButton
	clearBtn *widget.Button
	txtBtn   *widget.Button
	pdfBtn   *widget.Button
	output   *OutputView

	result *fault.Result
	form   *fyne.Container
}

// NewCalcForm creates the form for mode. win parents the save dialogs.
func NewCalcForm(mode fault.Mode, win fyne.Window) *CalcForm {
	cf := &CalcForm{
		mode:    mode,
		win:     win,
		fields:  mode.Fields(),
		entries: make(map[string]*widget.Entry),
		output:  NewOutputView(),
	}

	items := make([]*widget.FormItem, 0, len(cf.fields))
	for _, f := range cf.fields {
		e := widget.NewEntry()
		e.SetPlaceHolder(f.Placeholder)
		e.OnSubmitted = func(string) { cf.Calculate() }
		cf.entries[f.Key] = e
		item := widget.NewFormItem(f.Label, e)
		item.HintText = f.Unit
		items = append(items, item)
	}

	cf.calcBtn = NewStyledButton("Calculate", cf.Calculate, accentColor, lightText)
	cf.clearBtn = widget.NewButton("Clear", cf.Clear)
	cf.txtBtn = widget.NewButton("Save TXT", func() { cf.save(".txt") })
	cf.pdfBtn = widget.NewButton("Save PDF", func() { cf.save(".pdf") })
	cf.txtBtn.Disable()
	cf.pdfBtn.Disable()

	title := widget.NewLabelWithStyle(mode.Title(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	inputs := widget.NewCard("Input Parameters", "", widget.NewForm(items...))
	buttons := container.NewHBox(cf.calcBtn, cf.clearBtn, cf.txtBtn, cf.pdfBtn)

	cf.form = container.NewBorder(
		container.NewVBox(title, inputs, buttons),
		nil, nil, nil,
		cf.output.Container(),
	)
	return cf
}

// Container returns the form's Fyne container.
func (cf *CalcForm) Container() *fyne.Container {
	return cf.form
}

// Mode returns the calculation mode of the form.
func (cf *CalcForm) Mode() fault.Mode {
	return cf.mode
}

// Input returns the raw text of every field.
func (cf *CalcForm) Input() fault.Input {
	in := make(fault.Input, len(cf.entries))
	for k, e := range cf.entries {
		in[k] = e.Text
	}
	return in
}

// SetInput fills the fields present in in and leaves the others untouched.
func (cf *CalcForm) SetInput(in fault.Input) {
	for k, v := range in {
		if e, ok := cf.entries[k]; ok {
			e.SetText(v)
		}
	}
}

// Calculate runs the engine on the current field text and shows either the
// report or the error message.
func (cf *CalcForm) Calculate() {
	log := logging.New("ui")

	res, err := fault.Compute(cf.mode, cf.Input())
	if err != nil {
		log.Debug("calculation rejected", "mode", cf.mode, "err", err)
		cf.result = nil
		cf.output.SetText(format.FormatError(err))
		cf.txtBtn.Disable()
		cf.pdfBtn.Disable()
		return
	}

	cf.result = &res
	cf.output.SetText(format.FormatResult(res))
	cf.txtBtn.Enable()
	cf.pdfBtn.Enable()
}

// Result returns the last successful result, if any.
func (cf *CalcForm) Result() (fault.Result, bool) {
	if cf.result == nil {
		return fault.Result{}, false
	}
	return *cf.result, true
}

// Clear empties every field and the report.
func (cf *CalcForm) Clear() {
	for _, e := range cf.entries {
		e.SetText("")
	}
	cf.result = nil
	cf.output.Clear()
	cf.txtBtn.Disable()
	cf.pdfBtn.Disable()
}

// Report returns the text currently shown in the output view.
func (cf *CalcForm) Report() string {
	return cf.output.Text()
}

// LoadPreferences restores field text from persistent preferences.
func (cf *CalcForm) LoadPreferences(prefs fyne.Preferences) {
	for k, e := range cf.entries {
		if v := prefs.String(cf.prefKey(k)); v != "" {
			e.SetText(v)
		}
	}
}

// SavePreferences persists field text to preferences.
func (cf *CalcForm) SavePreferences(prefs fyne.Preferences) {
	for k, e := range cf.entries {
		prefs.SetString(cf.prefKey(k), e.Text)
	}
}

func (cf *CalcForm) prefKey(field string) string {
	return "calc." + cf.mode.String() + "." + field
}

func (cf *CalcForm) save(ext string) {
	res, ok := cf.Result()
	if !ok {
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := writeReport(path, res); err != nil {
			logging.New("ui").Warn("report not saved", "path", path, "err", err)
			dialog.ShowError(err, cf.win)
			return
		}
		logging.New("ui").Info("report saved", "path", path)
		dialog.ShowInformation("Saved", fmt.Sprintf("Report saved to %s", path), cf.win)
	}, cf.win)
	d.SetFileName(export.BuildPath("fault_"+cf.mode.String(), "", ext, time.Now()))
	d.Show()
}

// writeReport picks the report format from the file extension.
func writeReport(path string, res fault.Result) error {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return export.WriteResultPDF(path, res, time.Now())
	}
	return export.WriteTXT(path, res)
}

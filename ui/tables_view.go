package ui

import (
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"transformer-calc/internal/cli"
	"transformer-calc/internal/export"
	"transformer-calc/internal/fault"
	"transformer-calc/internal/logging"
	"transformer-calc/internal/ratings"
)

// ratingsTable is one tab of the tables view.
type ratingsTable struct {
	name     ratings.TableName
	info     ratings.Info
	rows     [][]string
	records  []ratings.Record
	selected int // index into records, -1 when none
	table    *widget.Table
}

func newRatingsTable(name ratings.TableName) *ratingsTable {
	info, _ := ratings.TableInfo(name)
	rt := &ratingsTable{
		name:     name,
		info:     info,
		records:  ratings.Category(name),
		selected: -1,
	}
	for _, r := range rt.records {
		rt.rows = append(rt.rows, r.Cells())
	}

	rt.table = widget.NewTable(rt.tableSize, rt.createCell, rt.updateCell)
	for i := range info.Headers {
		rt.table.SetColumnWidth(i, 130)
	}
	return rt
}

func (rt *ratingsTable) tableSize() (rows int, cols int) {
	return len(rt.rows) + 1, len(rt.info.Headers) // +1 for header
}

func (rt *ratingsTable) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (rt *ratingsTable) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.SetText(rt.info.Headers[id.Col])
		return
	}

	idx := id.Row - 1
	if idx >= len(rt.rows) || id.Col >= len(rt.rows[idx]) {
		label.SetText("")
		return
	}
	label.TextStyle = fyne.TextStyle{}
	label.SetText(rt.rows[idx][id.Col])
}

// TablesView shows every rating table in its own tab. Distribution and power
// transformer rows can be sent to a calculation form.
type TablesView struct {
	win    fyne.Window
	tables []*ratingsTable
	tabs   *container.AppTabs

	simpleBtn   *widget.Button
	detailedBtn *widget.Button
	status      *widget.Label

	// OnUse receives the inputs built from the selected row.
	OnUse func(mode fault.Mode, in fault.Input)

	container *fyne.Container
}

// NewTablesView creates the tabbed rating tables. win parents the export
// dialogs.
func NewTablesView(win fyne.Window) *TablesView {
	tv := &TablesView{win: win, status: widget.NewLabel("")}

	items := make([]*container.TabItem, 0, len(ratings.Names()))
	for _, name := range ratings.Names() {
		rt := newRatingsTable(name)
		rt.table.OnSelected = func(id widget.TableCellID) { tv.selectRow(rt, id.Row) }
		tv.tables = append(tv.tables, rt)

		title := widget.NewLabelWithStyle(rt.info.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		items = append(items, container.NewTabItem(rt.info.Tab, container.NewBorder(title, nil, nil, nil, rt.table)))
	}
	tv.tabs = container.NewAppTabs(items...)
	tv.tabs.OnSelected = func(*container.TabItem) { tv.refreshButtons() }

	tv.simpleBtn = widget.NewButton("Use in Simple", func() { tv.use(fault.Simple) })
	tv.detailedBtn = widget.NewButton("Use in Detailed", func() { tv.use(fault.Detailed) })
	csvBtn := widget.NewButton("Export CSV", tv.exportCSV)
	xlsxBtn := widget.NewButton("Export XLSX", tv.exportXLSX)
	tv.refreshButtons()

	bar := container.NewHBox(tv.simpleBtn, tv.detailedBtn, widget.NewSeparator(), csvBtn, xlsxBtn, tv.status)
	tv.container = container.NewBorder(nil, bar, nil, nil, tv.tabs)
	return tv
}

// Container returns the view's container.
func (tv *TablesView) Container() *fyne.Container {
	return tv.container
}

// Select makes the named table the visible tab.
func (tv *TablesView) Select(name ratings.TableName) {
	for i, rt := range tv.tables {
		if rt.name == name {
			tv.tabs.SelectIndex(i)
			return
		}
	}
}

// Selected returns the selected row of the visible table.
func (tv *TablesView) Selected() (ratings.Record, bool) {
	rt := tv.current()
	if rt == nil || rt.selected < 0 {
		return nil, false
	}
	return rt.records[rt.selected], true
}

func (tv *TablesView) current() *ratingsTable {
	i := tv.tabs.SelectedIndex()
	if i < 0 || i >= len(tv.tables) {
		return nil
	}
	return tv.tables[i]
}

func (tv *TablesView) selectRow(rt *ratingsTable, row int) {
	if row < 1 || row > len(rt.records) {
		rt.selected = -1
	} else {
		rt.selected = row - 1
	}
	tv.refreshButtons()
}

// refreshButtons enables the "Use in" buttons only for rows that carry
// voltages and an impedance.
func (tv *TablesView) refreshButtons() {
	usable := false
	if r, ok := tv.Selected(); ok {
		switch r.(type) {
		case ratings.Distribution11kV, ratings.PowerTransformer:
			usable = true
		}
	}
	if usable {
		tv.simpleBtn.Enable()
		tv.detailedBtn.Enable()
	} else {
		tv.simpleBtn.Disable()
		tv.detailedBtn.Disable()
	}
}

func (tv *TablesView) use(mode fault.Mode) {
	r, ok := tv.Selected()
	if !ok || tv.OnUse == nil {
		return
	}
	in, err := cli.InputFromRecord(mode, r)
	if err != nil {
		dialog.ShowError(err, tv.win)
		return
	}
	logging.New("ui").Debug("row sent to calculation", "table", r.Table(), "rating", r.Rating(), "mode", mode)
	tv.OnUse(mode, in)
}

func (tv *TablesView) exportCSV() {
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil || dir == nil {
			return
		}
		base := filepath.Join(dir.Path(), "transformer_tables")
		paths, err := export.WriteTablesCSV(base, time.Now())
		if err != nil {
			logging.New("ui").Warn("tables not exported", "err", err)
			dialog.ShowError(err, tv.win)
			return
		}
		logging.New("ui").Info("tables exported", "files", len(paths), "dir", dir.Path())
		tv.status.SetText(fmt.Sprintf("Exported %d tables to %s", len(paths), dir.Path()))
	}, tv.win)
}

func (tv *TablesView) exportXLSX() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := export.WriteTablesXLSX(path); err != nil {
			logging.New("ui").Warn("tables not exported", "path", path, "err", err)
			dialog.ShowError(err, tv.win)
			return
		}
		logging.New("ui").Info("tables exported", "path", path)
		tv.status.SetText(fmt.Sprintf("Exported tables to %s", path))
	}, tv.win)
	d.SetFileName(export.BuildPath("transformer_tables", "", ".xlsx", time.Now()))
	d.Show()
}

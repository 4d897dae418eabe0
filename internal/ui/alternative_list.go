package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quizdesk/internal/crud"
	"github.com/ytget/quizdesk/internal/model"
)

var _ crud.Surface[model.Alternative] = (*AlternativeList)(nil)

// AlternativeColumns declares the displayed alternative attributes
func AlternativeColumns(localization *Localization) []crud.Column[model.Alternative] {
	return []crud.Column[model.Alternative]{
		{Name: localization.GetText(KeyColumnID), Value: model.Alternative.IDString},
		{Name: localization.GetText(KeyColumnDescription), Value: func(a model.Alternative) string { return a.Description }},
		{Name: localization.GetText(KeyColumnCorrect), Value: func(a model.Alternative) string {
			if a.IsCorrect {
				return localization.GetText(KeyYes)
			}
			return localization.GetText(KeyNo)
		}},
		{Name: localization.GetText(KeyColumnQuestion), Value: model.Alternative.QuestionText},
	}
}

// AlternativeList renders alternatives as rows and hosts the prompts the
// controller needs
type AlternativeList struct {
	window       fyne.Window
	localization *Localization
	columnCount  int

	columns []string
	rows    []crud.RowView[model.Alternative]

	header     *fyne.Container
	list       *widget.List
	emptyLabel *widget.Label
	content    *fyne.Container
}

// NewAlternativeList creates the list for columnCount attribute columns
func NewAlternativeList(window fyne.Window, localization *Localization, columnCount int) *AlternativeList {
	l := &AlternativeList{
		window:       window,
		localization: localization,
		columnCount:  columnCount,
	}

	l.header = container.NewGridWithColumns(columnCount + ActionColumnsPerRow)
	l.list = widget.NewList(
		func() int { return len(l.rows) },
		func() fyne.CanvasObject { return NewRecordRow(l.columnCount, l.localization) },
		l.updateItem,
	)
	l.emptyLabel = widget.NewLabel(localization.GetText(KeyNoRecords))
	l.emptyLabel.Alignment = fyne.TextAlignCenter

	l.content = container.NewBorder(l.header, nil, nil, nil, container.NewStack(l.list, l.emptyLabel))
	return l
}

// Content returns the canvas object to place in the window
func (l *AlternativeList) Content() fyne.CanvasObject {
	return l.content
}

// Len returns the number of rendered rows
func (l *AlternativeList) Len() int {
	return len(l.rows)
}

// Render implements crud.Surface
func (l *AlternativeList) Render(columns []string, rows []crud.RowView[model.Alternative]) {
	l.columns = columns
	l.rows = rows

	headers := make([]fyne.CanvasObject, 0, len(columns)+ActionColumnsPerRow)
	for _, name := range columns {
		headers = append(headers, widget.NewLabelWithStyle(name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}
	for len(headers) < l.columnCount+ActionColumnsPerRow {
		headers = append(headers, widget.NewLabel(""))
	}
	l.header.Objects = headers
	l.header.Refresh()

	if len(rows) == 0 {
		l.emptyLabel.Show()
	} else {
		l.emptyLabel.Hide()
	}
	l.list.Refresh()
}

// Confirm implements crud.Surface
func (l *AlternativeList) Confirm(title, message string, answer func(crud.Choice)) {
	d := dialog.NewConfirm(title, message, func(ok bool) {
		if ok {
			answer(crud.ChoiceYes)
			return
		}
		answer(crud.ChoiceNo)
	}, l.window)
	d.SetDismissText(l.localization.GetText(KeyCancel))
	d.Show()
}

// ShowError implements crud.Surface
func (l *AlternativeList) ShowError(title string, err error) {
	if err == nil {
		return
	}
	dialog.ShowInformation(title, err.Error(), l.window)
}

// SetLocalization switches row button texts to a new language
func (l *AlternativeList) SetLocalization(localization *Localization) {
	l.localization = localization
	l.emptyLabel.SetText(localization.GetText(KeyNoRecords))
	l.list.Refresh()
}

func (l *AlternativeList) updateItem(id widget.ListItemID, item fyne.CanvasObject) {
	row, ok := item.(*RecordRow)
	if !ok {
		return
	}
	row.SetActionTexts(l.localization)
	if id < 0 || id >= len(l.rows) {
		row.Clear()
		return
	}
	view := l.rows[id]
	row.SetRow(view.Cells, view.Edit, view.Remove)
}

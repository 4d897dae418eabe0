package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RecordRow is one list row: a label per attribute plus edit and remove buttons
type RecordRow struct {
	widget.BaseWidget

	cells     []*widget.Label
	editBtn   *widget.Button
	removeBtn *widget.Button

	onEdit   func()
	onRemove func()
}

// NewRecordRow creates a row with the given number of attribute cells
func NewRecordRow(columns int, localization *Localization) *RecordRow {
	r := &RecordRow{cells: make([]*widget.Label, columns)}
	for i := range r.cells {
		r.cells[i] = widget.NewLabel("")
		r.cells[i].Truncation = fyne.TextTruncateEllipsis
	}

	// triggers are read at tap time so a recycled row never fires a stale one
	r.editBtn = widget.NewButton(localization.GetText(KeyEdit), func() {
		if r.onEdit != nil {
			r.onEdit()
		}
	})
	r.removeBtn = widget.NewButton(localization.GetText(KeyRemove), func() {
		if r.onRemove != nil {
			r.onRemove()
		}
	})
	r.removeBtn.Importance = widget.DangerImportance

	r.ExtendBaseWidget(r)
	return r
}

// SetRow shows cells and binds the row triggers
func (r *RecordRow) SetRow(cells []string, onEdit, onRemove func()) {
	for i, label := range r.cells {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		if text == "" {
			text = DashPlaceholder
		}
		label.SetText(text)
	}
	r.onEdit = onEdit
	r.onRemove = onRemove
}

// Clear drops the row's triggers
func (r *RecordRow) Clear() {
	r.SetRow(nil, nil, nil)
}

// SetActionTexts updates the button labels after a language change
func (r *RecordRow) SetActionTexts(localization *Localization) {
	r.editBtn.SetText(localization.GetText(KeyEdit))
	r.removeBtn.SetText(localization.GetText(KeyRemove))
}

// CreateRenderer implements fyne.Widget
func (r *RecordRow) CreateRenderer() fyne.WidgetRenderer {
	objects := make([]fyne.CanvasObject, 0, len(r.cells)+ActionColumnsPerRow)
	for _, label := range r.cells {
		objects = append(objects, label)
	}
	objects = append(objects, r.editBtn, r.removeBtn)
	return widget.NewSimpleRenderer(container.NewGridWithColumns(len(objects), objects...))
}

// MinSize keeps rows readable
func (r *RecordRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

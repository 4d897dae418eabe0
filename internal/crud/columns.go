package crud

// Column declares one displayed attribute of E
type Column[E any] struct {
	Name  string
	Value func(E) string
}

// RowView is one rendered row. Its triggers belong to the render pass that
// produced them; surfaces must drop them on the next Render.
type RowView[E any] struct {
	Entity E
	Cells  []string
	Edit   func()
	Remove func()
}

// Headers returns the column names in declaration order
func Headers[E any](columns []Column[E]) []string {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Name
	}
	return headers
}

// Project renders entity into a row with the given triggers
func Project[E any](columns []Column[E], entity E, edit, remove func()) RowView[E] {
	cells := make([]string, len(columns))
	for i, col := range columns {
		if col.Value != nil {
			cells[i] = col.Value(entity)
		}
	}
	return RowView[E]{
		Entity: entity,
		Cells:  cells,
		Edit:   edit,
		Remove: remove,
	}
}

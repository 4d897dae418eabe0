package crud

import (
	"context"
	"errors"
	"strconv"
)

type record struct {
	ID      int
	Desc    string
	Correct bool
}

var recordColumns = []Column[record]{
	{Name: "Id", Value: func(r record) string { return strconv.Itoa(r.ID) }},
	{Name: "Description", Value: func(r record) string { return r.Desc }},
	{Name: "Correct", Value: func(r record) string { return strconv.FormatBool(r.Correct) }},
}

var errStore = errors.New("database is locked")

// memService is an ordered in-memory record service
type memService struct {
	records []record
	nextID  int

	findCalls   int
	saveCalls   int
	removeCalls int

	failFind   error
	failSave   error
	failRemove error
}

func newMemService(records ...record) *memService {
	s := &memService{nextID: 1}
	for _, r := range records {
		s.records = append(s.records, r)
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	return s
}

func (s *memService) FindAll(ctx context.Context) ([]record, error) {
	s.findCalls++
	if s.failFind != nil {
		return nil, s.failFind
	}
	out := make([]record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *memService) Save(ctx context.Context, r record) (record, error) {
	s.saveCalls++
	if s.failSave != nil {
		return record{}, s.failSave
	}
	if r.ID == 0 {
		r.ID = s.nextID
		s.nextID++
		s.records = append(s.records, r)
		return r, nil
	}
	for i := range s.records {
		if s.records[i].ID == r.ID {
			s.records[i] = r
			return r, nil
		}
	}
	return record{}, errors.New("not found")
}

func (s *memService) Remove(ctx context.Context, r record) error {
	s.removeCalls++
	if s.failRemove != nil {
		return s.failRemove
	}
	for i := range s.records {
		if s.records[i].ID == r.ID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type shownError struct {
	title string
	err   error
}

// fakeSurface records renders and answers confirmations with answer
type fakeSurface struct {
	columns  []string
	rows     []RowView[record]
	renders  int
	errors   []shownError
	prompts  int
	answer   Choice
	deferred func(Choice)
	deferAll bool
}

func (f *fakeSurface) Render(columns []string, rows []RowView[record]) {
	f.columns = columns
	f.rows = rows
	f.renders++
}

func (f *fakeSurface) Confirm(title, message string, answer func(Choice)) {
	f.prompts++
	if f.deferAll {
		f.deferred = answer
		return
	}
	answer(f.answer)
}

func (f *fakeSurface) ShowError(title string, err error) {
	f.errors = append(f.errors, shownError{title: title, err: err})
}

func (f *fakeSurface) cells(column int) []string {
	out := make([]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = row.Cells[column]
	}
	return out
}

// fakeForm holds the editable fields of a record
type fakeForm struct {
	desc    string
	correct bool
	filled  int
	readErr error
}

func (f *fakeForm) Fill(draft record) {
	f.desc = draft.Desc
	f.correct = draft.Correct
	f.filled++
}

func (f *fakeForm) Read(draft record) (record, error) {
	if f.readErr != nil {
		return record{}, f.readErr
	}
	draft.Desc = f.desc
	draft.Correct = f.correct
	return draft, nil
}

type fakeWindow struct {
	shown  int
	closed int
}

func (w *fakeWindow) Show()  { w.shown++ }
func (w *fakeWindow) Close() { w.closed++ }

// fixture wires a controller to fakes. Each opened session gets its own
// form and window, the last ones are kept for assertions.
type fixture struct {
	service *memService
	surface *fakeSurface
	ctrl    *Controller[record]

	form    *fakeForm
	window  *fakeWindow
	loadErr error
}

func newFixture(records ...record) *fixture {
	f := &fixture{
		service: newMemService(records...),
		surface: &fakeSurface{},
	}
	f.ctrl = NewController(ControllerConfig[record]{
		Surface: f.surface,
		Columns: recordColumns,
		Sessions: func() *Session[record] {
			f.form = &fakeForm{}
			f.window = &fakeWindow{}
			s := NewSession[record](f.service, f.form, SessionConfig{
				Alerts: f.surface,
				Loader: func(ctx context.Context) error { return f.loadErr },
			})
			s.AttachWindow(f.window)
			return s
		},
	})
	f.ctrl.AttachService(f.service)
	return f
}

package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/quizdesk/internal/crud"
	"github.com/ytget/quizdesk/internal/model"
)

var _ crud.Form[model.Alternative] = (*AlternativeForm)(nil)

// QuestionLister provides the questions offered by the editor
type QuestionLister interface {
	FindAll(ctx context.Context) ([]model.Question, error)
}

// ValidationError reports form fields that cannot be saved
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AlternativeForm holds the editable fields of one alternative
type AlternativeForm struct {
	localization *Localization
	questions    []model.Question

	idEntry          *widget.Entry
	descriptionEntry *widget.Entry
	correctCheck     *widget.Check
	questionSelect   *widget.Select
	errorLabel       *widget.Label

	content fyne.CanvasObject
}

// NewAlternativeForm creates an empty form
func NewAlternativeForm(localization *Localization) *AlternativeForm {
	f := &AlternativeForm{localization: localization}
	f.createUI()
	return f
}

func (f *AlternativeForm) createUI() {
	f.idEntry = widget.NewEntry()
	f.idEntry.Disable()

	f.descriptionEntry = widget.NewEntry()
	f.descriptionEntry.SetPlaceHolder(f.localization.GetText(KeyFormDescription))

	f.correctCheck = widget.NewCheck(f.localization.GetText(KeyFormCorrect), nil)

	f.questionSelect = widget.NewSelect(nil, nil)
	f.questionSelect.PlaceHolder = f.localization.GetText(KeySelectQuestion)

	f.errorLabel = widget.NewLabel("")
	f.errorLabel.Importance = widget.DangerImportance

	form := widget.NewForm(
		widget.NewFormItem(f.localization.GetText(KeyColumnID), f.idEntry),
		widget.NewFormItem(f.localization.GetText(KeyFormDescription), f.descriptionEntry),
		widget.NewFormItem("", f.correctCheck),
		widget.NewFormItem(f.localization.GetText(KeyFormQuestion), f.questionSelect),
	)
	f.content = container.NewVBox(form, f.errorLabel)
}

// Content returns the form widgets
func (f *AlternativeForm) Content() fyne.CanvasObject {
	return f.content
}

// SetQuestions replaces the selectable questions
func (f *AlternativeForm) SetQuestions(questions []model.Question) {
	f.questions = append([]model.Question(nil), questions...)
	options := make([]string, len(f.questions))
	for i, q := range f.questions {
		options[i] = fmt.Sprintf(QuestionOptionFmt, q.ID, q.String())
	}
	f.questionSelect.SetOptions(options)
}

// Loader returns the session loader filling the question selector
func (f *AlternativeForm) Loader(questions QuestionLister) crud.Loader {
	return func(ctx context.Context) error {
		if questions == nil {
			return errors.New("question service not set")
		}
		list, err := questions.FindAll(ctx)
		if err != nil {
			return err
		}
		f.SetQuestions(list)
		return nil
	}
}

// SetEditable enables or disables the input fields
func (f *AlternativeForm) SetEditable(editable bool) {
	for _, w := range []fyne.Disableable{f.descriptionEntry, f.correctCheck, f.questionSelect} {
		if editable {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

// Fill implements crud.Form
func (f *AlternativeForm) Fill(draft model.Alternative) {
	f.idEntry.SetText(draft.IDString())
	f.descriptionEntry.SetText(draft.Description)
	f.correctCheck.SetChecked(draft.IsCorrect)
	f.errorLabel.SetText("")

	f.questionSelect.ClearSelected()
	if id := draft.QuestionID(); id != 0 {
		if idx := model.IndexOfQuestion(f.questions, id); idx >= 0 {
			f.questionSelect.SetSelectedIndex(idx)
		}
	}
}

// Read implements crud.Form
func (f *AlternativeForm) Read(draft model.Alternative) (model.Alternative, error) {
	description := strings.TrimSpace(f.descriptionEntry.Text)
	if description == "" {
		msg := f.localization.GetText(KeyDescriptionRequired)
		f.errorLabel.SetText(msg)
		return model.Alternative{}, &ValidationError{Field: f.localization.GetText(KeyFormDescription), Message: msg}
	}
	f.errorLabel.SetText("")

	alt := draft.Clone()
	alt.Description = description
	alt.IsCorrect = f.correctCheck.Checked
	alt.Question = nil
	if idx := f.questionSelect.SelectedIndex(); idx >= 0 && idx < len(f.questions) {
		q := f.questions[idx]
		alt.Question = &q
	}
	return alt, nil
}

// editorDialog is the modal window of one editor session
type editorDialog struct {
	dialog    *dialog.CustomDialog
	form      *AlternativeForm
	session   *crud.Session[model.Alternative]
	saveBtn   *widget.Button
	cancelBtn *widget.Button
}

// Show presents the dialog. Until the reference data is loaded only Cancel
// is available.
func (d *editorDialog) Show() {
	loaded := d.session.State() == crud.StateLoaded
	d.form.SetEditable(loaded)
	if loaded {
		d.saveBtn.Enable()
	} else {
		d.saveBtn.Disable()
	}
	d.dialog.Show()
}

func (d *editorDialog) Close() { d.dialog.Hide() }

// newEditorDialog wraps form in a dialog whose only exits are save and cancel
func newEditorDialog(ctx context.Context, parent fyne.Window, localization *Localization, form *AlternativeForm, session *crud.Session[model.Alternative]) *editorDialog {
	d := &editorDialog{
		dialog:  dialog.NewCustomWithoutButtons(localization.GetText(KeyFormTitle), form.Content(), parent),
		form:    form,
		session: session,
	}

	// commit failures are shown by the session
	d.saveBtn = widget.NewButton(localization.GetText(KeySave), func() {
		_ = session.Commit(ctx)
	})
	d.saveBtn.Importance = widget.HighImportance
	d.cancelBtn = widget.NewButton(localization.GetText(KeyCancel), session.Cancel)

	d.dialog.SetButtons([]fyne.CanvasObject{d.cancelBtn, d.saveBtn})
	d.dialog.Resize(fyne.NewSize(EditorDialogWidth, EditorDialogHeight))
	return d
}

// EditorConfig wires the alternative editor sessions
type EditorConfig struct {
	Parent       fyne.Window
	Localization *Localization
	Alternatives crud.Service[model.Alternative]
	Questions    QuestionLister
	Alerts       crud.Alerter
	Logger       *zap.Logger
}

// NewAlternativeEditor returns the session factory used by the list
// controller. Every session gets its own form and dialog.
func NewAlternativeEditor(ctx context.Context, cfg EditorConfig) crud.SessionFactory[model.Alternative] {
	return func() *crud.Session[model.Alternative] {
		form := NewAlternativeForm(cfg.Localization)
		session := crud.NewSession[model.Alternative](cfg.Alternatives, form, crud.SessionConfig{
			Loader:   form.Loader(cfg.Questions),
			Alerts:   cfg.Alerts,
			Messages: cfg.Localization.Messages(),
			Logger:   cfg.Logger,
		})
		session.AttachWindow(newEditorDialog(ctx, cfg.Parent, cfg.Localization, form, session))
		return session
	}
}

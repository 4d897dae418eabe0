package ui

import (
	"context"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/quizdesk/internal/config"
	"github.com/ytget/quizdesk/internal/crud"
	"github.com/ytget/quizdesk/internal/model"
	"github.com/ytget/quizdesk/internal/platform"
	"github.com/ytget/quizdesk/internal/store"
)

func newTestRootUI(t *testing.T) (*RootUI, *store.DB) {
	t.Helper()
	t.Setenv(platform.DataDirEnv, t.TempDir())

	app := test.NewApp()
	db, err := store.Open(filepath.Join(t.TempDir(), "ui.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	q, err := db.Questions().Save(ctx, model.Question{Text: "2 + 2 = ?"})
	if err != nil {
		t.Fatalf("Failed to save question: %v", err)
	}
	for _, desc := range []string{"A", "B"} {
		if _, err := db.Alternatives().Save(ctx, model.Alternative{Description: desc, Question: &q}); err != nil {
			t.Fatalf("Failed to save alternative: %v", err)
		}
	}

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	ui := NewRootUI(ctx, w, config.NewSettings(app), Services{
		Alternatives: db.Alternatives(),
		Questions:    db.Questions(),
	}, nil)
	return ui, db
}

func TestRootUI_LoadsRows(t *testing.T) {
	ui, _ := newTestRootUI(t)

	if ui.List().Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", ui.List().Len())
	}
	if ui.Controller().RefreshCount() != 1 {
		t.Errorf("Expected one refresh, got %d", ui.Controller().RefreshCount())
	}
}

func TestRootUI_EditorRoundTrip(t *testing.T) {
	ui, db := newTestRootUI(t)
	ctx := context.Background()
	ctrl := ui.Controller()

	// cancel leaves everything as it was
	s, err := ctrl.OnNew(ctx)
	if err != nil {
		t.Fatalf("OnNew returned error: %v", err)
	}
	if s.State() != crud.StateLoaded {
		t.Fatalf("Expected Loaded session, got %s", s.State())
	}
	s.Cancel()
	if ui.List().Len() != 2 || ctrl.RefreshCount() != 1 {
		t.Errorf("Cancel must not refresh: rows=%d refreshes=%d", ui.List().Len(), ctrl.RefreshCount())
	}

	// an empty form is rejected and keeps the editor open
	s, err = ctrl.OnNew(ctx)
	if err != nil {
		t.Fatalf("OnNew returned error: %v", err)
	}
	if err := s.Commit(ctx); err == nil {
		t.Fatal("Expected commit of empty form to fail")
	}
	if s.State() != crud.StateLoaded {
		t.Errorf("Expected Loaded after failed commit, got %s", s.State())
	}
	s.Cancel()

	// committing an edit refreshes from the store
	s, err = ctrl.OnEdit(ctx, ctrl.Items()[0])
	if err != nil {
		t.Fatalf("OnEdit returned error: %v", err)
	}
	if err := s.Commit(ctx); err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}
	if ctrl.RefreshCount() != 2 {
		t.Errorf("Expected refresh after commit, got %d", ctrl.RefreshCount())
	}

	stored, err := db.Alternatives().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(stored) != len(ctrl.Items()) {
		t.Errorf("Displayed rows %d differ from store %d", len(ctrl.Items()), len(stored))
	}
	if stored[0].QuestionText() != "2 + 2 = ?" {
		t.Errorf("Expected question reference to survive the edit, got '%s'", stored[0].QuestionText())
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.onLanguageChange("pt")

	if ui.window.Title() != "Alternativas do Quiz" {
		t.Errorf("Unexpected title after language change: %s", ui.window.Title())
	}
	if got := ui.Controller().Headers()[1]; got != "Descrição" {
		t.Errorf("Expected Portuguese header, got %s", got)
	}
	if ui.List().Len() != 2 {
		t.Errorf("Expected rows to survive language change, got %d", ui.List().Len())
	}
}

func TestRootUI_LanguageChangeClosesEditors(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ctx := context.Background()

	s, err := ui.Controller().OnNew(ctx)
	if err != nil {
		t.Fatalf("OnNew returned error: %v", err)
	}
	old := ui.Controller()

	ui.onLanguageChange("ru")

	if s.State() != crud.StateCancelled {
		t.Errorf("Expected the open editor to be cancelled, got %s", s.State())
	}
	if ui.Controller() == old {
		t.Error("Expected a new controller after language change")
	}
	if ui.refreshBtn.Text != IconRefresh+" "+"Обновить" {
		t.Errorf("Unexpected refresh button text: %s", ui.refreshBtn.Text)
	}
	if got := ui.List().columns[1]; got != "Описание" {
		t.Errorf("Expected Russian header, got %s", got)
	}
}

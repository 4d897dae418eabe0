package crud

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
		terminal bool
	}{
		{StateCreated, "Created", false},
		{StateLoaded, "Loaded", false},
		{StateCommitted, "Committed", true},
		{StateCancelled, "Cancelled", true},
		{State(99), "Unknown", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.state.String())
		assert.Equal(t, test.terminal, test.state.IsTerminal(), test.expected)
	}
}

func newTestSession(svc *memService, form *fakeForm, win *fakeWindow, alerts Alerter, loader Loader) *Session[record] {
	s := NewSession[record](svc, form, SessionConfig{Alerts: alerts, Loader: loader})
	s.AttachWindow(win)
	return s
}

func TestSession_CommitPublishesThenCloses(t *testing.T) {
	ctx := context.Background()
	svc := newMemService()
	form := &fakeForm{}
	win := &fakeWindow{}
	s := newTestSession(svc, form, win, nil, nil)

	require.NotEmpty(t, s.ID())
	require.NoError(t, s.SetEntity(record{}))
	require.NoError(t, s.LoadAssociatedData(ctx))
	require.NoError(t, s.BindFormToDraft())
	assert.Equal(t, StateLoaded, s.State())

	closedAtPublish := -1
	s.Subscribe(ListenerFunc(func(ctx context.Context) { closedAtPublish = win.closed }))

	form.desc = "C"
	require.NoError(t, s.Commit(ctx))

	assert.Equal(t, StateCommitted, s.State())
	assert.Equal(t, 0, closedAtPublish, "listeners fire before the window closes")
	assert.Equal(t, 1, win.closed)

	saved, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, record{ID: 1, Desc: "C"}, saved)

	select {
	case <-s.Done():
	default:
		t.Fatal("Done must be closed after commit")
	}
}

func TestSession_FailedCommitStaysLoaded(t *testing.T) {
	ctx := context.Background()
	svc := newMemService(record{ID: 1, Desc: "A"})
	svc.failSave = errStore
	surface := &fakeSurface{}
	win := &fakeWindow{}
	s := newTestSession(svc, &fakeForm{}, win, surface, nil)

	require.NoError(t, s.SetEntity(record{ID: 1, Desc: "A"}))
	require.NoError(t, s.LoadAssociatedData(ctx))
	require.NoError(t, s.BindFormToDraft())

	fired := 0
	s.Subscribe(ListenerFunc(func(ctx context.Context) { fired++ }))

	err := s.Commit(ctx)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, OpSave, perr.Op)
	assert.ErrorIs(t, err, errStore)

	assert.Equal(t, StateLoaded, s.State())
	assert.Equal(t, 0, fired)
	assert.Equal(t, 0, win.closed)
	require.Len(t, surface.errors, 1)
	assert.Equal(t, DefaultMessages().SaveErrorTitle, surface.errors[0].title)

	// the user may retry once the store recovers
	svc.failSave = nil
	require.NoError(t, s.Commit(ctx))
	assert.Equal(t, 1, fired)
}

func TestSession_FormErrorKeepsDraft(t *testing.T) {
	ctx := context.Background()
	svc := newMemService()
	surface := &fakeSurface{}
	form := &fakeForm{readErr: errors.New("description is required")}
	s := newTestSession(svc, form, &fakeWindow{}, surface, nil)

	require.NoError(t, s.SetEntity(record{Desc: "draft"}))
	require.NoError(t, s.LoadAssociatedData(ctx))

	require.Error(t, s.Commit(ctx))
	assert.Equal(t, 0, svc.saveCalls)
	assert.Equal(t, StateLoaded, s.State())
	draft, _ := s.Draft()
	assert.Equal(t, "draft", draft.Desc)
	assert.Len(t, surface.errors, 1)
}

func TestSession_CancelDiscardsEdits(t *testing.T) {
	ctx := context.Background()
	svc := newMemService()
	form := &fakeForm{}
	win := &fakeWindow{}
	s := newTestSession(svc, form, win, nil, nil)

	require.NoError(t, s.SetEntity(record{ID: 2, Desc: "B"}))
	require.NoError(t, s.LoadAssociatedData(ctx))
	require.NoError(t, s.BindFormToDraft())

	fired := 0
	s.Subscribe(ListenerFunc(func(ctx context.Context) { fired++ }))

	form.desc = "edited"
	s.Cancel()
	s.Cancel()

	assert.Equal(t, StateCancelled, s.State())
	assert.Equal(t, 0, svc.saveCalls)
	assert.Equal(t, 0, fired)
	assert.Equal(t, 1, win.closed)
	draft, _ := s.Draft()
	assert.Equal(t, "B", draft.Desc)

	assert.ErrorIs(t, s.Commit(ctx), ErrSessionState)
}

func TestSession_LoadFailure(t *testing.T) {
	ctx := context.Background()
	surface := &fakeSurface{}
	loadErr := errors.New("questions unavailable")
	s := newTestSession(newMemService(), &fakeForm{}, &fakeWindow{}, surface, func(ctx context.Context) error {
		return loadErr
	})

	require.NoError(t, s.SetEntity(record{}))
	err := s.LoadAssociatedData(ctx)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.ErrorIs(t, err, loadErr)
	assert.Equal(t, StateCreated, s.State())
	require.Len(t, surface.errors, 1)
	assert.Equal(t, DefaultMessages().LoadErrorTitle, surface.errors[0].title)

	assert.ErrorIs(t, s.Commit(ctx), ErrSessionState)
	require.Len(t, surface.errors, 2)
	assert.Equal(t, DefaultMessages().SaveErrorTitle, surface.errors[1].title)
	assert.ErrorIs(t, surface.errors[1].err, ErrSessionState)

	s.Cancel()
	assert.Equal(t, StateCancelled, s.State())
}

func TestSession_StateGuards(t *testing.T) {
	ctx := context.Background()
	s := NewSession[record](newMemService(), nil, SessionConfig{})

	assert.ErrorIs(t, s.BindFormToDraft(), ErrNoDraft)
	require.NoError(t, s.LoadAssociatedData(ctx))
	assert.ErrorIs(t, s.Commit(ctx), ErrNoDraft)
	assert.ErrorIs(t, s.SetEntity(record{}), ErrSessionState)
	assert.ErrorIs(t, s.LoadAssociatedData(ctx), ErrSessionState)
}

func TestSession_NoFormSavesDraft(t *testing.T) {
	ctx := context.Background()
	svc := newMemService()
	s := NewSession[record](svc, nil, SessionConfig{})

	require.NoError(t, s.SetEntity(record{Desc: "plain"}))
	require.NoError(t, s.LoadAssociatedData(ctx))
	require.NoError(t, s.Commit(ctx))

	assert.Equal(t, []record{{ID: 1, Desc: "plain"}}, svc.records)
}

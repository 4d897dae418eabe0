package crud

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the lifecycle state of an editor session
type State int

const (
	// StateCreated means the session has a draft but no reference data yet
	StateCreated State = iota
	// StateLoaded means the form is interactive
	StateLoaded
	// StateCommitted means the draft was saved and the window closed
	StateCommitted
	// StateCancelled means the window was closed without saving
	StateCancelled
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateLoaded:
		return "Loaded"
	case StateCommitted:
		return "Committed"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transitions are possible
func (s State) IsTerminal() bool {
	return s == StateCommitted || s == StateCancelled
}

// Form holds the editable fields of a session
type Form[E any] interface {
	// Fill copies draft into the editable fields.
	Fill(draft E)
	// Read returns a copy of draft carrying the edited field values.
	// It must not modify draft.
	Read(draft E) (E, error)
}

// Loader fetches the reference data a form needs before it becomes interactive
type Loader func(ctx context.Context) error

// SessionConfig carries the optional collaborators of a session
type SessionConfig struct {
	Loader   Loader
	Alerts   Alerter
	Messages Messages
	Logger   *zap.Logger
}

// SessionFactory builds a fresh session for the controller to open
type SessionFactory[E any] func() *Session[E]

// Session edits one draft inside one modal window.
//
// The lifecycle is Created -> Loaded -> Committed or Cancelled. A session is
// single use: once terminal it never reopens and its hub is empty.
type Session[E any] struct {
	id       string
	service  Service[E]
	form     Form[E]
	window   Window
	loader   Loader
	alerts   Alerter
	messages Messages
	logger   *zap.Logger

	hub      Hub
	state    State
	draft    E
	hasDraft bool
	done     chan struct{}
}

// NewSession creates a session saving through service. form may be nil, in
// which case the draft is saved as set.
func NewSession[E any](service Service[E], form Form[E], cfg SessionConfig) *Session[E] {
	s := &Session[E]{
		id:       uuid.NewString(),
		service:  service,
		form:     form,
		loader:   cfg.Loader,
		alerts:   cfg.Alerts,
		messages: cfg.Messages.withDefaults(),
		logger:   cfg.Logger,
		state:    StateCreated,
		done:     make(chan struct{}),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.logger = s.logger.With(zap.String("session_id", s.id))
	return s
}

// ID returns the session id used in logs
func (s *Session[E]) ID() string { return s.id }

// State returns the current state
func (s *Session[E]) State() State { return s.state }

// Done is closed once the session reaches a terminal state
func (s *Session[E]) Done() <-chan struct{} { return s.done }

// Draft returns the working draft. After a commit it is the saved record.
func (s *Session[E]) Draft() (E, bool) { return s.draft, s.hasDraft }

// AttachWindow sets the window closed on commit or cancel
func (s *Session[E]) AttachWindow(w Window) {
	s.window = w
}

// SetEntity assigns the working draft
func (s *Session[E]) SetEntity(draft E) error {
	if s.state != StateCreated {
		return stateError("set entity", s.state)
	}
	s.draft = draft
	s.hasDraft = true
	return nil
}

// LoadAssociatedData runs the loader and makes the form interactive. On
// failure the error is shown and the session stays Created so the user can
// still cancel.
func (s *Session[E]) LoadAssociatedData(ctx context.Context) error {
	if s.state != StateCreated {
		return stateError("load", s.state)
	}
	if s.loader != nil {
		if err := s.loader(ctx); err != nil {
			lerr := &LoadError{Err: err}
			s.logger.Warn("Editor reference data failed to load", zap.Error(err))
			s.report(s.messages.LoadErrorTitle, lerr)
			return lerr
		}
	}
	s.state = StateLoaded
	s.logger.Debug("Editor loaded")
	return nil
}

// BindFormToDraft copies the draft into the form fields
func (s *Session[E]) BindFormToDraft() error {
	if !s.hasDraft {
		return ErrNoDraft
	}
	if s.state.IsTerminal() {
		return stateError("bind", s.state)
	}
	if s.form != nil {
		s.form.Fill(s.draft)
	}
	return nil
}

// Subscribe registers l on the session's change channel
func (s *Session[E]) Subscribe(l Listener) {
	s.hub.Subscribe(l)
}

// Show presents the window
func (s *Session[E]) Show() {
	if s.window != nil {
		s.window.Show()
	}
}

// Commit saves the form contents. On success the subscribers are notified
// and the window closes. On failure the error is shown and the session
// stays Loaded. Committing a session that is not Loaded is shown as well.
func (s *Session[E]) Commit(ctx context.Context) error {
	if s.state != StateLoaded {
		err := stateError("commit", s.state)
		s.logger.Warn("Commit rejected", zap.Error(err))
		s.report(s.messages.SaveErrorTitle, err)
		return err
	}
	if !s.hasDraft {
		s.report(s.messages.SaveErrorTitle, ErrNoDraft)
		return ErrNoDraft
	}

	entity := s.draft
	if s.form != nil {
		edited, err := s.form.Read(s.draft)
		if err != nil {
			s.logger.Info("Editor form rejected", zap.Error(err))
			s.report(s.messages.SaveErrorTitle, err)
			return err
		}
		entity = edited
	}

	saved, err := s.service.Save(ctx, entity)
	if err != nil {
		perr := &PersistenceError{Op: OpSave, Err: err}
		s.logger.Warn("Save failed", zap.Error(err))
		s.report(s.messages.SaveErrorTitle, perr)
		return perr
	}

	s.draft = saved
	s.state = StateCommitted
	s.logger.Info("Editor committed", zap.Int("listeners", s.hub.Len()))
	s.hub.Publish(ctx)
	s.finish()
	return nil
}

// Cancel discards the form edits and closes the window. Cancelling a
// finished session does nothing.
func (s *Session[E]) Cancel() {
	if s.state.IsTerminal() {
		return
	}
	s.state = StateCancelled
	s.hub = Hub{}
	s.logger.Debug("Editor cancelled")
	s.finish()
}

func (s *Session[E]) finish() {
	if s.window != nil {
		s.window.Close()
	}
	close(s.done)
}

func (s *Session[E]) report(title string, err error) {
	if s.alerts != nil {
		s.alerts.ShowError(title, err)
	}
}

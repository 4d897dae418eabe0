package crud

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ControllerConfig configures a Controller
type ControllerConfig[E any] struct {
	Surface  Surface[E]
	Columns  []Column[E]
	Sessions SessionFactory[E]

	// NewDraft builds the empty record edited by OnNew. The zero value of
	// E is used when nil.
	NewDraft func() E

	// Clone copies a record so rows and drafts never share mutable state.
	// Records are copied by assignment when nil.
	Clone func(E) E

	Messages Messages
	Logger   *zap.Logger
}

// Controller owns the displayed collection of one record type
type Controller[E any] struct {
	service  Service[E]
	surface  Surface[E]
	columns  []Column[E]
	sessions SessionFactory[E]
	newDraft func() E
	clone    func(E) E
	messages Messages
	logger   *zap.Logger

	items     []E
	refreshes int
}

// NewController creates a controller. AttachService must be called before
// the first Refresh.
func NewController[E any](cfg ControllerConfig[E]) *Controller[E] {
	c := &Controller[E]{
		surface:  cfg.Surface,
		columns:  cfg.Columns,
		sessions: cfg.Sessions,
		newDraft: cfg.NewDraft,
		clone:    cfg.Clone,
		messages: cfg.Messages.withDefaults(),
		logger:   cfg.Logger,
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// AttachService binds the record service
func (c *Controller[E]) AttachService(service Service[E]) {
	c.service = service
}

// Headers returns the attribute column names
func (c *Controller[E]) Headers() []string {
	return Headers(c.columns)
}

// Items returns a copy of the displayed collection
func (c *Controller[E]) Items() []E {
	items := make([]E, len(c.items))
	for i, item := range c.items {
		items[i] = c.copyOf(item)
	}
	return items
}

// RefreshCount returns how many refreshes replaced the collection
func (c *Controller[E]) RefreshCount() int {
	return c.refreshes
}

// Refresh replaces the displayed collection with the service's FindAll
// result and re-renders every row. On failure the collection is unchanged.
func (c *Controller[E]) Refresh(ctx context.Context) error {
	if c.service == nil {
		c.logger.Error("Refresh called without a record service")
		return ErrNotInitialized
	}

	list, err := c.service.FindAll(ctx)
	if err != nil {
		perr := &PersistenceError{Op: OpList, Err: err}
		c.logger.Warn("Failed to list records", zap.Error(err))
		c.report(c.messages.ListErrorTitle, perr)
		return perr
	}

	items := make([]E, len(list))
	for i, item := range list {
		items[i] = c.copyOf(item)
	}
	c.items = items
	c.refreshes++

	c.logger.Debug("Records refreshed", zap.Int("rows", len(items)), zap.Int("refreshes", c.refreshes))
	if c.surface != nil {
		c.surface.Render(c.Headers(), c.rows(ctx))
	}
	return nil
}

// OnNew opens an editor on an empty draft
func (c *Controller[E]) OnNew(ctx context.Context) (*Session[E], error) {
	var draft E
	if c.newDraft != nil {
		draft = c.newDraft()
	}
	return c.open(ctx, draft)
}

// OnEdit opens an editor on a copy of entity
func (c *Controller[E]) OnEdit(ctx context.Context, entity E) (*Session[E], error) {
	return c.open(ctx, c.copyOf(entity))
}

// OnRemove asks for confirmation and removes entity when the answer is yes.
// A failed removal is shown and leaves the collection as it was.
func (c *Controller[E]) OnRemove(ctx context.Context, entity E) {
	target := c.copyOf(entity)
	if c.surface == nil {
		c.logger.Error("Remove requested without a surface to confirm it")
		return
	}
	c.surface.Confirm(c.messages.ConfirmTitle, c.messages.ConfirmRemove, func(choice Choice) {
		if choice != ChoiceYes {
			c.logger.Debug("Remove not confirmed", zap.Stringer("choice", choice))
			return
		}
		_ = c.remove(ctx, target)
	})
}

// OnDataChanged refreshes the collection after any committed edit
func (c *Controller[E]) OnDataChanged(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		c.logger.Warn("Refresh after change failed", zap.Error(err))
	}
}

func (c *Controller[E]) remove(ctx context.Context, entity E) error {
	if c.service == nil {
		c.logger.Error("Remove called without a record service")
		return ErrNotInitialized
	}
	if err := c.service.Remove(ctx, entity); err != nil {
		perr := &PersistenceError{Op: OpRemove, Err: err}
		c.logger.Warn("Failed to remove record", zap.Error(err))
		c.report(c.messages.RemoveErrorTitle, perr)
		return perr
	}
	return c.Refresh(ctx)
}

// open prepares a session the same way for new and existing records:
// draft, reference data, subscription, form fields, then the window.
// A load failure is returned together with the still open session.
func (c *Controller[E]) open(ctx context.Context, draft E) (*Session[E], error) {
	if c.sessions == nil {
		return nil, fmt.Errorf("%w: no editor factory", ErrNotInitialized)
	}

	s := c.sessions()
	if err := s.SetEntity(draft); err != nil {
		return nil, err
	}
	loadErr := s.LoadAssociatedData(ctx)
	s.Subscribe(c)
	if err := s.BindFormToDraft(); err != nil {
		return nil, err
	}
	s.Show()

	c.logger.Debug("Editor opened", zap.String("session_id", s.ID()))
	return s, loadErr
}

func (c *Controller[E]) rows(ctx context.Context) []RowView[E] {
	rows := make([]RowView[E], len(c.items))
	for i, item := range c.items {
		entity := item
		rows[i] = Project(c.columns, c.copyOf(entity),
			func() {
				if _, err := c.OnEdit(ctx, entity); err != nil {
					c.logger.Warn("Edit trigger failed", zap.Error(err))
				}
			},
			func() { c.OnRemove(ctx, entity) },
		)
	}
	return rows
}

func (c *Controller[E]) copyOf(entity E) E {
	if c.clone != nil {
		return c.clone(entity)
	}
	return entity
}

func (c *Controller[E]) report(title string, err error) {
	if c.surface != nil {
		c.surface.ShowError(title, err)
	}
}

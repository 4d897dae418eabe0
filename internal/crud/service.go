package crud

import "context"

// Service is the record service a controller and its sessions work against.
// Implementations own persistence; failures are shown to the user as text.
type Service[E any] interface {
	// FindAll returns every record in display order.
	FindAll(ctx context.Context) ([]E, error)
	// Save inserts or updates entity and returns the stored record.
	Save(ctx context.Context, entity E) (E, error)
	// Remove deletes entity.
	Remove(ctx context.Context, entity E) error
}

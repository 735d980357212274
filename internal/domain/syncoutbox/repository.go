package syncoutbox

import "context"

// Repository define as operações de persistência do outbox e do log de conflitos
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	ListEntries(ctx context.Context) ([]Entry, error)

	CreateConflict(ctx context.Context, c *Conflict) error
	ListConflicts(ctx context.Context) ([]Conflict, error)
}

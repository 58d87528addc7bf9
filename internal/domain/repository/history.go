package repository

import (
	"context"

	"github.com/bnema/pastor/internal/domain/entity"
)

// ClipHistoryRepository persists the ordered clipboard history as a whole.
// Implementations store the collection exactly in the order given; index 0
// is the most recent entry.
type ClipHistoryRepository interface {
	// Load returns the persisted history, newest first. It may return
	// entries together with an error when the history was read but could
	// not be rewritten; callers should keep such entries.
	Load(ctx context.Context) ([]entity.ClipEntry, error)

	// Save replaces the persisted history with entries.
	Save(ctx context.Context, entries []entity.ClipEntry) error

	// DeleteAll removes the persisted history and its key material.
	DeleteAll(ctx context.Context) error
}

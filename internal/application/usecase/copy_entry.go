// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/pastor/internal/application/port"
	"github.com/bnema/pastor/internal/logging"
)

// ErrNoSuchEntry is returned when a history position is out of range.
var ErrNoSuchEntry = errors.New("no history entry at that position")

// CopyEntryUseCase copies a history entry back to the system clipboard.
type CopyEntryUseCase struct {
	clipboard port.Pasteboard
	history   *HistoryManager
}

// NewCopyEntryUseCase creates a new CopyEntryUseCase.
func NewCopyEntryUseCase(clipboard port.Pasteboard, history *HistoryManager) *CopyEntryUseCase {
	return &CopyEntryUseCase{
		clipboard: clipboard,
		history:   history,
	}
}

// Copy writes the entry at index to the clipboard. With promote set the
// entry is also observed again, as the watcher would do after the copy.
func (uc *CopyEntryUseCase) Copy(ctx context.Context, index int, promote bool) error {
	entry, ok := uc.history.Entry(index)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoSuchEntry, index)
	}

	ctx = logging.WithEntry(ctx, entry.ID)
	log := logging.FromContext(ctx)

	if uc.clipboard == nil {
		log.Warn().Msg("copy entry: clipboard is nil")
		return fmt.Errorf("clipboard not available")
	}

	if err := uc.clipboard.WriteText(ctx, entry.Content); err != nil {
		log.Error().Err(err).Msg("copy entry: clipboard write failed")
		return fmt.Errorf("clipboard write failed: %w", err)
	}

	log.Debug().Int("index", index).Bool("promote", promote).Msg("entry copied to clipboard")

	if !promote {
		return nil
	}
	return uc.history.Observe(ctx, entry.Content, WithSourceApp(entry.SourceApp))
}

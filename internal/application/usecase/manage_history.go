package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/pastor/internal/domain/entity"
	"github.com/bnema/pastor/internal/domain/repository"
	"github.com/bnema/pastor/internal/logging"
)

// DefaultMaxItems is the history bound used when none is configured.
const DefaultMaxItems = 20

var (
	// ErrEmptyContent is returned by Observe for empty clipboard text.
	ErrEmptyContent = errors.New("clipboard content is empty")
	// ErrInvalidMaxItems is returned by SetMaxItems for a bound below one.
	ErrInvalidMaxItems = errors.New("max items must be at least 1")
)

// ObserveOption customizes a single Observe call.
type ObserveOption func(*observeOptions)

type observeOptions struct {
	sourceApp string
}

// WithSourceApp labels a newly created entry with the originating application.
// It has no effect when the text promotes an existing entry.
func WithSourceApp(name string) ObserveOption {
	return func(o *observeOptions) {
		o.sourceApp = name
	}
}

// HistoryManager owns the ordered, deduplicated clipboard history.
//
// Index 0 is the most recent entry. Every mutation persists the whole
// collection through the repository. The manager is not safe for concurrent
// use; all calls must come from one owner (see ClipboardPoller.Do).
type HistoryManager struct {
	repo      repository.ClipHistoryRepository
	entries   []entity.ClipEntry
	maxItems  int
	loadErr   error
	listeners []func([]entity.ClipEntry)
	now       func() time.Time
}

// NewHistoryManager loads the persisted history. A failed load leaves the
// history empty and is available from LoadErr.
func NewHistoryManager(ctx context.Context, repo repository.ClipHistoryRepository, maxItems int) *HistoryManager {
	log := logging.FromContext(ctx)

	if maxItems < 1 {
		maxItems = DefaultMaxItems
	}

	m := &HistoryManager{
		repo:     repo,
		maxItems: maxItems,
		now:      time.Now,
	}

	entries, err := repo.Load(ctx)
	if err != nil {
		m.loadErr = err
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Msg("no history yet")
		} else {
			log.Error().Err(err).Int("kept", len(entries)).Msg("failed to load history")
		}
	}

	m.entries = slices.Clone(entries)
	if len(m.entries) > m.maxItems {
		m.entries = m.entries[:m.maxItems]
	}

	log.Debug().Int("entries", len(m.entries)).Int("max_items", m.maxItems).Msg("history manager ready")
	return m
}

// LoadErr returns the error of the initial load, if it failed.
func (m *HistoryManager) LoadErr() error {
	return m.loadErr
}

// Observe records newly copied text. Text equal to an existing entry's
// content promotes that entry to the front and counts the copy; new text
// becomes a new front entry and the oldest entries beyond the bound are
// evicted. The in-memory history stays mutated even when saving fails.
func (m *HistoryManager) Observe(ctx context.Context, text string, opts ...ObserveOption) error {
	if text == "" {
		return ErrEmptyContent
	}

	var o observeOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := logging.FromContext(ctx)

	if idx := m.indexOfContent(text); idx >= 0 {
		entry := m.entries[idx]
		entry.Touch()
		m.entries = slices.Delete(m.entries, idx, idx+1)
		m.entries = slices.Insert(m.entries, 0, entry)

		log.Debug().
			Str("entry_id", entry.ID.String()).
			Int("access_count", entry.AccessCount).
			Msg("promoted duplicate clip")
		return m.commit(ctx)
	}

	entry := entity.NewClipEntryAt(text, m.now())
	entry.SourceApp = o.sourceApp
	m.entries = slices.Insert(m.entries, 0, entry)
	evicted := m.truncate()

	log.Debug().
		Str("entry_id", entry.ID.String()).
		Int("evicted", evicted).
		Msg("recorded new clip")
	return m.commit(ctx)
}

// Remove deletes the entry with id. A missing id is not an error; the
// history is persisted either way.
func (m *HistoryManager) Remove(ctx context.Context, id uuid.UUID) error {
	ctx = logging.WithEntry(ctx, id)

	before := len(m.entries)
	m.entries = slices.DeleteFunc(m.entries, func(e entity.ClipEntry) bool {
		return e.ID == id
	})

	logging.FromContext(ctx).Debug().
		Bool("found", len(m.entries) < before).
		Msg("remove clip")
	return m.commit(ctx)
}

// Clear empties the history and persists the empty result.
func (m *HistoryManager) Clear(ctx context.Context) error {
	m.entries = nil
	logging.FromContext(ctx).Info().Msg("clipboard history cleared")
	return m.commit(ctx)
}

// Entries returns a snapshot of the history, newest first.
func (m *HistoryManager) Entries() []entity.ClipEntry {
	return slices.Clone(m.entries)
}

// Len returns the number of entries.
func (m *HistoryManager) Len() int {
	return len(m.entries)
}

// Entry returns the entry at index.
func (m *HistoryManager) Entry(index int) (entity.ClipEntry, bool) {
	if index < 0 || index >= len(m.entries) {
		return entity.ClipEntry{}, false
	}
	return m.entries[index], true
}

// MaxItems returns the current history bound.
func (m *HistoryManager) MaxItems() int {
	return m.maxItems
}

// SetMaxItems changes the history bound. Shrinking below the current
// length evicts the oldest entries and persists.
func (m *HistoryManager) SetMaxItems(ctx context.Context, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxItems, n)
	}
	if n == m.maxItems {
		return nil
	}

	m.maxItems = n
	evicted := m.truncate()
	logging.FromContext(ctx).Info().Int("max_items", n).Int("evicted", evicted).Msg("history bound changed")

	if evicted == 0 {
		return nil
	}
	return m.commit(ctx)
}

// OnChange registers fn to receive a snapshot after every mutation.
func (m *HistoryManager) OnChange(fn func([]entity.ClipEntry)) {
	m.listeners = append(m.listeners, fn)
}

func (m *HistoryManager) indexOfContent(text string) int {
	return slices.IndexFunc(m.entries, func(e entity.ClipEntry) bool {
		return e.HasContent(text)
	})
}

// truncate drops entries beyond the bound and returns how many were dropped.
func (m *HistoryManager) truncate() int {
	if len(m.entries) <= m.maxItems {
		return 0
	}
	evicted := len(m.entries) - m.maxItems
	m.entries = slices.Delete(m.entries, m.maxItems, len(m.entries))
	return evicted
}

// commit persists the history and notifies listeners.
func (m *HistoryManager) commit(ctx context.Context) error {
	snapshot := m.Entries()
	for _, fn := range m.listeners {
		fn(snapshot)
	}

	if err := m.repo.Save(ctx, snapshot); err != nil {
		logging.FromContext(ctx).Error().Err(err).Int("entries", len(snapshot)).Msg("failed to save history")
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

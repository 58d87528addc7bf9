// Package filestore persists the clipboard history as a single encrypted file.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bnema/pastor/internal/domain/entity"
	"github.com/bnema/pastor/internal/domain/repository"
	perrors "github.com/bnema/pastor/internal/errors"
	"github.com/bnema/pastor/internal/infrastructure/codec"
	"github.com/bnema/pastor/internal/infrastructure/keyring"
	"github.com/bnema/pastor/internal/logging"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600

	// legacyEntrySpacing separates the synthetic timestamps given to
	// migrated legacy entries so their order survives.
	legacyEntrySpacing = time.Minute
)

// ErrMigrationNotSaved marks a Load that read legacy history but could not
// rewrite it in the current format. The returned entries are still valid.
var ErrMigrationNotSaved = errors.New("legacy history migrated in memory but not saved")

// KeySource provides the history encryption key.
type KeySource interface {
	GetOrCreateKey(ctx context.Context) (keyring.SymmetricKey, error)
	DeleteKey(ctx context.Context) error
}

// Store is the encrypted, file-backed clipboard history repository.
type Store struct {
	dir   string
	name  string
	codec *codec.Codec
	keys  KeySource
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for migrated entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store writing dir/name. dir is created on first save.
func New(dir, name string, c *codec.Codec, keys KeySource, opts ...Option) *Store {
	s := &Store{
		dir:   dir,
		name:  name,
		codec: c,
		keys:  keys,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.name)
}

// Size returns the size of the backing file in bytes.
func (s *Store) Size() (int64, error) {
	info, err := os.Stat(s.Path())
	if err != nil {
		return 0, perrors.NewStorage("stat history file", err)
	}
	return info.Size(), nil
}

// LogSize logs the backing file size in human-readable form.
func (s *Store) LogSize(ctx context.Context) {
	log := logging.FromContext(ctx)
	size, err := s.Size()
	if err != nil {
		log.Debug().Str("path", s.Path()).Msg("history file not present yet")
		return
	}
	log.Info().Str("path", s.Path()).Str("size", humanize.Bytes(uint64(size))).Msg("history storage size")
}

// loadAttempt decodes blob in one supported format.
// migrate is true when the result must be rewritten in the current format.
type loadAttempt struct {
	format string
	decode func(blob []byte, key keyring.SymmetricKey) (entries []entity.ClipEntry, migrate bool, err error)
}

func (s *Store) attempts() []loadAttempt {
	return []loadAttempt{
		{format: "current", decode: s.decodeCurrent},
		{format: "legacy", decode: s.decodeLegacy},
	}
}

func (s *Store) decodeCurrent(blob []byte, key keyring.SymmetricKey) ([]entity.ClipEntry, bool, error) {
	entries, err := s.codec.Open(blob, key)
	return entries, false, err
}

func (s *Store) decodeLegacy(blob []byte, key keyring.SymmetricKey) ([]entity.ClipEntry, bool, error) {
	texts, err := s.codec.OpenLegacy(blob, key)
	if err != nil {
		return nil, false, err
	}

	now := s.now()
	entries := make([]entity.ClipEntry, 0, len(texts))
	for i, text := range texts {
		if text == "" {
			continue
		}
		entries = append(entries, entity.NewClipEntryAt(text, now.Add(-time.Duration(i)*legacyEntrySpacing)))
	}
	return entries, true, nil
}

// Load reads the history, trying the current format first and the legacy
// string list second. Legacy history is rewritten in the current format
// before Load returns.
func (s *Store) Load(ctx context.Context) ([]entity.ClipEntry, error) {
	log := logging.FromContext(ctx)

	blob, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, perrors.NewStorage("read history file", err)
	}

	key, err := s.keys.GetOrCreateKey(ctx)
	if err != nil {
		return nil, err
	}

	var failures []error
	for _, attempt := range s.attempts() {
		entries, migrate, err := attempt.decode(blob, key)
		if err != nil {
			log.Debug().Err(err).Str("format", attempt.format).Msg("history format attempt failed")
			failures = append(failures, fmt.Errorf("%s format: %w", attempt.format, err))
			continue
		}

		if !migrate {
			log.Debug().Int("entries", len(entries)).Msg("history loaded")
			return entries, nil
		}

		log.Info().Int("entries", len(entries)).Msg("migrating legacy history")
		if err := s.Save(ctx, entries); err != nil {
			return entries, fmt.Errorf("%w: %w", ErrMigrationNotSaved, err)
		}
		return entries, nil
	}

	return nil, errors.Join(failures...)
}

// Save seals entries and atomically replaces the backing file.
func (s *Store) Save(ctx context.Context, entries []entity.ClipEntry) error {
	key, err := s.keys.GetOrCreateKey(ctx)
	if err != nil {
		return err
	}

	blob, err := s.codec.Seal(entries, key)
	if err != nil {
		return err
	}

	if err := s.writeAtomic(blob); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Int("entries", len(entries)).Int("bytes", len(blob)).Msg("history saved")
	return nil
}

// DeleteAll removes the backing file and the encryption key.
func (s *Store) DeleteAll(ctx context.Context) error {
	var errs []error
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		errs = append(errs, perrors.NewStorage("remove history file", err))
	}
	if err := s.keys.DeleteKey(ctx); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		logging.FromContext(ctx).Info().Str("path", s.Path()).Msg("history and key deleted")
	}
	return errors.Join(errs...)
}

// writeAtomic writes data to a temp file next to the target, syncs it and
// renames it over the target so readers see either the old or the new file.
func (s *Store) writeAtomic(data []byte) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return perrors.NewStorage("create history directory", err)
	}

	tmp, err := os.CreateTemp(s.dir, s.name+".*.tmp")
	if err != nil {
		return perrors.NewStorage("create temp file", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return perrors.NewStorage("write temp file", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		cleanup()
		return perrors.NewStorage("chmod temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return perrors.NewStorage("sync temp file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return perrors.NewStorage("close temp file", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, s.Path()); err != nil {
		_ = os.Remove(tmpPath)
		return perrors.NewStorage("replace history file", err)
	}

	syncDir(s.dir)
	return nil
}

// syncDir flushes the directory entry of a rename (best-effort).
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}

var _ repository.ClipHistoryRepository = (*Store)(nil)

package contactbook

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// ErrNoContacts is returned when the data file has not been created yet.
var ErrNoContacts = errors.New("no contacts yet")

// Store owns the data file. Every operation reads the whole collection and
// add rewrites it; nothing is cached between calls.
type Store struct {
	path   string
	atomic bool
	logger zerolog.Logger
}

type StoreOption func(*Store)

// WithLogger sets the logger used for debug events.
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithAtomicWrite controls whether saves go through a temp file and rename.
func WithAtomicWrite(atomic bool) StoreOption {
	return func(s *Store) { s.atomic = atomic }
}

func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:   path,
		atomic: true,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenStore resolves the data file from cfg and returns a store over it.
func OpenStore(cfg *Config, logger zerolog.Logger) (*Store, error) {
	path, err := cfg.DataFile()
	if err != nil {
		return nil, err
	}
	return NewStore(path, WithLogger(logger), WithAtomicWrite(cfg.AtomicWrite)), nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored contacts in insertion order. It returns
// ErrNoContacts if the data file does not exist.
func (s *Store) Load() ([]Contact, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoContacts
		}
		return nil, fmt.Errorf("failed to read contact data file: %w", err)
	}
	contacts, err := UnmarshalContacts(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	s.logger.Debug().
		Str("path", s.path).
		Int("bytes", len(data)).
		Int("count", len(contacts)).
		Msg("loaded contacts")
	return contacts, nil
}

func (s *Store) List() ([]Contact, error) {
	return s.Load()
}

func (s *Store) Count() (int, error) {
	contacts, err := s.Load()
	if err != nil {
		return 0, err
	}
	return len(contacts), nil
}

// Append adds c to the end of the collection and rewrites the data file.
// A missing file starts an empty collection.
func (s *Store) Append(c Contact) error {
	contacts, err := s.Load()
	if err != nil && !errors.Is(err, ErrNoContacts) {
		return err
	}
	contacts = append(contacts, c)
	return s.save(contacts)
}

func (s *Store) save(contacts []Contact) error {
	var buf bytes.Buffer
	if err := EncodeContacts(&buf, contacts); err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}
	write := writeFile
	if s.atomic {
		write = writeFileAtomic
	}
	if err := write(s.path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save contact to file: %w", err)
	}
	s.logger.Debug().
		Str("path", s.path).
		Int("bytes", buf.Len()).
		Int("count", len(contacts)).
		Bool("atomic", s.atomic).
		Msg("saved contacts")
	return nil
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}

package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/booking-reports/pkg/models/domain"
)

// Kind classifies storage failures so callers can tell an absent document
// from a corrupt one.
type Kind int

const (
	KindNotFound Kind = iota
	KindRead
	KindParse
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindRead:
		return "read"
	case KindParse:
		return "parse"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonfile: %s error on %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err marks an absent document.
func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNotFound
}

// Load reads a JSON array document into a slice of T. An absent file is not
// an error: it loads as an empty collection. Other read failures surface as
// KindRead, malformed content as KindParse, instead of being swallowed.
func Load[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, &Error{Kind: KindRead, Path: path, Err: err}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &Error{Kind: KindParse, Path: path, Err: err}
	}
	return records, nil
}

// Save serializes records as 2-space-indented JSON, creating parent
// directories as needed and overwriting any existing file.
func Save(path string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &Error{Kind: KindWrite, Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &Error{Kind: KindWrite, Path: path, Err: err}
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &Error{Kind: KindWrite, Path: path, Err: err}
	}
	return nil
}

type Settings struct {
	DataDir string
}

// Store resolves the well-known document names inside a data directory.
type Store struct {
	settings Settings
}

func NewStore(settings Settings) *Store {
	return &Store{settings: settings}
}

func (s *Store) OrdersPath() string {
	return filepath.Join(s.settings.DataDir, "orders.json")
}

func (s *Store) RoomsPath() string {
	return filepath.Join(s.settings.DataDir, "rooms.json")
}

func (s *Store) Orders() ([]domain.Order, error) {
	return Load[domain.Order](s.OrdersPath())
}

func (s *Store) Rooms() ([]domain.Room, error) {
	return Load[domain.Room](s.RoomsPath())
}

func (s *Store) SaveOrders(orders []domain.Order) error {
	return Save(s.OrdersPath(), orders)
}

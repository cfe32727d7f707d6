package store

import (
	"fmt"

	"github.com/stevemurr/game-library/game"
)

// New creates a Store based on the backend name and loads seed into it when
// it is empty.
//
// Supported backends:
//
//	"memory" - slice in process memory (default)
//	"sqlite" - SQLite database at dsn (in-memory when dsn is empty)
func New(backend, dsn string, seed []game.Game) (Store, error) {
	switch backend {
	case "memory", "":
		return NewMemoryStore(seed...), nil
	case "sqlite":
		if dsn == "" {
			dsn = DefaultSqliteDSN
		}
		s, err := NewSqliteStore(dsn)
		if err != nil {
			return nil, err
		}
		if err := seedIfEmpty(s, seed); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: memory, sqlite)", backend)
	}
}

func seedIfEmpty(s Store, seed []game.Game) error {
	n, err := s.Len()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, g := range seed {
		if _, err := s.Append(g); err != nil {
			return fmt.Errorf("seed store: %w", err)
		}
	}
	return nil
}

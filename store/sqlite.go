package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/stevemurr/game-library/game"
)

// DefaultSqliteDSN keeps the database in process memory. Each store opened
// with it gets its own database.
const DefaultSqliteDSN = ":memory:"

// SqliteStore keeps the sequence in a single SQLite table. Position is the
// rank of a row by its autoincrement seq column, so deleting a row shifts the
// positions of every later row down by one.
//
// Table:
//
//	games(seq, title, genre, platform, year, developer)  PRIMARY KEY (seq)
type SqliteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSqliteStore opens dsn with the "sqlite3" driver, which the caller must
// register.
func NewSqliteStore(dsn string) (*SqliteStore, error) {
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// A second connection to an in-memory database would see a different database.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS games (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		genre TEXT NOT NULL,
		platform TEXT NOT NULL,
		year INTEGER NOT NULL,
		developer TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create games table: %w", err)
	}
	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}

type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

const selectColumns = "seq, title, genre, platform, year, developer"

func scanGame(row interface{ Scan(...any) error }) (int64, game.Game, error) {
	var (
		seq int64
		g   game.Game
	)
	err := row.Scan(&seq, &g.Title, &g.Genre, &g.Platform, &g.Year, &g.Developer)
	return seq, g, err
}

// at returns the row currently at position index.
func at(q querier, index int) (int64, game.Game, error) {
	if index < 0 {
		return 0, game.Game{}, game.ErrNotFound
	}
	seq, g, err := scanGame(q.QueryRow(
		"SELECT "+selectColumns+" FROM games ORDER BY seq LIMIT 1 OFFSET ?", index,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return 0, game.Game{}, game.ErrNotFound
	}
	if err != nil {
		return 0, game.Game{}, fmt.Errorf("select game %d: %w", index, err)
	}
	return seq, g, nil
}

func (s *SqliteStore) List() ([]game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.Query("SELECT " + selectColumns + " FROM games ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()
	result := []game.Game{}
	for rows.Next() {
		_, g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

func (s *SqliteStore) Get(index int) (game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, g, err := at(s.db, index)
	return g, err
}

func (s *SqliteStore) Append(g game.Game) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(
		"INSERT INTO games (title, genre, platform, year, developer) VALUES (?, ?, ?, ?, ?)",
		g.Title, g.Genre, g.Platform, g.Year, g.Developer,
	); err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	var n int
	if err := tx.QueryRow("SELECT COUNT(*) FROM games").Scan(&n); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n - 1, nil
}

func (s *SqliteStore) ReplaceAt(index int, g game.Game) (game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.db.Begin()
	if err != nil {
		return game.Game{}, err
	}
	defer tx.Rollback()
	seq, prev, err := at(tx, index)
	if err != nil {
		return game.Game{}, err
	}
	if _, err := tx.Exec(
		"UPDATE games SET title = ?, genre = ?, platform = ?, year = ?, developer = ? WHERE seq = ?",
		g.Title, g.Genre, g.Platform, g.Year, g.Developer, seq,
	); err != nil {
		return game.Game{}, fmt.Errorf("update game %d: %w", index, err)
	}
	return prev, tx.Commit()
}

func (s *SqliteStore) RemoveAt(index int) (game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.db.Begin()
	if err != nil {
		return game.Game{}, err
	}
	defer tx.Rollback()
	seq, removed, err := at(tx, index)
	if err != nil {
		return game.Game{}, err
	}
	if _, err := tx.Exec("DELETE FROM games WHERE seq = ?", seq); err != nil {
		return game.Game{}, fmt.Errorf("delete game %d: %w", index, err)
	}
	return removed, tx.Commit()
}

func (s *SqliteStore) Len() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM games").Scan(&n); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return n, nil
}

// Package store defines the game collection interface and its backends.
package store

import "github.com/stevemurr/game-library/game"

// Store is an ordered, mutable sequence of games addressed by zero-based
// position. Every method that takes an index returns game.ErrNotFound when the
// index is outside [0, Len()).
type Store interface {
	// List returns the current sequence in order.
	List() ([]game.Game, error)

	// Get returns the game at index.
	Get(index int) (game.Game, error)

	// Append adds g at the end and returns its index.
	Append(g game.Game) (int, error)

	// ReplaceAt overwrites the game at index and returns the previous value.
	ReplaceAt(index int, g game.Game) (game.Game, error)

	// RemoveAt deletes the game at index, shifting later games down by one,
	// and returns the removed value.
	RemoveAt(index int) (game.Game, error)

	// Len returns the number of games.
	Len() (int, error)
}

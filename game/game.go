// Package game defines the video-game record, the built-in seed library and
// the pure rules applied to records: payload validation, genre filtering and
// positional index parsing.
package game

import (
	"strconv"
)

// Game is a single library entry. It carries no identifier of its own; a
// game is addressed by its current position in the collection.
type Game struct {
	Title     string `json:"title" yaml:"title"`
	Genre     string `json:"genre" yaml:"genre"`
	Platform  string `json:"platform" yaml:"platform"`
	Year      int    `json:"year" yaml:"year"`
	Developer string `json:"developer" yaml:"developer"`
}

// Seed returns a fresh copy of the built-in library loaded at startup.
func Seed() []Game {
	return []Game{
		{Title: "The Legend of Zelda: Breath of the Wild", Genre: "Adventure", Platform: "Nintendo Switch", Year: 2017, Developer: "Nintendo"},
		{Title: "God of War", Genre: "Action", Platform: "PlayStation 4", Year: 2018, Developer: "Santa Monica Studio"},
		{Title: "Hollow Knight", Genre: "Metroidvania", Platform: "PC", Year: 2017, Developer: "Team Cherry"},
		{Title: "Forza Horizon 5", Genre: "Racing", Platform: "Xbox Series X|S", Year: 2021, Developer: "Playground Games"},
		{Title: "Stardew Valley", Genre: "Simulation", Platform: "Nintendo Switch", Year: 2016, Developer: "ConcernedApe"},
		{Title: "Elden Ring", Genre: "Action RPG", Platform: "PC/PS5/XSX", Year: 2022, Developer: "FromSoftware"},
		{Title: "Baldur's Gate 3", Genre: "RPG", Platform: "PC/PS5/XSX", Year: 2023, Developer: "Larian Studios"},
	}
}

// ParseIndex converts a path segment into a position within a collection of
// the given length. Malformed, negative and out-of-range values all yield
// ErrNotFound.
func ParseIndex(raw string, length int) (int, error) {
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= length {
		return 0, ErrNotFound
	}
	return i, nil
}

package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stevemurr/game-library/game"
)

// LoadSeed reads the initial library from a YAML or JSON file. The file holds
// either a list of games or a mapping with a "games" list:
//
//	games:
//	  - title: Hollow Knight
//	    genre: Metroidvania
//	    platform: PC
//	    year: 2017
//	    developer: Team Cherry
//
// Every record must pass game.Validate.
func LoadSeed(path string) ([]game.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if m, ok := doc.(map[string]any); ok {
		doc = m["games"]
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("seed file %s: expected a list of games", path)
	}
	games := make([]game.Game, 0, len(items))
	for i, item := range items {
		payload, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("seed file %s: record %d is not a mapping", path, i)
		}
		g, err := game.Validate(payload)
		if err != nil {
			return nil, fmt.Errorf("seed file %s: record %d: %w", path, i, err)
		}
		games = append(games, g)
	}
	return games, nil
}

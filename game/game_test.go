package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevemurr/game-library/game"
)

func validPayload() map[string]any {
	return map[string]any{
		"title":     "X",
		"genre":     "Y",
		"platform":  "Z",
		"year":      float64(2020),
		"developer": "W",
	}
}

func TestValidate(t *testing.T) {
	g, err := game.Validate(validPayload())
	require.NoError(t, err)
	assert.Equal(t, game.Game{Title: "X", Genre: "Y", Platform: "Z", Year: 2020, Developer: "W"}, g)
}

func TestValidateIgnoresExtraKeys(t *testing.T) {
	p := validPayload()
	p["rating"] = "M"
	_, err := game.Validate(p)
	assert.NoError(t, err)
}

func TestValidateMissingField(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(map[string]any)
		field string
	}{
		{"empty payload", func(p map[string]any) { clear(p) }, "title"},
		{"absent developer", func(p map[string]any) { delete(p, "developer") }, "developer"},
		{"empty genre", func(p map[string]any) { p["genre"] = "" }, "genre"},
		{"null platform", func(p map[string]any) { p["platform"] = nil }, "platform"},
		{"zero year", func(p map[string]any) { p["year"] = float64(0) }, "year"},
		{"false title", func(p map[string]any) { p["title"] = false }, "title"},
		{"first in order wins", func(p map[string]any) {
			delete(p, "developer")
			delete(p, "platform")
		}, "platform"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayload()
			tc.edit(p)
			_, err := game.Validate(p)
			var missing *game.MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.field, missing.Field)
		})
	}
}

func TestValidateInvalidField(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"numeric title", "title", float64(7)},
		{"string year", "year", "2020"},
		{"fractional year", "year", 2020.5},
		{"year beyond int range", "year", 1e20},
		{"negative year beyond int range", "year", -1e20},
		{"object developer", "developer", map[string]any{"name": "W"}},
		{"true platform", "platform", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayload()
			p[tc.key] = tc.value
			_, err := game.Validate(p)
			var invalid *game.InvalidFieldError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.key, invalid.Field)
		})
	}
}

func TestFilterByGenre(t *testing.T) {
	seed := game.Seed()

	t.Run("case-insensitive substring", func(t *testing.T) {
		got, err := game.FilterByGenre(seed, "rpg")
		require.NoError(t, err)
		assert.Equal(t, []game.Game{seed[5], seed[6]}, got)

		got, err = game.FilterByGenre(seed, "ACTION")
		require.NoError(t, err)
		assert.Equal(t, []game.Game{seed[1], seed[5]}, got)
	})

	t.Run("no match is empty not nil", func(t *testing.T) {
		got, err := game.FilterByGenre(seed, "puzzle")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("blank needle", func(t *testing.T) {
		for _, needle := range []string{"", "   ", "\t"} {
			_, err := game.FilterByGenre(seed, needle)
			assert.ErrorIs(t, err, game.ErrMissingQueryParam)
		}
	})
}

func TestParseIndex(t *testing.T) {
	i, err := game.ParseIndex("3", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	for _, raw := range []string{"5", "99", "-1", "abc", "1.5", "", " 2"} {
		_, err := game.ParseIndex(raw, 5)
		assert.ErrorIs(t, err, game.ErrNotFound, "raw %q", raw)
	}
}

func TestSeedIsCopy(t *testing.T) {
	a := game.Seed()
	a[0].Title = "changed"
	assert.NotEqual(t, "changed", game.Seed()[0].Title)
}

package game

import "strings"

// FilterByGenre returns the games whose genre contains needle, ignoring case.
// Order is preserved and the result is never nil. A needle that is blank
// after trimming yields ErrMissingQueryParam.
func FilterByGenre(games []Game, needle string) ([]Game, error) {
	if strings.TrimSpace(needle) == "" {
		return nil, ErrMissingQueryParam
	}
	needle = strings.ToLower(needle)
	matched := make([]Game, 0, len(games))
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Genre), needle) {
			matched = append(matched, g)
		}
	}
	return matched, nil
}

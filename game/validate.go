package game

import (
	"errors"
	"math"

	"github.com/stevemurr/game-library/schema"
)

// RequiredFields lists the payload keys every game must carry, in the order
// they are checked.
var RequiredFields = []string{"title", "genre", "platform", "year", "developer"}

var payloadSchema = schema.Schema{
	{Name: "title", Type: schema.String},
	{Name: "genre", Type: schema.String},
	{Name: "platform", Type: schema.String},
	{Name: "year", Type: schema.Integer},
	{Name: "developer", Type: schema.String},
}

// Validate turns a decoded request payload into a Game.
//
// Required fields are checked first, in RequiredFields order: a field that is
// absent, null, empty, zero or false yields a *MissingFieldError. A zero year
// is therefore rejected. Field types are checked afterwards and yield an
// *InvalidFieldError. Year must be a whole number that fits in an int, so
// 2020.5 and 1e20 are rejected rather than truncated. Keys outside
// RequiredFields are ignored.
func Validate(payload map[string]any) (Game, error) {
	for _, name := range RequiredFields {
		if falsy(payload[name]) {
			return Game{}, &MissingFieldError{Field: name}
		}
	}
	if err := schema.Check(payloadSchema, payload); err != nil {
		var fe *schema.FieldError
		if errors.As(err, &fe) {
			return Game{}, &InvalidFieldError{Field: fe.Field, Err: err}
		}
		return Game{}, err
	}

	year, _ := schema.ToFloat(payload["year"])
	return Game{
		Title:     payload["title"].(string),
		Genre:     payload["genre"].(string),
		Platform:  payload["platform"].(string),
		Year:      int(year),
		Developer: payload["developer"].(string),
	}, nil
}

func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0 || math.IsNaN(x)
	}
	if f, ok := schema.ToFloat(v); ok {
		return f == 0
	}
	return false
}

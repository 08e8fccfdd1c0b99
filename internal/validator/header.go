// Package validator provides schema validation for the input stream header.
package validator

import (
	"errors"
	"fmt"

	"csvnorm/internal/models"
)

// Header validation errors.
var (
	ErrEmptyHeader   = errors.New("input has no header row")
	ErrMissingColumn = errors.New("missing required column")
)

// MapHeader checks that the header declares every required input column and
// returns a column-name-to-position mapping. Column order is whatever the
// input declares; lookups downstream are by name. The first occurrence wins
// if a name repeats.
func MapHeader(header []string) (map[string]int, error) {
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}

	columns := make(map[string]int, len(header))

	for i, name := range header {
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	for _, name := range models.InputFields {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	return columns, nil
}

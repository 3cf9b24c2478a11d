// Package query derives filtered views of small in-memory record lists.
//
// A Query combines a free-text term with one categorical filter. Both
// constraints must hold for a record to be kept, and the result always
// preserves source order.
package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// All is the filter sentinel meaning "no category constraint".
const All = "All"

var ErrUnknownFilter = errors.New("unknown filter")

// Query is the user-controlled part of a list screen.
type Query struct {
	Term   string
	Filter string
}

// Normalize clears a whitespace-only term and maps an empty filter to All.
// Any other term is kept as typed, surrounding spaces included.
func Normalize(q Query) Query {
	if strings.TrimSpace(q.Term) == "" {
		q.Term = ""
	}
	q.Filter = strings.TrimSpace(q.Filter)
	if q.Filter == "" {
		q.Filter = All
	}
	return q
}

// Spec tells the engine which fields of T take part in a Query.
type Spec[T any] struct {
	// Category returns the field the filter is matched against.
	// Nil means the record type has no categorical filter.
	Category func(T) string
	// Fields are the free-text fields; a record matches the term when any
	// of them contains it.
	Fields []func(T) string
	// Filters is the enumerated filter set, including All.
	Filters []string
}

// Validate rejects filters outside the enumerated set.
func (s Spec[T]) Validate(q Query) error {
	q = Normalize(q)
	if q.Filter == All {
		return nil
	}
	if s.Category == nil || !slices.Contains(s.Filters, q.Filter) {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, q.Filter)
	}
	return nil
}

// Apply returns the records of src matching q, in source order.
// src is never modified.
//
// The category test is a case-sensitive substring match, so the filter
// "Residential" keeps every record whose category field contains that
// word. The term test is a case-insensitive substring match over Fields.
func Apply[T any](src []T, q Query, spec Spec[T]) []T {
	q = Normalize(q)
	term := strings.ToLower(q.Term)

	out := make([]T, 0, len(src))
	for _, rec := range src {
		if !matchesFilter(rec, q.Filter, spec) {
			continue
		}
		if term != "" && !matchesTerm(rec, term, spec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesFilter[T any](rec T, filter string, spec Spec[T]) bool {
	if filter == All || spec.Category == nil {
		return true
	}
	return strings.Contains(spec.Category(rec), filter)
}

func matchesTerm[T any](rec T, lowerTerm string, spec Spec[T]) bool {
	for _, field := range spec.Fields {
		if strings.Contains(strings.ToLower(field(rec)), lowerTerm) {
			return true
		}
	}
	return false
}

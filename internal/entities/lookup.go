package entities

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/level-manager/internal/errors"
)

// MinNameLength is the shortest query, and the shortest entity name, that
// takes part in loose name matching.
const MinNameLength = 3

// Named is anything that can be looked up by name
type Named interface {
	GetName() string
}

// MatchesName reports whether query loosely matches name: the query is a
// case-insensitive prefix of the name and both are at least MinNameLength
// characters long.
func MatchesName(name, query string) bool {
	if len(name) < MinNameLength || len(query) < MinNameLength {
		return false
	}
	return strings.HasPrefix(strings.ToLower(name), strings.ToLower(query))
}

// FindByName returns the indices of every item whose name loosely matches query
func FindByName[T Named](items []T, query string) []int {
	var idx []int
	for i, item := range items {
		if MatchesName(item.GetName(), query) {
			idx = append(idx, i)
		}
	}
	return idx
}

// FindUniqueByName resolves query to exactly one item and returns its index.
// kind names the items in error messages ("skill", "attribute").
//
// Returns errors.InvalidArgument for a query shorter than MinNameLength.
// Returns errors.NotFound when nothing matches.
// Returns errors.AmbiguousMatch, listing every match, when more than one does.
func FindUniqueByName[T Named](items []T, query, kind string) (int, error) {
	if len(query) < MinNameLength {
		return -1, errors.InvalidArgumentf("%s name %q is too short (at least %d characters)", kind, query, MinNameLength)
	}

	idx := FindByName(items, query)
	switch len(idx) {
	case 0:
		return -1, errors.NotFoundf("cannot find %s matching %q", kind, query).
			WithMeta("query", query)
	case 1:
		return idx[0], nil
	}

	names := make([]string, len(idx))
	for i, j := range idx {
		names[i] = items[j].GetName()
	}
	return -1, errors.AmbiguousMatch(
		fmt.Sprintf("multiple %ss match %q (%s)", kind, query, strings.Join(names, ", ")),
		names,
	).WithMeta("query", query)
}

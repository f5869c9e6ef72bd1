package hateoas

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// LinkRelation identifies the semantic role of a link.
type LinkRelation string

// IANA link relations used for page navigation.
const (
	RelSelf  LinkRelation = "self"
	RelFirst LinkRelation = "first"
	RelPrev  LinkRelation = "prev"
	RelNext  LinkRelation = "next"
	RelLast  LinkRelation = "last"
)

var _ianaRelations = []LinkRelation{RelSelf, RelFirst, RelPrev, RelNext, RelLast}

// IsIana reports whether r is one of the registered navigation relations.
func (r LinkRelation) IsIana() bool {
	return slices.ContainsFunc(_ianaRelations, func(known LinkRelation) bool {
		return strings.EqualFold(string(known), string(r))
	})
}

// ParseLinkRelation resolves a relation name against the registry. Unknown
// names are rejected with a hint to the closest registered relation.
func ParseLinkRelation(s string) (LinkRelation, error) {
	rel := LinkRelation(strings.ToLower(strings.TrimSpace(s)))
	if rel.IsIana() {
		return rel, nil
	}

	names := lo.Map(_ianaRelations, func(r LinkRelation, _ int) string {
		return string(r)
	})

	return "", fmt.Errorf("unknown link relation '%s'. closest: '%s': %w", s, closestAlias(string(rel), names), ErrInvalidArgument)
}

package hateoas

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Link is a hypermedia reference tagged with a relation.
type Link struct {
	Rel  LinkRelation `json:"rel"`
	Href string       `json:"href"`
}

// NewLink creates a Link pointing at href with the given relation.
func NewLink(href string, rel LinkRelation) Link {
	return Link{
		Rel:  rel,
		Href: href,
	}
}

// HasRel reports whether the link carries rel. Relations are compared
// case-insensitively.
func (l Link) HasRel(rel LinkRelation) bool {
	return strings.EqualFold(string(l.Rel), string(rel))
}

// String - implements fmt.Stringer. Uses the RFC 8288 Link header form.
func (l Link) String() string {
	return fmt.Sprintf("<%s>;rel=%q", l.Href, string(l.Rel))
}

var _ fmt.Stringer = Link{}

// Links is an ordered list of links.
type Links []Link

// FirstByRel returns the first link with the given relation in insertion
// order.
func (ls Links) FirstByRel(rel LinkRelation) (Link, bool) {
	return lo.Find(ls, func(l Link) bool {
		return l.HasRel(rel)
	})
}

// HasRel reports whether any link carries rel.
func (ls Links) HasRel(rel LinkRelation) bool {
	_, ok := ls.FirstByRel(rel)
	return ok
}

// String renders all links as a Link header value.
func (ls Links) String() string {
	return strings.Join(lo.Map(ls, func(l Link, _ int) string {
		return l.String()
	}), ",")
}

package hateoas

import "slices"

// PagedModel is one page of domain items together with its PageMetadata and
// navigation links.
//
// Links may be appended during assembly by a single writer; after that the
// model should be treated as read-only.
type PagedModel[T any] struct {
	content  []T
	metadata PageMetadata
	links    Links
}

// NewPagedModel creates a PagedModel. content may be nil or empty.
func NewPagedModel[T any](content []T, metadata PageMetadata, links ...Link) *PagedModel[T] {
	return &PagedModel[T]{
		content:  content,
		metadata: metadata,
		links:    slices.Clone(Links(links)),
	}
}

// Add appends links keeping insertion order.
func (m *PagedModel[T]) Add(links ...Link) *PagedModel[T] {
	if m == nil {
		m = new(PagedModel[T])
	}

	m.links = append(m.links, links...)

	return m
}

// NextLink returns the first link with relation RelNext.
func (m *PagedModel[T]) NextLink() (Link, bool) {
	return m.Link(RelNext)
}

// PreviousLink returns the first link with relation RelPrev.
func (m *PagedModel[T]) PreviousLink() (Link, bool) {
	return m.Link(RelPrev)
}

// Link returns the first link with the given relation.
func (m *PagedModel[T]) Link(rel LinkRelation) (Link, bool) {
	if m == nil {
		return Link{}, false
	}

	return m.links.FirstByRel(rel)
}

// Content returns the page items.
func (m *PagedModel[T]) Content() []T {
	if m == nil {
		return nil
	}

	return m.content
}

// Metadata returns the page metadata.
func (m *PagedModel[T]) Metadata() PageMetadata {
	if m == nil {
		return PageMetadata{}
	}

	return m.metadata
}

// Links returns a copy of the links in insertion order.
func (m *PagedModel[T]) Links() Links {
	if m == nil {
		return nil
	}

	return slices.Clone(m.links)
}

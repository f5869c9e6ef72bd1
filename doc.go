// Package hateoas provides paged hypermedia models.
//
// Overview
//
// A PagedModel is one page of domain items together with PageMetadata
// (size, number, total elements, total pages) and navigation links tagged
// with IANA relations (first, prev, self, next, last).
//
// Key concepts
//   - PageMetadata: immutable, validated page facts. Total pages are derived
//     from size and total elements unless given explicitly.
//   - Links / LinkRelation: ordered links looked up by relation; the first
//     match in insertion order wins.
//   - PageRequest: zero-indexed page number, size and ordering, applied to
//     GORM queries as ORDER BY / LIMIT / OFFSET.
//   - Config: query parameter names and size limits used to parse requests
//     and to build navigation links.
//   - FetchPage: counts, loads and links one page in a single call.
package hateoas

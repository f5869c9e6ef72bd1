package hateoas

import (
	"net/url"
	"strconv"
)

// PageLinks builds navigation links for the page described by md, relative to
// base. md.Number() is read as zero-indexed.
//
// Links are emitted in the order first, prev, self, next, last; first and
// prev only when a previous page exists, next and last only when a following
// page exists. For a number past the last page, prev points at the last page.
// Query parameters of base other than the page and size parameters are kept
// as-is.
func (c Config) PageLinks(base *url.URL, md PageMetadata) Links {
	if base == nil {
		return nil
	}

	c = c.withDefaults()

	var (
		number  = md.Number()
		links   = make(Links, 0, 5)
		hasPrev = number > 0
		hasNext = number < md.TotalPages()-1
	)

	if hasPrev {
		prev := min(number-1, max(md.TotalPages()-1, 0))
		links = append(links,
			NewLink(c.pageHref(base, 0, md.Size()), RelFirst),
			NewLink(c.pageHref(base, prev, md.Size()), RelPrev),
		)
	}

	links = append(links, NewLink(c.pageHref(base, number, md.Size()), RelSelf))

	if hasNext {
		links = append(links,
			NewLink(c.pageHref(base, number+1, md.Size()), RelNext),
			NewLink(c.pageHref(base, md.TotalPages()-1, md.Size()), RelLast),
		)
	}

	return links
}

func (c Config) pageHref(base *url.URL, page, size int64) string {
	return modifyQuery(base, func(query url.Values) {
		// page is never negative; uint64 keeps one-indexed MaxInt64 from wrapping.
		query.Set(c.PageParameter, strconv.FormatUint(uint64(page)+uint64(c.pageBase()), 10))
		query.Set(c.SizeParameter, strconv.FormatInt(size, 10))
	}).String()
}

func modifyQuery(u *url.URL, mod func(query url.Values)) *url.URL {
	clone := *u
	query := clone.Query()
	mod(query)
	clone.RawQuery = query.Encode()

	return &clone
}

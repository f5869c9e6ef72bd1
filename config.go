package hateoas

import (
	"fmt"
	"net/url"
	"strconv"
)

// Config controls how page requests are read from and written to URLs.
//
// Zero fields fall back to the values of DefaultConfig, so a partially filled
// Config is usable as-is.
type Config struct {
	// PageParameter is the query parameter carrying the page number.
	PageParameter string
	// SizeParameter is the query parameter carrying the page size.
	SizeParameter string
	// SortParameter is the query parameter carrying sort expressions. It may
	// be repeated.
	SortParameter string
	// DefaultPageSize is used when no or a non-positive size is requested.
	DefaultPageSize int
	// MaxPageSize caps the requested size.
	MaxPageSize int
	// OneIndexedParameters makes page numbers in URLs start at 1. Page
	// numbers inside PageRequest and PageMetadata produced by FetchPage stay
	// zero-indexed.
	OneIndexedParameters bool
}

// DefaultConfig returns the "page", "size" and "sort" parameters with
// zero-indexed pages, DefaultPageSize and MaxPageSize.
func DefaultConfig() Config {
	return Config{
		PageParameter:   "page",
		SizeParameter:   "size",
		SortParameter:   "sort",
		DefaultPageSize: DefaultPageSize,
		MaxPageSize:     MaxPageSize,
	}
}

// ParseRequest reads a PageRequest from URL query parameters.
//
// Missing parameters take their defaults. A page number below the first page
// is clamped to it; a size outside (0, MaxPageSize] is normalized. Values that
// are not integers are rejected.
func (c Config) ParseRequest(query url.Values, columnMapping ColumnMapping) (*PageRequest, error) {
	c = c.withDefaults()

	raw := RawPageRequest{
		Page: c.pageBase(),
		Sort: query[c.SortParameter],
	}

	var err error
	if s := query.Get(c.PageParameter); s != "" {
		raw.Page, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid query parameter '%s': %w", c.PageParameter, ErrInvalidArgument)
		}
	}

	if s := query.Get(c.SizeParameter); s != "" {
		raw.Size, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid query parameter '%s': %w", c.SizeParameter, ErrInvalidArgument)
		}
	}

	return raw.Decode(c, columnMapping)
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.PageParameter == "" {
		c.PageParameter = def.PageParameter
	}
	if c.SizeParameter == "" {
		c.SizeParameter = def.SizeParameter
	}
	if c.SortParameter == "" {
		c.SortParameter = def.SortParameter
	}
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = def.DefaultPageSize
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = def.MaxPageSize
	}

	return c
}

func (c Config) pageBase() int {
	if c.OneIndexedParameters {
		return 1
	}

	return 0
}

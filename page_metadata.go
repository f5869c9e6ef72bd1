package hateoas

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned (wrapped) whenever a value cannot be built
// from the supplied arguments.
var ErrInvalidArgument = errors.New("invalid argument")

// PageMetadata describes one page of a larger paginated result set.
//
// PageMetadata is immutable and comparable, so two values built from the same
// fields are equal under ==. The page number is not interpreted: it may be
// zero- or one-indexed depending on the caller's convention.
type PageMetadata struct {
	size          int64
	number        int64
	totalElements int64
	totalPages    int64
}

// NewPageMetadata builds PageMetadata and derives the total number of pages
// as ceil(totalElements / size), or 0 when size is 0.
//
// Example:
//
//	md, _ := NewPageMetadata(5, 0, 16) // md.TotalPages() == 4
func NewPageMetadata(size, number, totalElements int64) (PageMetadata, error) {
	if err := validatePageFields(size, number, totalElements); err != nil {
		return PageMetadata{}, err
	}

	return PageMetadata{
		size:          size,
		number:        number,
		totalElements: totalElements,
		totalPages:    calcTotalPages(totalElements, size),
	}, nil
}

// NewPageMetadataWithTotalPages builds PageMetadata with an explicit total
// page count. totalPages is stored as given and is not checked against
// totalElements and size.
func NewPageMetadataWithTotalPages(size, number, totalElements, totalPages int64) (PageMetadata, error) {
	if err := validatePageFields(size, number, totalElements); err != nil {
		return PageMetadata{}, err
	}

	if totalPages < 0 {
		return PageMetadata{}, fmt.Errorf("total pages must not be negative, got %d: %w", totalPages, ErrInvalidArgument)
	}

	return PageMetadata{
		size:          size,
		number:        number,
		totalElements: totalElements,
		totalPages:    totalPages,
	}, nil
}

func validatePageFields(size, number, totalElements int64) error {
	switch {
	case size < 0:
		return fmt.Errorf("size must not be negative, got %d: %w", size, ErrInvalidArgument)
	case number < 0:
		return fmt.Errorf("number must not be negative, got %d: %w", number, ErrInvalidArgument)
	case totalElements < 0:
		return fmt.Errorf("total elements must not be negative, got %d: %w", totalElements, ErrInvalidArgument)
	}

	return nil
}

func calcTotalPages(totalElements, size int64) int64 {
	if size == 0 {
		return 0
	}

	pages := totalElements / size
	if totalElements%size != 0 {
		pages++
	}

	return pages
}

// Size returns the requested page size.
func (m PageMetadata) Size() int64 {
	return m.size
}

// Number returns the page number.
func (m PageMetadata) Number() int64 {
	return m.number
}

// TotalElements returns the number of elements across all pages.
func (m PageMetadata) TotalElements() int64 {
	return m.totalElements
}

// TotalPages returns the number of pages.
func (m PageMetadata) TotalPages() int64 {
	return m.totalPages
}

// String - implements fmt.Stringer.
func (m PageMetadata) String() string {
	return fmt.Sprintf(
		"Metadata { number: %d, total pages: %d, total elements: %d, size: %d }",
		m.number, m.totalPages, m.totalElements, m.size,
	)
}

var _ fmt.Stringer = PageMetadata{}

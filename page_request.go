package hateoas

import (
	"fmt"
	"math"
	"slices"

	"gorm.io/gorm"
)

// RawPageRequest is intended for API payloads. For proper code generation,
// inline it:
//
//	type MyFilter struct {
//	    Paging RawPageRequest `json:",inline"`
//	}
type RawPageRequest struct {
	// Page - requested page number, in the convention configured by
	// Config.OneIndexedParameters.
	Page int `json:"page"`
	// Size - maximum number of records to return in the response.
	Size int `json:"size"`
	// Sort - sort expressions, see ParseSort.
	Sort []string `json:"sort,omitempty"`
}

// Decode converts RawPageRequest into *PageRequest: the page number is
// clamped at the first page and shifted to zero-indexed, Size is normalized
// with cfg limits and Sort is resolved through columnMapping. Pages whose
// offset does not fit into an int are rejected.
func (r RawPageRequest) Decode(cfg Config, columnMapping ColumnMapping) (*PageRequest, error) {
	cfg = cfg.withDefaults()

	orderings, err := ParseSort(r.Sort, columnMapping)
	if err != nil {
		return nil, err
	}

	page := max(r.Page, cfg.pageBase()) - cfg.pageBase()
	size, _ := IsNormalizedSize(r.Size, cfg.DefaultPageSize, cfg.MaxPageSize)

	if page > math.MaxInt/size {
		return nil, fmt.Errorf("page %d is out of range for size %d: %w", r.Page, size, ErrInvalidArgument)
	}

	return (&PageRequest{
		page: page,
		size: size,
	}).WithSubstitutedSort(orderings...), nil
}

// PageRequest describes a requested page: zero-indexed page number, page
// size and ordering.
type PageRequest struct {
	page int
	size int
	sort Orderings
}

// NewPageRequest returns the first page with DefaultPageSize and no ordering.
func NewPageRequest() *PageRequest {
	return &PageRequest{size: DefaultPageSize}
}

// WithPage sets the zero-indexed page number.
func (r *PageRequest) WithPage(page int) *PageRequest {
	if r == nil {
		r = NewPageRequest()
	}

	r.page = page

	return r
}

// WithSize sets the page size. NormalizeSize is applied.
func (r *PageRequest) WithSize(size int) *PageRequest {
	if r == nil {
		r = NewPageRequest()
	}

	r.size = NormalizeSize(size)

	return r
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (r *PageRequest) WithSubstitutedSort(orderBy ...OrderBy) *PageRequest {
	if r == nil {
		r = NewPageRequest()
	}

	r.sort = nil

	return r.WithSort(orderBy...)
}

// WithSort appends orderings without overwriting existing ones. A column
// that is already sorted on is moved to the end with the new direction.
func (r *PageRequest) WithSort(orderBy ...OrderBy) *PageRequest {
	if r == nil {
		r = NewPageRequest()
	}

	for _, o := range orderBy {
		r.sort = slices.DeleteFunc(r.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})
		r.sort = append(r.sort, o)
	}

	return r
}

// Page returns the zero-indexed page number.
func (r *PageRequest) Page() int {
	if r == nil {
		return 0
	}

	return r.page
}

// Size returns the page size.
func (r *PageRequest) Size() int {
	if r == nil {
		return DefaultPageSize
	}

	return r.size
}

// Sort returns orderings that will be applied to the dataset.
func (r *PageRequest) Sort() Orderings {
	if r == nil {
		return nil
	}

	return r.sort
}

// Offset returns the number of records preceding the requested page.
func (r *PageRequest) Offset() int {
	return r.Page() * r.Size()
}

// Next returns a request for the following page with the same size and sort.
func (r *PageRequest) Next() *PageRequest {
	return r.clone().WithPage(r.Page() + 1)
}

// Previous returns a request for the preceding page, or the first page when
// r already points at it.
func (r *PageRequest) Previous() *PageRequest {
	return r.clone().WithPage(max(r.Page()-1, 0))
}

func (r *PageRequest) clone() *PageRequest {
	if r == nil {
		return NewPageRequest()
	}

	return &PageRequest{
		page: r.page,
		size: r.size,
		sort: slices.Clone(r.sort),
	}
}

// Paginate applies ordering, limit and offset to the dataset. Returns an
// error if the request cannot be applied.
func (r *PageRequest) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	return r.sort.Apply(db).Limit(r.size).Offset(r.Offset()), nil
}

func (r *PageRequest) validate() error {
	if r == nil {
		return fmt.Errorf("page request is nil: %w", ErrInvalidArgument)
	}

	if r.page < 0 {
		return fmt.Errorf("page must not be negative, got %d: %w", r.page, ErrInvalidArgument)
	}

	if r.size <= 0 {
		return fmt.Errorf("size must be positive, got %d: %w", r.size, ErrInvalidArgument)
	}

	if r.page > math.MaxInt/r.size {
		return fmt.Errorf("offset of page %d with size %d overflows: %w", r.page, r.size, ErrInvalidArgument)
	}

	// Offset pagination over an unordered dataset is not stable between pages.
	return r.sort.validate()
}

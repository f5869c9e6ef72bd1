package hateoas

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"gorm.io/gorm"
)

type fetchOptions struct {
	logger   *slog.Logger
	linkBase *url.URL
	config   Config
	metrics  *Metrics
}

// FetchOption configures FetchPage.
type FetchOption func(*fetchOptions)

// WithLogger sets the logger FetchPage reports to. slog.Default() is used
// otherwise.
func WithLogger(logger *slog.Logger) FetchOption {
	return func(o *fetchOptions) {
		o.logger = logger
	}
}

// WithPageLinks makes FetchPage attach the navigation links built by
// cfg.PageLinks relative to base.
func WithPageLinks(base *url.URL, cfg Config) FetchOption {
	return func(o *fetchOptions) {
		o.linkBase = base
		o.config = cfg
	}
}

// WithMetrics makes FetchPage record its outcome and duration in m.
func WithMetrics(m *Metrics) FetchOption {
	return func(o *fetchOptions) {
		o.metrics = m
	}
}

// FetchPage counts the records matched by db, loads the page described by req
// and wraps both into a PagedModel. db must already be scoped to a model or
// table:
//
//	page, err := hateoas.FetchPage[User](ctx, db.Model(&User{}).Where("active"), req)
//
// The returned metadata carries req.Page() as its zero-indexed number.
func FetchPage[T any](ctx context.Context, db *gorm.DB, req *PageRequest, opts ...FetchOption) (*PagedModel[T], error) {
	o := fetchOptions{
		logger: slog.Default(),
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	started := time.Now()
	model, err := fetchPage[T](ctx, db, req, o)
	o.metrics.observe(req.Page(), started, model.Metadata(), err)

	return model, err
}

func fetchPage[T any](ctx context.Context, db *gorm.DB, req *PageRequest, o fetchOptions) (*PagedModel[T], error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	base := db.WithContext(ctx)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count page elements: %w", err)
	}

	query, err := req.Paginate(base.Session(&gorm.Session{}))
	if err != nil {
		return nil, err
	}

	var items []T
	if err = query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", req.Page(), err)
	}

	md, err := NewPageMetadata(int64(req.Size()), int64(req.Page()), total)
	if err != nil {
		return nil, err
	}

	model := NewPagedModel(items, md)
	if o.linkBase != nil {
		model.Add(o.config.PageLinks(o.linkBase, md)...)
	}

	o.logger.DebugContext(ctx, "page fetched",
		slog.Int("page", req.Page()),
		slog.Int("size", req.Size()),
		slog.Int("items", len(items)),
		slog.Int64("total_elements", md.TotalElements()),
		slog.Int64("total_pages", md.TotalPages()),
	)

	return model, nil
}

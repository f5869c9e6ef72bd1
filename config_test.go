package hateoas

import (
	"math"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_Config_ParseRequest(t *testing.T) {
	mapping := ColumnMapping{"id": "t.id", "name": "t.name"}
	oneIndexed := DefaultConfig()
	oneIndexed.OneIndexedParameters = true

	tests := []struct {
		name     string
		cfg      Config
		query    string
		wantPage int
		wantSize int
		wantSort Orderings
		wantErr  bool
	}{
		{
			name:     "defaults",
			cfg:      DefaultConfig(),
			query:    "sort=id",
			wantPage: 0,
			wantSize: DefaultPageSize,
			wantSort: Orderings{{Column: "t.id", Direction: DirectionASC}},
		},
		{
			name:     "explicit values and repeated sort",
			cfg:      DefaultConfig(),
			query:    "page=3&size=25&sort=name,desc&sort=id",
			wantPage: 3,
			wantSize: 25,
			wantSort: Orderings{
				{Column: "t.name", Direction: DirectionDESC},
				{Column: "t.id", Direction: DirectionASC},
			},
		},
		{
			name:     "one-indexed defaults to first page",
			cfg:      oneIndexed,
			query:    "sort=id",
			wantPage: 0,
			wantSize: DefaultPageSize,
			wantSort: Orderings{{Column: "t.id", Direction: DirectionASC}},
		},
		{
			name:     "one-indexed page is shifted",
			cfg:      oneIndexed,
			query:    "page=1&size=10&sort=id",
			wantPage: 0,
			wantSize: 10,
			wantSort: Orderings{{Column: "t.id", Direction: DirectionASC}},
		},
		{
			name:     "negative page clamps, oversized size clamps",
			cfg:      DefaultConfig(),
			query:    "page=-2&size=1000&sort=id",
			wantPage: 0,
			wantSize: MaxPageSize,
			wantSort: Orderings{{Column: "t.id", Direction: DirectionASC}},
		},
		{
			name:    "page is not a number",
			cfg:     DefaultConfig(),
			query:   "page=two",
			wantErr: true,
		},
		{
			name:    "size is not a number",
			cfg:     DefaultConfig(),
			query:   "size=ten",
			wantErr: true,
		},
		{
			name:    "unknown sort alias",
			cfg:     DefaultConfig(),
			query:   "sort=nam",
			wantErr: true,
		},
		{
			name:    "page offset overflows",
			cfg:     DefaultConfig(),
			query:   "page=9223372036854775807&size=20&sort=id",
			wantErr: true,
		},
		{
			name:     "one-indexed minimal page clamps to first page",
			cfg:      oneIndexed,
			query:    "page=-9223372036854775808&size=20&sort=id",
			wantPage: 0,
			wantSize: 20,
			wantSort: Orderings{{Column: "t.id", Direction: DirectionASC}},
		},
		{
			name:     "zero config uses default parameters and limits",
			cfg:      Config{},
			query:    "page=2&size=0&sort=name,desc",
			wantPage: 2,
			wantSize: DefaultPageSize,
			wantSort: Orderings{{Column: "t.name", Direction: DirectionDESC}},
		},
		{
			name:     "partial config clamps size",
			cfg:      Config{OneIndexedParameters: true},
			query:    "page=2&size=1000&sort=id",
			wantPage: 1,
			wantSize: MaxPageSize,
			wantSort: Orderings{{Column: "t.id", Direction: DirectionASC}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			r, err := tt.cfg.ParseRequest(query, mapping)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantPage, r.Page())
			require.Equal(t, tt.wantSize, r.Size())
			require.Equal(t, tt.wantSort, r.Sort())
		})
	}
}

func Test_Config_PageLinks(t *testing.T) {
	base, err := url.Parse("http://localhost/orders?q=open&page=7")
	require.NoError(t, err)

	oneIndexed := DefaultConfig()
	oneIndexed.OneIndexedParameters = true

	tests := []struct {
		name string
		cfg  Config
		md   PageMetadata
		want Links
	}{
		{
			name: "single page has only self",
			cfg:  DefaultConfig(),
			md:   mustPageMetadata(t, 10, 0, 5),
			want: Links{
				NewLink("http://localhost/orders?page=0&q=open&size=10", RelSelf),
			},
		},
		{
			name: "empty result has only self",
			cfg:  DefaultConfig(),
			md:   mustPageMetadata(t, 10, 0, 0),
			want: Links{
				NewLink("http://localhost/orders?page=0&q=open&size=10", RelSelf),
			},
		},
		{
			name: "first of many",
			cfg:  DefaultConfig(),
			md:   mustPageMetadata(t, 10, 0, 35),
			want: Links{
				NewLink("http://localhost/orders?page=0&q=open&size=10", RelSelf),
				NewLink("http://localhost/orders?page=1&q=open&size=10", RelNext),
				NewLink("http://localhost/orders?page=3&q=open&size=10", RelLast),
			},
		},
		{
			name: "middle page",
			cfg:  DefaultConfig(),
			md:   mustPageMetadata(t, 10, 2, 35),
			want: Links{
				NewLink("http://localhost/orders?page=0&q=open&size=10", RelFirst),
				NewLink("http://localhost/orders?page=1&q=open&size=10", RelPrev),
				NewLink("http://localhost/orders?page=2&q=open&size=10", RelSelf),
				NewLink("http://localhost/orders?page=3&q=open&size=10", RelNext),
				NewLink("http://localhost/orders?page=3&q=open&size=10", RelLast),
			},
		},
		{
			name: "last page, one-indexed",
			cfg:  oneIndexed,
			md:   mustPageMetadata(t, 10, 3, 35),
			want: Links{
				NewLink("http://localhost/orders?page=1&q=open&size=10", RelFirst),
				NewLink("http://localhost/orders?page=3&q=open&size=10", RelPrev),
				NewLink("http://localhost/orders?page=4&q=open&size=10", RelSelf),
			},
		},
		{
			name: "past the last page, prev points at last page",
			cfg:  DefaultConfig(),
			md:   mustPageMetadata(t, 10, 10, 35),
			want: Links{
				NewLink("http://localhost/orders?page=0&q=open&size=10", RelFirst),
				NewLink("http://localhost/orders?page=3&q=open&size=10", RelPrev),
				NewLink("http://localhost/orders?page=10&q=open&size=10", RelSelf),
			},
		},
		{
			name: "past the end of an empty result",
			cfg:  DefaultConfig(),
			md:   mustPageMetadata(t, 10, 2, 0),
			want: Links{
				NewLink("http://localhost/orders?page=0&q=open&size=10", RelFirst),
				NewLink("http://localhost/orders?page=0&q=open&size=10", RelPrev),
				NewLink("http://localhost/orders?page=2&q=open&size=10", RelSelf),
			},
		},
		{
			name: "largest page number has no next",
			cfg:  DefaultConfig(),
			md:   mustPageMetadata(t, 20, math.MaxInt64, 80),
			want: Links{
				NewLink("http://localhost/orders?page=0&q=open&size=20", RelFirst),
				NewLink("http://localhost/orders?page=3&q=open&size=20", RelPrev),
				NewLink("http://localhost/orders?page=9223372036854775807&q=open&size=20", RelSelf),
			},
		},
		{
			name: "largest page number, one-indexed",
			cfg:  oneIndexed,
			md:   mustPageMetadata(t, 20, math.MaxInt64, 80),
			want: Links{
				NewLink("http://localhost/orders?page=1&q=open&size=20", RelFirst),
				NewLink("http://localhost/orders?page=4&q=open&size=20", RelPrev),
				NewLink("http://localhost/orders?page=9223372036854775808&q=open&size=20", RelSelf),
			},
		},
		{
			name: "largest total pages has no next",
			cfg:  DefaultConfig(),
			md:   mustPageMetadataWithTotalPages(t, 1, math.MaxInt64-1, 0, math.MaxInt64),
			want: Links{
				NewLink("http://localhost/orders?page=0&q=open&size=1", RelFirst),
				NewLink("http://localhost/orders?page=9223372036854775805&q=open&size=1", RelPrev),
				NewLink("http://localhost/orders?page=9223372036854775806&q=open&size=1", RelSelf),
			},
		},
		{
			name: "zero config uses default parameters",
			cfg:  Config{},
			md:   mustPageMetadata(t, 10, 1, 35),
			want: Links{
				NewLink("http://localhost/orders?page=0&q=open&size=10", RelFirst),
				NewLink("http://localhost/orders?page=0&q=open&size=10", RelPrev),
				NewLink("http://localhost/orders?page=1&q=open&size=10", RelSelf),
				NewLink("http://localhost/orders?page=2&q=open&size=10", RelNext),
				NewLink("http://localhost/orders?page=3&q=open&size=10", RelLast),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.PageLinks(base, tt.md)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("links mismatch (-want +got):\n%s", diff)
			}
		})
	}

	require.Equal(t, "http://localhost/orders?q=open&page=7", base.String(), "base URL must not be modified")
	require.Nil(t, DefaultConfig().PageLinks(nil, mustPageMetadata(t, 1, 0, 1)))
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNewFilterSpec(t *testing.T) {
	tests := []struct {
		name  string
		query ListPostsQuery
		want  FilterSpec
	}{
		{
			name:  "Empty query uses defaults",
			query: ListPostsQuery{},
			want: FilterSpec{
				Limit:  DefaultPageSize,
				Offset: 0,
			},
		},
		{
			name: "Title and description become predicates",
			query: ListPostsQuery{
				Title:       strPtr("go"),
				Description: strPtr("concurrency"),
			},
			want: FilterSpec{
				Predicates: []Predicate{
					{Field: FieldTitle, Substring: "go"},
					{Field: FieldDescription, Substring: "concurrency"},
				},
				Limit:  DefaultPageSize,
				Offset: 0,
			},
		},
		{
			name: "Empty strings yield no predicates",
			query: ListPostsQuery{
				Title:       strPtr(""),
				Description: strPtr(""),
			},
			want: FilterSpec{
				Limit:  DefaultPageSize,
				Offset: 0,
			},
		},
		{
			name: "Literal desc sorts descending",
			query: ListPostsQuery{
				CreatedSort: strPtr("desc"),
			},
			want: FilterSpec{
				Order:  []SortKey{{Field: FieldCreatedAt, Desc: true}},
				Limit:  DefaultPageSize,
				Offset: 0,
			},
		},
		{
			name: "Desc token is case insensitive",
			query: ListPostsQuery{
				UpdatedSort: strPtr("DESC"),
			},
			want: FilterSpec{
				Order:  []SortKey{{Field: FieldUpdatedAt, Desc: true}},
				Limit:  DefaultPageSize,
				Offset: 0,
			},
		},
		{
			name: "Any other token sorts ascending",
			query: ListPostsQuery{
				CreatedSort: strPtr("garbage"),
			},
			want: FilterSpec{
				Order:  []SortKey{{Field: FieldCreatedAt, Desc: false}},
				Limit:  DefaultPageSize,
				Offset: 0,
			},
		},
		{
			name: "Absent sort token omits the key",
			query: ListPostsQuery{
				UpdatedSort: strPtr("asc"),
			},
			want: FilterSpec{
				Order:  []SortKey{{Field: FieldUpdatedAt, Desc: false}},
				Limit:  DefaultPageSize,
				Offset: 0,
			},
		},
		{
			name: "Created key precedes updated key",
			query: ListPostsQuery{
				CreatedSort: strPtr("desc"),
				UpdatedSort: strPtr("asc"),
			},
			want: FilterSpec{
				Order: []SortKey{
					{Field: FieldCreatedAt, Desc: true},
					{Field: FieldUpdatedAt, Desc: false},
				},
				Limit:  DefaultPageSize,
				Offset: 0,
			},
		},
		{
			name: "Page window is computed from size and number",
			query: ListPostsQuery{
				PageSize:   intPtr(20),
				PageNumber: intPtr(3),
			},
			want: FilterSpec{
				Limit:  20,
				Offset: 40,
			},
		},
		{
			name: "Non-positive page falls back to the first",
			query: ListPostsQuery{
				PageNumber: intPtr(0),
			},
			want: FilterSpec{
				Limit:  DefaultPageSize,
				Offset: 0,
			},
		},
		{
			name: "Non-positive page size falls back to the default",
			query: ListPostsQuery{
				PageSize: intPtr(-5),
			},
			want: FilterSpec{
				Limit:  DefaultPageSize,
				Offset: 0,
			},
		},
		{
			name: "Oversized page size is clamped",
			query: ListPostsQuery{
				PageSize: intPtr(500),
			},
			want: FilterSpec{
				Limit:  MaxPageSize,
				Offset: 0,
			},
		},
		{
			name: "Author id passes through",
			query: ListPostsQuery{
				AuthorID: func() *int64 { id := int64(7); return &id }(),
			},
			want: FilterSpec{
				AuthorID: func() *int64 { id := int64(7); return &id }(),
				Limit:    DefaultPageSize,
				Offset:   0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFilterSpec(tt.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

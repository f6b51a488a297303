package model

import "strings"

type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldCreatedAt   Field = "created_at"
	FieldUpdatedAt   Field = "updated_at"
)

const (
	DefaultPageSize = 10
	// MaxPageSize bounds a single page. Requests above it are clamped.
	MaxPageSize = 100

	sortDesc = "desc"
)

// Predicate is a case-insensitive substring match on a single field.
// Predicates combine conjunctively.
type Predicate struct {
	Field     Field
	Substring string
}

type SortKey struct {
	Field Field
	Desc  bool
}

// FilterSpec is the normalized, deterministic form of a listing request:
// predicates, an ordered sort list and the page window. Repositories consume
// it as-is and apply no further policy.
type FilterSpec struct {
	Predicates []Predicate
	AuthorID   *int64
	Order      []SortKey
	Limit      int
	Offset     int
}

// NewFilterSpec normalizes raw listing parameters. An absent substring filter
// yields no predicate, an absent sort token omits that sort key entirely, and
// only the literal "desc" (any case) sorts descending; every other non-empty
// token sorts ascending. AuthorName is not resolved here: the service resolves
// it to an author id and overwrites AuthorID on the returned spec.
func NewFilterSpec(q ListPostsQuery) FilterSpec {
	spec := FilterSpec{AuthorID: q.AuthorID}

	if q.Title != nil && *q.Title != "" {
		spec.Predicates = append(spec.Predicates, Predicate{Field: FieldTitle, Substring: *q.Title})
	}
	if q.Description != nil && *q.Description != "" {
		spec.Predicates = append(spec.Predicates, Predicate{Field: FieldDescription, Substring: *q.Description})
	}

	if q.CreatedSort != nil && *q.CreatedSort != "" {
		spec.Order = append(spec.Order, SortKey{Field: FieldCreatedAt, Desc: strings.EqualFold(*q.CreatedSort, sortDesc)})
	}
	if q.UpdatedSort != nil && *q.UpdatedSort != "" {
		spec.Order = append(spec.Order, SortKey{Field: FieldUpdatedAt, Desc: strings.EqualFold(*q.UpdatedSort, sortDesc)})
	}

	pageSize := DefaultPageSize
	if q.PageSize != nil && *q.PageSize > 0 {
		pageSize = *q.PageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	page := 1
	if q.PageNumber != nil && *q.PageNumber > 0 {
		page = *q.PageNumber
	}

	spec.Limit = pageSize
	spec.Offset = (page - 1) * pageSize

	return spec
}

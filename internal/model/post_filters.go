package model

// ListPostsQuery holds the raw listing parameters as they arrive from the
// delivery layer, before normalization into a FilterSpec.
type ListPostsQuery struct {
	Title       *string
	Description *string
	CreatedSort *string
	UpdatedSort *string
	AuthorID    *int64
	AuthorName  *string
	PageSize    *int
	PageNumber  *int
}

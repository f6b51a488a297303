package model

type PostDetailed struct {
	Post   *Post   `json:"post,omitempty"`
	Author *Author `json:"author,omitempty"`
}

package model

// Author carries only the public fields. The credential secret lives in
// AuthorCredentials and never crosses the delivery boundary.
type Author struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type AuthorCredentials struct {
	Author
	Secret string `json:"-"`
}

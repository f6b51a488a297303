package custom_errors

import "errors"

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrNoPostsFound   = errors.New("no posts found")
	ErrAuthorNotFound = errors.New("author not found")

	ErrForbidden          = errors.New("forbidden")
	ErrTitleAlreadyExists = errors.New("post with this title already exists")

	ErrUsernameAlreadyExists = errors.New("username is already taken")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrInvalidToken          = errors.New("invalid token")

	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")
	ErrNoUpdateRows  = errors.New("no fields to update")

	ErrCacheMiss = errors.New("cache miss")
)

package domain

import "errors"

var (
	ErrNotAuthenticated = errors.New("login required")
	ErrOwnListing       = errors.New("cannot like your own listing")
	ErrEmptyComment     = errors.New("comment body is empty")
	ErrNotCommentAuthor = errors.New("only the author can delete a comment")
	ErrUnknownComment   = errors.New("unknown comment")
	ErrUnknownEntry     = errors.New("unknown feed entry")
	ErrInactiveEntry    = errors.New("feed entry is not active")
)

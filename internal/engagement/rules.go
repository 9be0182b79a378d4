package engagement

import (
	"strings"

	"shorts_feed/internal/domain"
)

// CheckLike validates a like/unlike attempt before any network call.
func CheckLike(user domain.User, loggedIn bool, sellerID int64) error {
	if !loggedIn {
		return domain.ErrNotAuthenticated
	}
	if user.ID == sellerID {
		return domain.ErrOwnListing
	}
	return nil
}

// CheckComment validates a new comment before it is posted.
func CheckComment(loggedIn bool, body string) error {
	if !loggedIn {
		return domain.ErrNotAuthenticated
	}
	if strings.TrimSpace(body) == "" {
		return domain.ErrEmptyComment
	}
	return nil
}

// CheckDelete allows only the author of a comment to delete it.
func CheckDelete(c domain.Comment, user domain.User, loggedIn bool) error {
	if !loggedIn {
		return domain.ErrNotAuthenticated
	}
	if c.AuthorID == nil || *c.AuthorID != user.ID {
		return domain.ErrNotCommentAuthor
	}
	return nil
}

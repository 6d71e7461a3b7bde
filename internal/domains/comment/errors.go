package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCommentNotFound):
		return 404
	default:
		return 500
	}
}

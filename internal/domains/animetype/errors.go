package animetype

import "errors"

var (
	ErrTypeNotFound = errors.New("type not found")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTypeNotFound):
		return 404
	default:
		return 500
	}
}

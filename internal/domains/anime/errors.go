package anime

import "errors"

var (
	// Validation errors
	ErrNoFieldsToUpdate = errors.New("no valid fields provided for update")
	ErrNoDatesSupplied  = errors.New("at least one date field is required")
	ErrInvalidAction    = errors.New("unrecognized status action")

	// Business rule errors
	ErrAnimeNotFound   = errors.New("anime not found")
	ErrHistoryNotFound = errors.New("history record not found")
	ErrNoActiveSession = errors.New("no active watching session to drop")
)

// ToErrorCode converts a domain error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAnimeNotFound):
		return "ANIME_NOT_FOUND"
	case errors.Is(err, ErrHistoryNotFound):
		return "HISTORY_NOT_FOUND"
	case errors.Is(err, ErrNoActiveSession):
		return "NO_ACTIVE_SESSION"
	case errors.Is(err, ErrNoFieldsToUpdate), errors.Is(err, ErrNoDatesSupplied), errors.Is(err, ErrInvalidAction):
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAnimeNotFound), errors.Is(err, ErrHistoryNotFound):
		return 404
	case errors.Is(err, ErrNoActiveSession):
		return 409
	case errors.Is(err, ErrNoFieldsToUpdate), errors.Is(err, ErrNoDatesSupplied), errors.Is(err, ErrInvalidAction):
		return 400
	default:
		return 500
	}
}

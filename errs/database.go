package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrDatabaseQuery = errors.New("database query failed")
)

// NewDatabaseError translates a persistence failure into an ApiErr with the
// matching status code. Duplicate-key violations become conflicts and
// missing records become not-found; everything else is a 500 whose detail
// stays server-side.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	if cause != nil {
		errStr := cause.Error()
		switch {
		case errors.Is(cause, gorm.ErrRecordNotFound):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Cause:      cause,
			}
		case errors.Is(cause, gorm.ErrDuplicatedKey),
			strings.Contains(errStr, "duplicate key"),
			strings.Contains(errStr, "UNIQUE constraint failed"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%w: failed to %s %s", ErrDatabaseQuery, operation, entity),
		Cause:      cause,
	}
}

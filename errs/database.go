package errs

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrStatusNotFound     = errors.New("status not found")
	ErrDuplicateSlug      = errors.New("duplicate slug")
	ErrPersistence        = errors.New("persistence failure")
	ErrDatabaseConnection = errors.New("database connection failed")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrNotFound,
		Details:    fmt.Sprintf("%s not found", entity),
	}
}

// NewStatusNotFound reports a status name with no corresponding blog_status row.
func NewStatusNotFound(name string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrStatusNotFound,
		Details:    fmt.Sprintf("no status named %q", name),
		Field:      "status",
	}
}

// NewDuplicateSlug reports a slug uniqueness-constraint violation at write time.
// This is the one persistence failure a caller may retry by re-running slug
// generation, so it carries its own sentinel.
func NewDuplicateSlug(slug string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateSlug,
		Details:    fmt.Sprintf("slug %q is already taken", slug),
		Field:      "slug",
		Cause:      cause,
	}
}

// NewPersistenceError wraps a store-level failure that is not a slug conflict.
func NewPersistenceError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		switch {
		case errors.Is(cause, gorm.ErrRecordNotFound):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        ErrNotFound,
				Details:    details,
				Cause:      cause,
			}
		case errors.Is(cause, gorm.ErrDuplicatedKey):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        ErrConflict,
				Details:    details,
				Cause:      cause,
			}
		case errors.Is(cause, gorm.ErrForeignKeyViolated):
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid reference in %s", entity),
				Details:    "The referenced resource does not exist or cannot be linked",
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrPersistence,
		Details:    details,
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStatusNotFound(err error) bool {
	return errors.Is(err, ErrStatusNotFound)
}

func IsDuplicateSlug(err error) bool {
	return errors.Is(err, ErrDuplicateSlug)
}

func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}

package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/authorpages/author-site-backend/errs"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validatePayload runs struct-tag validation and translates the first failure
// into a field-carrying validation error.
func validatePayload(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errs.NewValidationError(fe.Field(), fmt.Sprintf("failed %q constraint", fe.Tag()))
	}
	return errs.BadRequest("invalid payload")
}

// parseID parses a numeric path parameter.
func parseID(raw, paramName string) (uint, error) {
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + paramName)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + paramName)
	}
	return uint(id), nil
}

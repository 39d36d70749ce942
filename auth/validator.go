package auth

import (
	stderrors "errors"
	"fmt"

	"pairchat/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required,min=1,max=254"`
	Password        string `json:"password" validate:"required,min=1,max=72"`
}

// ValidateLogin checks structural rules only; credential verification is the
// service's job.
func ValidateLogin(req LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidLogin, err)
	}
	return nil
}

// ValidationMessages flattens validator errors into user-facing strings for
// the login response body.
func ValidationMessages(err error) []string {
	var messages []string
	var vErrs validator.ValidationErrors
	if !stderrors.As(err, &vErrs) {
		return []string{err.Error()}
	}
	for _, fe := range vErrs {
		messages = append(messages, fmt.Sprintf("field %s failed on the %s rule", fe.Field(), fe.Tag()))
	}
	return messages
}

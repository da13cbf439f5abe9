package shell

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dharmasatrya/volobus/internal/models"
)

type ContactStatus string

const (
	ContactIdle ContactStatus = "idle"
	ContactSent ContactStatus = "sent"
)

var validate = validator.New()

// ValidateContact trims the form and checks it against its struct tags,
// reporting the first failing field.
func ValidateContact(req *models.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.ReplaceAll(strings.TrimSpace(req.Phone), " ", "")
	req.Message = strings.TrimSpace(req.Message)

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Name":
		return models.ErrMissingName
	case "Email":
		if fe.Tag() == "required" {
			return models.ErrMissingEmail
		}
		return models.ErrInvalidEmail
	case "Phone":
		return models.ErrInvalidPhone
	default:
		return models.ErrMissingMessage
	}
}

// SubmitContact marks the form sent. Nothing is delivered anywhere.
func (s Shell) SubmitContact(req models.ContactRequest) (Shell, error) {
	if err := ValidateContact(&req); err != nil {
		return s, err
	}
	next := s
	next.Contact = ContactSent
	return next, nil
}

func (s Shell) ResetContact() Shell {
	next := s
	next.Contact = ContactIdle
	return next
}

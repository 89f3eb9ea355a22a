package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

const (
	maxNameLength     = 255
	maxEmailLength    = 255
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
	maxRoleNameLength = 50
)

// CreateUserInput holds parameters for creating a user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	RoleID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	errs = validateEmail(errs, i.Email)
	errs = validatePassword(errs, "password", i.Password)
	if i.RoleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "role_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateUserInput holds parameters for an administrator editing a user.
type UpdateUserInput struct {
	UserID uuid.UUID
	Name   string
	Email  string
	RoleID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = validateName(errs, i.Name)
	errs = validateEmail(errs, i.Email)
	if i.RoleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "role_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInfoInput holds parameters for a user editing their own profile.
type UpdateInfoInput struct {
	Name  string
	Email string
}

// Validate checks all fields and collects all errors.
func (i UpdateInfoInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	errs = validateEmail(errs, i.Email)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePasswordInput holds parameters for a password change.
type UpdatePasswordInput struct {
	Current      string
	New          string
	Confirmation string
}

// Validate checks all fields and collects all errors.
func (i UpdatePasswordInput) Validate() error {
	var errs []domain.FieldError
	if i.Current == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	errs = validatePassword(errs, "password", i.New)
	if i.New != i.Confirmation {
		errs = append(errs, domain.FieldError{Field: "password_confirmation", Message: "does not match"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RoleInput holds parameters for creating or renaming a role.
type RoleInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i RoleInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		return domain.NewValidationError("name", "required")
	case utf8.RuneCountInString(name) > maxRoleNameLength:
		return domain.NewValidationError("name", "max 50 characters")
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	n := strings.TrimSpace(name)
	if n == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(n) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	return errs
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	e := strings.TrimSpace(email)
	if e == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(e) > maxEmailLength {
		return append(errs, domain.FieldError{Field: "email", Message: "max 255 characters"})
	}
	if addr, err := mail.ParseAddress(e); err != nil || addr.Address != e {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func validatePassword(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(password) < minPasswordLength:
		return append(errs, domain.FieldError{Field: field, Message: "min 8 characters"})
	case len(password) > maxPasswordLength:
		return append(errs, domain.FieldError{Field: field, Message: "max 72 bytes"})
	}
	return errs
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

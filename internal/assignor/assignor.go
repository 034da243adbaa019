// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

/*
Package assignor implements the payee domain of the Payvel platform.

An assignor is the account holder a payable is assigned to: it carries the
payee's identity (document, name, contact) together with the credentials used
to authenticate against the API.

Layers inside this package:

  - Entity: validated record with setter-level field rules (assignor.go, factory.go).
  - Service: application logic orchestrating validation, hashing, and storage.
  - Repository: persistence port plus its PostgreSQL and Redis adapters.
  - Handler: the chi HTTP delivery layer.
*/
package assignor

import (
	"time"
	"unicode/utf8"

	"github.com/payvel/payvel/internal/platform/apperr"
	"github.com/payvel/payvel/internal/platform/validate"
)

// Field length limits enforced by the entity setters.
const (
	MaxDocumentLen = 30
	MaxEmailLen    = 140
	MaxNameLen     = 140
	MaxPhoneLen    = 20
	MaxLoginLen    = 50
	MinPasswordLen = 8
	MaxPasswordLen = 20
)

// Validation messages. The message text is part of the API contract: clients
// match on these strings, so they must stay stable.
const (
	MsgInvalidUUID               = "Invalid UUID format."
	MsgDocumentTooLong           = "Document must be 30 characters or less."
	MsgEmailTooLong              = "Email must be 140 characters or less."
	MsgInvalidEmailFormat        = "Email must be in a valid format."
	MsgNameTooLong               = "Name must be 140 characters or less."
	MsgPhoneTooLong              = "Phone must be 20 characters or less."
	MsgLoginTooLong              = "Login is too long."
	MsgPasswordLengthInvalid     = "Password must be between 8 and 20 characters."
	MsgPasswordComplexityInvalid = "Password must include uppercase, lowercase, digit, and special character."
	MsgAssignorNotFound          = "Assignor not found."
	MsgDocumentRequired          = "Document is required."
	MsgEmailRequired             = "Email is required."
	MsgDeletedSuccessfully       = "Assignor deleted successfully."
)

// Global field names for validation details.
const (
	FieldID       = "id"
	FieldDocument = "document"
	FieldEmail    = "email"
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldLogin    = "login"
	FieldPassword = "password"
)

// Assignor is the validated payee entity.
//
// Every validated field must be mutated through its setter, which rejects an
// invalid value and leaves the previous one in place. Password holds the
// bcrypt hash once the service has processed the entity; the plaintext only
// exists transiently during factory validation.
type Assignor struct {
	ID        string    `json:"id"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Login     string    `json:"login"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DTO is the client-facing shape of an assignor. It deliberately omits the
// password in any form.
type DTO struct {
	ID        string    `json:"id"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDTO maps the entity to its client-facing shape.
func (a *Assignor) ToDTO() DTO {
	return DTO{
		ID:        a.ID,
		Document:  a.Document,
		Email:     a.Email,
		Name:      a.Name,
		Phone:     a.Phone,
		Login:     a.Login,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// # Validated Setters

// SetID validates and applies the assignor ID.
//
// An empty ID is allowed: persistence assigns one on creation.
func (a *Assignor) SetID(value string) error {
	if value != "" && !validate.IsUUID(value) {
		return apperr.ValidationError(MsgInvalidUUID)
	}
	a.ID = value
	return nil
}

// SetDocument validates and applies the payee document number.
func (a *Assignor) SetDocument(value string) error {
	if utf8.RuneCountInString(value) > MaxDocumentLen {
		return apperr.ValidationError(MsgDocumentTooLong)
	}
	a.Document = value
	return nil
}

// SetEmail validates and applies the contact email.
//
// The length check runs before the format check: an overlong address reports
// the length violation even when it is otherwise well-formed.
func (a *Assignor) SetEmail(value string) error {
	if utf8.RuneCountInString(value) > MaxEmailLen {
		return apperr.ValidationError(MsgEmailTooLong)
	}
	if !validate.IsEmail(value) {
		return apperr.ValidationError(MsgInvalidEmailFormat)
	}
	a.Email = value
	return nil
}

// SetName validates and applies the payee name.
func (a *Assignor) SetName(value string) error {
	if utf8.RuneCountInString(value) > MaxNameLen {
		return apperr.ValidationError(MsgNameTooLong)
	}
	a.Name = value
	return nil
}

// SetPhone validates and applies the contact phone.
func (a *Assignor) SetPhone(value string) error {
	if utf8.RuneCountInString(value) > MaxPhoneLen {
		return apperr.ValidationError(MsgPhoneTooLong)
	}
	a.Phone = value
	return nil
}

// SetLogin validates and applies the login handle.
func (a *Assignor) SetLogin(value string) error {
	if utf8.RuneCountInString(value) > MaxLoginLen {
		return apperr.ValidationError(MsgLoginTooLong)
	}
	a.Login = value
	return nil
}

// SetPassword validates and applies a plaintext password candidate.
//
// Length is checked before complexity. The service is responsible for hashing
// the accepted plaintext before the entity reaches storage.
func (a *Assignor) SetPassword(value string) error {
	length := utf8.RuneCountInString(value)
	if length < MinPasswordLen || length > MaxPasswordLen {
		return apperr.ValidationError(MsgPasswordLengthInvalid)
	}
	if !validate.HasPasswordComplexity(value) {
		return apperr.ValidationError(MsgPasswordComplexityInvalid)
	}
	a.Password = value
	return nil
}

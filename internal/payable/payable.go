// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

/*
Package payable implements the receivable domain of the Payvel platform.

A payable is a monetary receivable (value + emission date) assigned to an
assignor. Many payables reference one assignor by ID; the reference is weak,
so referential integrity lives in the database, not in this layer.
*/
package payable

import (
	"time"

	"github.com/payvel/payvel/internal/platform/apperr"
	"github.com/payvel/payvel/internal/platform/validate"
)

// Validation messages. The message text is part of the API contract.
const (
	MsgInvalidUUID         = "Invalid UUID format."
	MsgInvalidValue        = "Value must be a positive number."
	MsgInvalidEmissionDate = "Emission date must be a valid date."
	MsgAssignorIDMissing   = "Assignor ID is missing."
	MsgPayableNotFound     = "Payable not found."
	MsgDeletedSuccessfully = "Payable deleted successfully."
)

// Global field names for validation details.
const (
	FieldID           = "id"
	FieldValue        = "value"
	FieldEmissionDate = "emission_date"
	FieldAssignorID   = "assignor_id"
)

// Payable is the validated receivable entity.
type Payable struct {
	ID           string    `json:"id"`
	Value        float64   `json:"value"`
	EmissionDate time.Time `json:"emission_date"`
	AssignorID   string    `json:"assignor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DTO is the client-facing shape of a payable.
type DTO struct {
	ID           string    `json:"id"`
	Value        float64   `json:"value"`
	EmissionDate time.Time `json:"emission_date"`
	AssignorID   string    `json:"assignor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToDTO maps the entity to its client-facing shape.
func (p *Payable) ToDTO() DTO {
	return DTO{
		ID:           p.ID,
		Value:        p.Value,
		EmissionDate: p.EmissionDate,
		AssignorID:   p.AssignorID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// # Validated Setters

// SetID validates and applies the payable ID.
//
// An empty ID is allowed: persistence assigns one on creation.
func (p *Payable) SetID(value string) error {
	if value != "" && !validate.IsUUID(value) {
		return apperr.ValidationError(MsgInvalidUUID)
	}
	p.ID = value
	return nil
}

// SetValue validates and applies the receivable amount.
func (p *Payable) SetValue(value float64) error {
	if value <= 0 {
		return apperr.ValidationError(MsgInvalidValue)
	}
	p.Value = value
	return nil
}

// SetEmissionDate validates and applies the emission date.
func (p *Payable) SetEmissionDate(value time.Time) error {
	if value.IsZero() {
		return apperr.ValidationError(MsgInvalidEmissionDate)
	}
	p.EmissionDate = value
	return nil
}

// SetAssignorID validates and applies the owning assignor reference.
//
// Only the UUID shape is checked here; the database enforces the foreign key.
func (p *Payable) SetAssignorID(value string) error {
	if !validate.IsUUID(value) {
		return apperr.ValidationError(MsgInvalidUUID)
	}
	p.AssignorID = value
	return nil
}

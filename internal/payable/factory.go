// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package payable

import (
	"time"

	"github.com/payvel/payvel/pkg/pointer"
)

// NewInput carries the raw field values for constructing a payable.
type NewInput struct {
	ID           string
	Value        float64
	EmissionDate time.Time
	AssignorID   string
}

// UpdateInput carries a partial patch for an existing payable. Nil fields
// are left unchanged.
type UpdateInput struct {
	Value        *float64
	EmissionDate *time.Time
	AssignorID   *string
}

// New constructs a validated payable from raw field values.
//
// Setters run in a fixed order (id, value, emission date, assignor ID) and
// the first failure short-circuits.
func New(input NewInput) (*Payable, error) {
	entity := &Payable{}

	if err := entity.SetID(input.ID); err != nil {
		return nil, err
	}
	if err := entity.SetValue(input.Value); err != nil {
		return nil, err
	}
	if err := entity.SetEmissionDate(input.EmissionDate); err != nil {
		return nil, err
	}
	if err := entity.SetAssignorID(input.AssignorID); err != nil {
		return nil, err
	}

	return entity, nil
}

// Update applies a partial patch to an existing payable.
//
// Like the assignor factory, validation runs against a scratch copy and the
// result is committed only when every provided field passes: a failing patch
// never leaves value or emission date half-applied.
func Update(entity *Payable, patch UpdateInput) (*Payable, error) {
	scratch := *entity

	if patch.Value != nil {
		if err := scratch.SetValue(pointer.Val(patch.Value)); err != nil {
			return nil, err
		}
	}
	if patch.EmissionDate != nil {
		if err := scratch.SetEmissionDate(pointer.Val(patch.EmissionDate)); err != nil {
			return nil, err
		}
	}
	if patch.AssignorID != nil {
		if err := scratch.SetAssignorID(pointer.Val(patch.AssignorID)); err != nil {
			return nil, err
		}
	}

	*entity = scratch
	return entity, nil
}

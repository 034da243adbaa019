// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package assignor

import "github.com/payvel/payvel/pkg/pointer"

// NewInput carries the raw field values for constructing an assignor.
//
// ID and Password are optional: a missing ID means persistence assigns one,
// and a missing Password leaves the credential untouched.
type NewInput struct {
	ID       string
	Document string
	Email    string
	Name     string
	Phone    string
	Login    string
	Password *string
}

// UpdateInput carries a partial patch for an existing assignor. Nil fields
// are left unchanged.
type UpdateInput struct {
	Document *string
	Email    *string
	Name     *string
	Phone    *string
	Login    *string
	Password *string
}

// New constructs a validated assignor from raw field values.
//
// Setters run in a fixed order (id, document, email, name, phone, login,
// password) and the first failure short-circuits: remaining fields are not
// validated on that call. Password is only validated when provided.
func New(input NewInput) (*Assignor, error) {
	entity := &Assignor{}

	if err := entity.SetID(input.ID); err != nil {
		return nil, err
	}
	if err := entity.SetDocument(input.Document); err != nil {
		return nil, err
	}
	if err := entity.SetEmail(input.Email); err != nil {
		return nil, err
	}
	if err := entity.SetName(input.Name); err != nil {
		return nil, err
	}
	if err := entity.SetPhone(input.Phone); err != nil {
		return nil, err
	}
	if err := entity.SetLogin(input.Login); err != nil {
		return nil, err
	}
	if input.Password != nil {
		if err := entity.SetPassword(pointer.Val(input.Password)); err != nil {
			return nil, err
		}
	}

	return entity, nil
}

// Update applies a partial patch to an existing assignor.
//
// Validation runs against a scratch copy and the result is committed only
// when every provided field passes, so a failing patch never leaves the
// entity half-mutated. The first failure short-circuits. A patch with no
// fields set is a no-op that still succeeds.
func Update(entity *Assignor, patch UpdateInput) (*Assignor, error) {
	scratch := *entity

	if patch.Document != nil {
		if err := scratch.SetDocument(pointer.Val(patch.Document)); err != nil {
			return nil, err
		}
	}
	if patch.Email != nil {
		if err := scratch.SetEmail(pointer.Val(patch.Email)); err != nil {
			return nil, err
		}
	}
	if patch.Name != nil {
		if err := scratch.SetName(pointer.Val(patch.Name)); err != nil {
			return nil, err
		}
	}
	if patch.Phone != nil {
		if err := scratch.SetPhone(pointer.Val(patch.Phone)); err != nil {
			return nil, err
		}
	}
	if patch.Login != nil {
		if err := scratch.SetLogin(pointer.Val(patch.Login)); err != nil {
			return nil, err
		}
	}
	if patch.Password != nil {
		if err := scratch.SetPassword(pointer.Val(patch.Password)); err != nil {
			return nil, err
		}
	}

	// Commit only after every provided field validated.
	*entity = scratch
	return entity, nil
}

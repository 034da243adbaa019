// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package assignor

import "context"

// Repository is the persistence port for assignors.
type Repository interface {
	Create(context context.Context, a *Assignor) error
	FindByID(context context.Context, id string) (*Assignor, error)
	FindByLogin(context context.Context, login string) (*Assignor, error)
	List(context context.Context, limit, offset int) ([]*Assignor, int, error)
	Update(context context.Context, a *Assignor) error
	Delete(context context.Context, id string) error
}

// Cache is the read-through cache port for assignor lookups.
//
// A miss is reported as (nil, nil); cache failures are soft and must never
// fail the surrounding request.
type Cache interface {
	Get(context context.Context, id string) (*DTO, error)
	Set(context context.Context, dto DTO) error
	Invalidate(context context.Context, id string) error
}

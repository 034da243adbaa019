// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package payable

import "context"

// Repository is the persistence port for payables.
type Repository interface {
	Create(context context.Context, p *Payable) error
	FindByID(context context.Context, id string) (*Payable, error)
	List(context context.Context, filter Filter, limit, offset int) ([]*Payable, int, error)
	Update(context context.Context, p *Payable) error
	Delete(context context.Context, id string) error
}

// Filter holds the parameters for a paginated payable search.
type Filter struct {
	AssignorID string // restrict to one assignor's receivables
}

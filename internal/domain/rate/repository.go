package rate

import "context"

type Repository interface {
	Create(ctx context.Context, r *Rate) error
	GetByRateID(ctx context.Context, rateID string) (*Rate, error)
	List(ctx context.Context) ([]*Rate, error)
	Delete(ctx context.Context, r *Rate) error
}

package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Save(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	CreateAllocation(ctx context.Context, a *Allocation) error
	ListAllocations(ctx context.Context, paymentRef uint64) ([]*Allocation, error)
	ExistsByMethodRef(ctx context.Context, methodRef uint64) (bool, error)
}

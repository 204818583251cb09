package method

import "context"

type Repository interface {
	Create(ctx context.Context, m *Method) error
	GetByMethodID(ctx context.Context, methodID string) (*Method, error)
	Save(ctx context.Context, m *Method) error
	List(ctx context.Context, activeOnly bool) ([]*Method, error)
	Delete(ctx context.Context, m *Method) error
}

package mysql

import (
	"context"

	"gorm.io/gorm"

	methodDomain "prestamos-backend/internal/domain/method"
)

type MethodRepository struct{ db *gorm.DB }

func NewMethodRepository(db *gorm.DB) *MethodRepository { return &MethodRepository{db: db} }

func (r *MethodRepository) Create(ctx context.Context, m *methodDomain.Method) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MethodRepository) GetByMethodID(ctx context.Context, methodID string) (*methodDomain.Method, error) {
	var out methodDomain.Method
	res := r.db.WithContext(ctx).Where("method_id = ?", methodID).First(&out)
	return &out, res.Error
}

func (r *MethodRepository) Save(ctx context.Context, m *methodDomain.Method) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MethodRepository) List(ctx context.Context, activeOnly bool) ([]*methodDomain.Method, error) {
	var out []*methodDomain.Method
	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	res := q.Find(&out)
	return out, res.Error
}

func (r *MethodRepository) Delete(ctx context.Context, m *methodDomain.Method) error {
	return r.db.WithContext(ctx).Delete(m).Error
}

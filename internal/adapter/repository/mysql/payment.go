package mysql

import (
	"context"

	"gorm.io/gorm"

	paymentDomain "prestamos-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) Save(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) CreateAllocation(ctx context.Context, a *paymentDomain.Allocation) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *PaymentRepository) ListAllocations(ctx context.Context, paymentRef uint64) ([]*paymentDomain.Allocation, error) {
	var out []*paymentDomain.Allocation
	res := r.db.WithContext(ctx).
		Where("payment_ref = ?", paymentRef).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) ExistsByMethodRef(ctx context.Context, methodRef uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).Where("method_ref = ?", methodRef).Count(&n)
	return n > 0, res.Error
}

package mysql

import (
	"context"

	"gorm.io/gorm"

	rateDomain "prestamos-backend/internal/domain/rate"
)

type RateRepository struct{ db *gorm.DB }

func NewRateRepository(db *gorm.DB) *RateRepository { return &RateRepository{db: db} }

func (r *RateRepository) Create(ctx context.Context, rt *rateDomain.Rate) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *RateRepository) GetByRateID(ctx context.Context, rateID string) (*rateDomain.Rate, error) {
	var out rateDomain.Rate
	res := r.db.WithContext(ctx).Where("rate_id = ?", rateID).First(&out)
	return &out, res.Error
}

func (r *RateRepository) List(ctx context.Context) ([]*rateDomain.Rate, error) {
	var out []*rateDomain.Rate
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *RateRepository) Delete(ctx context.Context, rt *rateDomain.Rate) error {
	return r.db.WithContext(ctx).Delete(rt).Error
}

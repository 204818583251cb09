package mysql

import (
	"context"

	"gorm.io/gorm"

	clientDomain "prestamos-backend/internal/domain/client"
)

type ClientRepository struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) *ClientRepository { return &ClientRepository{db: db} }

func (r *ClientRepository) Create(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) GetByClientID(ctx context.Context, clientID string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&out)
	return &out, res.Error
}

func (r *ClientRepository) List(ctx context.Context) ([]*clientDomain.Client, error) {
	var out []*clientDomain.Client
	res := r.db.WithContext(ctx).Order("full_name ASC").Find(&out)
	return out, res.Error
}

func (r *ClientRepository) Delete(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

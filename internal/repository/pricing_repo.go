package repository

import (
	"context"

	"nerdspace/internal/domain"

	"gorm.io/gorm"
)

type PricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

func (r *PricingRepository) GetByServiceType(ctx context.Context, t domain.ServiceType) (*domain.ServicePricing, error) {
	var p domain.ServicePricing
	tx := r.db.WithContext(ctx).
		Where("service_type = ?", t).
		First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

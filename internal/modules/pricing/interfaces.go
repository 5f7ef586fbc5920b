package pricing

import (
	"context"

	"nerdspace/internal/domain"
)

// ConfigSource yields the rate card for a service type. Implementations are
// the gorm repository and the read-through cache wrapping it.
type ConfigSource interface {
	GetByServiceType(ctx context.Context, t domain.ServiceType) (*domain.ServicePricing, error)
}

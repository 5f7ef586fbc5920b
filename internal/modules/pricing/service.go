package pricing

import (
	"context"
	"errors"
	"math"

	"nerdspace/internal/domain"

	"gorm.io/gorm"
)

// Guest counts below this use the small-group meeting rate; exactly
// largeGroupMin guests already pays the large rate.
const largeGroupMin = 8

const depositFraction = 0.5

type Service struct {
	config ConfigSource
}

func NewService(config ConfigSource) *Service {
	return &Service{config: config}
}

// Quote prices a booking of durationMinutes for the given service type.
// Meeting rooms charge a per-hour tier rate chosen by guest count; pods
// charge a flat first hour plus a per-hour rate for the remainder. Fractional
// hours are priced pro rata. Amounts round half away from zero to whole dong,
// and the deposit is half the rounded estimate, rounded the same way.
func (s *Service) Quote(ctx context.Context, serviceType domain.ServiceType, durationMinutes, guests int) (*Breakdown, error) {
	if durationMinutes <= 0 {
		return nil, ErrNoQuote
	}
	if guests == 0 {
		guests = 1
	}
	if guests < 0 {
		return nil, ErrValidation
	}

	cfg, err := s.config.GetByServiceType(ctx, serviceType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoQuote
		}
		return nil, err
	}

	hours := float64(durationMinutes) / 60

	var estimated float64
	if serviceType == domain.ServiceMeeting {
		rate := cfg.PriceSmall
		if guests >= largeGroupMin {
			rate = cfg.PriceLarge
		}
		estimated = float64(rate) * hours
	} else {
		extraHours := hours - 1
		if extraHours < 0 {
			extraHours = 0
		}
		estimated = float64(cfg.PriceFirstHour) + extraHours*float64(cfg.PricePerHour)
	}

	amount := int64(math.Round(estimated))
	return &Breakdown{
		EstimatedAmount: amount,
		DepositAmount:   int64(math.Round(float64(amount) * depositFraction)),
		NerdCoinReward:  cfg.NerdCoinReward,
	}, nil
}

package domain

import "time"

// ServicePricing is the rate card for one service type. Meeting rooms use the
// guest-count tiers (PriceSmall below 8 guests, PriceLarge at 8 and above);
// pods use PriceFirstHour for the first 60 minutes and PricePerHour beyond.
// All amounts are whole Vietnamese dong per hour.
type ServicePricing struct {
	ID             int64       `json:"id"`
	ServiceType    ServiceType `json:"service_type" gorm:"type:varchar(16);uniqueIndex"`
	PriceSmall     int64       `json:"price_small"`
	PriceLarge     int64       `json:"price_large"`
	PriceFirstHour int64       `json:"price_first_hour"`
	PricePerHour   int64       `json:"price_per_hour"`
	NerdCoinReward int64       `json:"nerd_coin_reward"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (ServicePricing) TableName() string { return "service_pricing" }

package pricing

import "nerdspace/internal/domain"

type QuoteRequest struct {
	ServiceType     domain.ServiceType `json:"service_type" binding:"required"`
	DurationMinutes int                `json:"duration_minutes" binding:"required"`
	Guests          int                `json:"guests"`
}

// Breakdown is the ephemeral price summary shown on the booking form.
// Amounts are whole Vietnamese dong.
type Breakdown struct {
	EstimatedAmount int64 `json:"estimated_amount"`
	DepositAmount   int64 `json:"deposit_amount"`
	NerdCoinReward  int64 `json:"nerd_coin_reward"`
}

package wallet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nerdspace/internal/domain"
)

const (
	TransactionTypeEarn   = "EARN"
	TransactionTypeSpend  = "SPEND"
	TransactionTypeRefund = "REFUND"
)

// NerdWallet stores a user's Nerd Coin balance.
type NerdWallet struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID  int64     `json:"user_id" gorm:"not null;uniqueIndex"`
	Balance int64     `json:"balance" gorm:"not null;default:0"`

	User *domain.User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (NerdWallet) TableName() string {
	return "nerd_wallets"
}

func (w *NerdWallet) BeforeCreate(_ *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// NerdTransaction records balance operations. Reference carries the origin
// of an EARN (e.g. "booking:42") and is unique so a completed booking credits
// at most once.
type NerdTransaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	WalletID  uuid.UUID `json:"wallet_id" gorm:"type:uuid;not null;index"`
	Amount    int64     `json:"amount" gorm:"not null"`
	Type      string    `json:"type" gorm:"type:varchar(16);not null;index;check:type IN ('EARN','SPEND','REFUND')"`
	Reference *string   `json:"reference,omitempty" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Wallet *NerdWallet `json:"wallet,omitempty" gorm:"foreignKey:WalletID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (NerdTransaction) TableName() string {
	return "nerd_transactions"
}

func (t *NerdTransaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

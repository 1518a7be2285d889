package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending TransactionStatus = "pending"
	TxnStatusPaid    TransactionStatus = "paid"
	TxnStatusFailed  TransactionStatus = "failed"
)

type Transaction struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"index"`
	AmountMinor int64     // e.g., 999 = $9.99
	Currency    string    `gorm:"size:3"` // ISO 4217
	Status      TransactionStatus `gorm:"index"`

	// Gateway fields
	Provider      string `gorm:"index"`
	ProviderTxnID string `gorm:"uniqueIndex"` // "payos:<orderCode>", idempotency across webhooks

	PaidAt *int64

	// Structured correlation data ({"user_email": ...}), preferred over the
	// checkout description fallback when the webhook lands.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

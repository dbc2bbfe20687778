package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы заявок на вывод
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

// WithdrawalRequest описывает заявку продавца на вывод средств.
// Разрешается заявка внешним админским процессом, не этим сервисом.
type WithdrawalRequest struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	SellerID        uuid.UUID  `db:"seller_id" json:"seller_id"`
	Amount          float64    `db:"amount" json:"amount"`
	Method          string     `db:"method" json:"method"`
	BankName        *string    `db:"bank_name" json:"bank_name,omitempty"`
	BankAccount     *string    `db:"bank_account" json:"bank_account,omitempty"`
	BankHolder      *string    `db:"bank_holder" json:"bank_holder,omitempty"`
	CryptoAddress   *string    `db:"crypto_address" json:"crypto_address,omitempty"`
	Status          string     `db:"status" json:"status"`
	RejectionReason *string    `db:"rejection_reason" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	ProcessedAt     *time.Time `db:"processed_at" json:"processed_at,omitempty"`
}

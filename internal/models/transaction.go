package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы транзакций
const (
	TransactionTypeOrderPick  = "order_pick"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeDeposit    = "deposit"
)

// Transaction — строка леджера по движению средств продавца.
// Пишется той же транзакцией БД, что и изменение балансов, чтобы движение
// денег всегда было объяснимо по журналу.
type Transaction struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	SellerID    uuid.UUID  `db:"seller_id" json:"seller_id"`
	OrderID     *uuid.UUID `db:"order_id" json:"order_id,omitempty"`
	Type        string     `db:"type" json:"type"`
	Amount      float64    `db:"amount" json:"amount"`
	Description *string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notification описывает уведомление продавца.
type Notification struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	SellerID  uuid.UUID       `db:"seller_id" json:"seller_id"`
	Payload   json.RawMessage `db:"payload" json:"payload"`
	IsRead    bool            `db:"is_read" json:"is_read"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Order описывает заказ покупателя, закреплённый за продавцом.
type Order struct {
	ID               uuid.UUID   `db:"id" json:"id"`
	SellerID         uuid.UUID   `db:"seller_id" json:"seller_id"`
	CustomerName     string      `db:"customer_name" json:"customer_name"`
	CustomerEmail    string      `db:"customer_email" json:"customer_email"`
	Status           string      `db:"status" json:"status"`
	Total            float64     `db:"total" json:"total"`
	WalletDeducted   *float64    `db:"wallet_deducted" json:"wallet_deducted,omitempty"`
	PendingAdded     *float64    `db:"pending_added" json:"pending_added,omitempty"`
	AdditionalProfit *float64    `db:"additional_profit" json:"additional_profit,omitempty"`
	AssignedByAdmin  bool        `db:"assigned_by_admin" json:"assigned_by_admin"`
	AssignedAt       *time.Time  `db:"assigned_at" json:"assigned_at,omitempty"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at" json:"updated_at"`
	Items            []OrderItem `json:"items,omitempty"`
}

// OrderItem — позиция заказа. Quantity в исторических документах может
// отсутствовать, при расчётах отсутствие трактуется как 1.
type OrderItem struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	OrderID   uuid.UUID  `db:"order_id" json:"order_id"`
	ProductID *uuid.UUID `db:"product_id" json:"product_id,omitempty"`
	Name      string     `db:"name" json:"name"`
	Price     float64    `db:"price" json:"price"`
	Quantity  *int       `db:"quantity" json:"quantity,omitempty"`
	Cost      *float64   `db:"cost" json:"cost,omitempty"`
}

// OrderStatusChange — запись журнала смены статусов заказа (append-only).
type OrderStatusChange struct {
	ID         uuid.UUID `db:"id" json:"id"`
	OrderID    uuid.UUID `db:"order_id" json:"order_id"`
	FromStatus string    `db:"from_status" json:"from_status"`
	ToStatus   string    `db:"to_status" json:"to_status"`
	ChangedAt  time.Time `db:"changed_at" json:"changed_at"`
}

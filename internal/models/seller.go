package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы продавца
const (
	SellerStatusActive  = "active"
	SellerStatusPending = "pending"
	SellerStatusFrozen  = "frozen"
)

// Способы выплат
const (
	PayoutMethodBank   = "bank"
	PayoutMethodCrypto = "crypto"
)

// Seller описывает продавца витрины вместе с профилем магазина и балансами.
// WalletBalance — доступные средства, PendingAmount — средства, зарезервированные
// под взятые в работу заказы. Оба поля меняются только внутри одной транзакции.
type Seller struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Email         string     `db:"email" json:"email"`
	PasswordHash  string     `db:"password_hash" json:"-"`
	ShopName      string     `db:"shop_name" json:"shop_name"`
	ContactPhone  *string    `db:"contact_phone" json:"contact_phone,omitempty"`
	Bio           *string    `db:"bio" json:"bio,omitempty"`
	WalletBalance float64    `db:"wallet_balance" json:"wallet_balance"`
	PendingAmount float64    `db:"pending_amount" json:"pending_amount"`
	Status        string     `db:"status" json:"status"`
	BankEnabled   bool       `db:"bank_enabled" json:"bank_enabled"`
	BankName      *string    `db:"bank_name" json:"bank_name,omitempty"`
	BankAccount   *string    `db:"bank_account" json:"bank_account,omitempty"`
	BankHolder    *string    `db:"bank_holder" json:"bank_holder,omitempty"`
	CryptoEnabled bool       `db:"crypto_enabled" json:"crypto_enabled"`
	CryptoAddress *string    `db:"crypto_address" json:"crypto_address,omitempty"`
	LastLoginAt   *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// SellerSummary — урезанная проекция продавца для публичной витрины.
type SellerSummary struct {
	ID       uuid.UUID `db:"id" json:"id"`
	ShopName string    `db:"shop_name" json:"shop_name"`
}

// SellerSettingsUpdate содержит изменяемые поля настроек магазина.
type SellerSettingsUpdate struct {
	ShopName      *string `json:"shop_name,omitempty"`
	ContactPhone  *string `json:"contact_phone,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	BankEnabled   *bool   `json:"bank_enabled,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	BankAccount   *string `json:"bank_account,omitempty"`
	BankHolder    *string `json:"bank_holder,omitempty"`
	CryptoEnabled *bool   `json:"crypto_enabled,omitempty"`
	CryptoAddress *string `json:"crypto_address,omitempty"`
}

// Session представляет сохранённую сессию продавца.
type Session struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SellerID     uuid.UUID `db:"seller_id" json:"seller_id"`
	RefreshToken string    `db:"refresh_token" json:"refresh_token"`
	UserAgent    *string   `db:"user_agent" json:"user_agent,omitempty"`
	IPAddress    *string   `db:"ip_address" json:"ip_address,omitempty"`
	ExpiresAt    time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

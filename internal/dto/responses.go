package dto

import (
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

// AuthResponse represents the response after login or registration
type AuthResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	Seller       *models.Seller `json:"seller"`
}

// PickOrderResponse represents the settlement result after picking an order
type PickOrderResponse struct {
	Order            *models.Order `json:"order"`
	NewWalletBalance float64       `json:"new_wallet_balance"`
	NewPendingAmount float64       `json:"new_pending_amount"`
}

// CatalogResponse represents the public storefront listing
type CatalogResponse struct {
	Products []models.StorefrontProduct `json:"products"`
	CachedAt string                     `json:"cached_at"`
}

// DashboardSummaryResponse represents aggregate seller indicators
type DashboardSummaryResponse struct {
	WalletBalance  float64        `json:"wallet_balance"`
	PendingAmount  float64        `json:"pending_amount"`
	TotalOrders    int            `json:"total_orders"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
	ProductCount   int            `json:"product_count"`
	UnreadCount    int            `json:"unread_count"`
	TotalWithdrawn float64        `json:"total_withdrawn"`
	PendingPayouts int            `json:"pending_payouts"`
}

// Pagination represents pagination metadata
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// PaginatedTransactionsResponse represents a paginated ledger listing
type PaginatedTransactionsResponse struct {
	Data       []models.Transaction `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

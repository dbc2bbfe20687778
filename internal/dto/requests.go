package dto

// RegisterRequest represents the request to register a seller
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	ShopName string `json:"shop_name" binding:"required"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the request to refresh a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateSettingsRequest represents a partial update of seller settings
type UpdateSettingsRequest struct {
	ShopName      *string `json:"shop_name"`
	ContactPhone  *string `json:"contact_phone"`
	Bio           *string `json:"bio"`
	BankEnabled   *bool   `json:"bank_enabled"`
	BankName      *string `json:"bank_name"`
	BankAccount   *string `json:"bank_account"`
	BankHolder    *string `json:"bank_holder"`
	CryptoEnabled *bool   `json:"crypto_enabled"`
	CryptoAddress *string `json:"crypto_address"`
}

// UpdateOrderStatusRequest represents the request to change an order status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateWithdrawalRequest represents the request to create a withdrawal
type CreateWithdrawalRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Method string  `json:"method" binding:"required"`
}

// AddProductRequest represents the request to add a product to the inventory
type AddProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// CatalogFilterRequest represents storefront filter parameters
type CatalogFilterRequest struct {
	Search   string   `form:"search"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/repository/common"
)

var (
	ErrSellerNotFound  = errors.New("seller not found")
	ErrSessionNotFound = errors.New("session not found")
)

type SellerRepository struct {
	db *sqlx.DB
}

func NewSellerRepository(db *sqlx.DB) *SellerRepository {
	return &SellerRepository{db: db}
}

// Create создаёт продавца. Новый продавец получает статус pending и нулевые балансы.
func (r *SellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	query := `
		INSERT INTO sellers (email, password_hash, shop_name, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, wallet_balance, pending_amount, created_at, updated_at
	`
	status := seller.Status
	if status == "" {
		status = models.SellerStatusPending
	}
	if err := r.db.QueryRowxContext(ctx, query,
		strings.ToLower(seller.Email), seller.PasswordHash, seller.ShopName, status,
	).Scan(&seller.ID, &seller.WalletBalance, &seller.PendingAmount, &seller.CreatedAt, &seller.UpdatedAt); err != nil {
		return fmt.Errorf("seller repository: create %w", err)
	}
	seller.Status = status
	return nil
}

// GetByID возвращает продавца по идентификатору.
func (r *SellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	return common.GetByID[models.Seller](ctx, r.db, "sellers", id, ErrSellerNotFound)
}

// GetByEmail возвращает продавца по email.
func (r *SellerRepository) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	return common.GetByField[models.Seller](ctx, r.db, "sellers", "email", strings.ToLower(email), ErrSellerNotFound)
}

// ListActive возвращает активных продавцов в порядке создания.
// Детерминированный порядок важен: при кросс-листинге товара побеждает
// первый встреченный продавец.
func (r *SellerRepository) ListActive(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	err := r.db.SelectContext(ctx, &sellers, `
		SELECT * FROM sellers WHERE status = $1 ORDER BY created_at, id
	`, models.SellerStatusActive)
	return sellers, err
}

// UpdateSettings обновляет настройки магазина, затрагивая только переданные поля.
func (r *SellerRepository) UpdateSettings(ctx context.Context, id uuid.UUID, upd models.SellerSettingsUpdate) (*models.Seller, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	idx := 2

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if upd.ShopName != nil {
		add("shop_name", *upd.ShopName)
	}
	if upd.ContactPhone != nil {
		add("contact_phone", *upd.ContactPhone)
	}
	if upd.Bio != nil {
		add("bio", *upd.Bio)
	}
	if upd.BankEnabled != nil {
		add("bank_enabled", *upd.BankEnabled)
	}
	if upd.BankName != nil {
		add("bank_name", *upd.BankName)
	}
	if upd.BankAccount != nil {
		add("bank_account", *upd.BankAccount)
	}
	if upd.BankHolder != nil {
		add("bank_holder", *upd.BankHolder)
	}
	if upd.CryptoEnabled != nil {
		add("crypto_enabled", *upd.CryptoEnabled)
	}
	if upd.CryptoAddress != nil {
		add("crypto_address", *upd.CryptoAddress)
	}

	query := fmt.Sprintf(`UPDATE sellers SET %s WHERE id = $1 RETURNING *`, strings.Join(sets, ", "))

	var seller models.Seller
	if err := r.db.GetContext(ctx, &seller, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("seller repository: update settings %w", err)
	}
	return &seller, nil
}

// UpdateStatus переводит продавца в новый статус (активация, заморозка).
func (r *SellerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sellers SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("seller repository: update status %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSellerNotFound
	}
	return nil
}

// CreditWallet пополняет кошелёк продавца и пишет строку леджера.
func (r *SellerRepository) CreditWallet(ctx context.Context, id uuid.UUID, amount float64, description string) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE sellers SET wallet_balance = wallet_balance + $2, updated_at = NOW() WHERE id = $1
		`, id, amount)
		if err != nil {
			return fmt.Errorf("seller repository: credit wallet %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrSellerNotFound
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (seller_id, type, amount, description)
			VALUES ($1, $2, $3, $4)
		`, id, models.TransactionTypeDeposit, amount, description); err != nil {
			return fmt.Errorf("seller repository: ledger row %w", err)
		}
		return nil
	})
}

// UpdateLastLoginAt обновляет время последнего входа.
func (r *SellerRepository) UpdateLastLoginAt(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE sellers SET last_login_at = NOW() WHERE id = $1`, id)
	return err
}

// CreateSession сохраняет refresh сессию продавца.
func (r *SellerRepository) CreateSession(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (seller_id, refresh_token, user_agent, ip_address, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	if err := r.db.QueryRowxContext(ctx, query,
		session.SellerID, session.RefreshToken, session.UserAgent, session.IPAddress, session.ExpiresAt,
	).Scan(&session.ID, &session.CreatedAt); err != nil {
		return fmt.Errorf("seller repository: create session %w", err)
	}
	return nil
}

// DeleteSession удаляет сессию по refresh токену.
func (r *SellerRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE refresh_token = $1`, refreshToken)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

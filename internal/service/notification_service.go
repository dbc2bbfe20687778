package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/logger"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

// NotificationServiceRepository описывает зависимости от слоя хранилища.
type NotificationServiceRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	List(ctx context.Context, sellerID uuid.UUID, limit, offset int, unreadOnly bool) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, sellerID uuid.UUID) error
	CountUnread(ctx context.Context, sellerID uuid.UUID) (int, error)
}

// UnreadPusher доставляет счётчик непрочитанного в открытые сокеты продавца.
type UnreadPusher interface {
	PushUnread(sellerID uuid.UUID, count int)
}

// NotificationService управляет уведомлениями продавца.
type NotificationService struct {
	repo   NotificationServiceRepository
	pusher UnreadPusher
}

// NewNotificationService создаёт сервис уведомлений. pusher опционален.
func NewNotificationService(repo NotificationServiceRepository, pusher UnreadPusher) *NotificationService {
	return &NotificationService{repo: repo, pusher: pusher}
}

// Notify создаёт уведомление и проталкивает свежий счётчик непрочитанного.
func (s *NotificationService) Notify(ctx context.Context, sellerID uuid.UUID, payload map[string]interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notification service: marshal payload: %w", err)
	}

	notification := &models.Notification{
		SellerID: sellerID,
		Payload:  raw,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	s.pushUnread(ctx, sellerID)
	return nil
}

// List возвращает уведомления продавца.
func (s *NotificationService) List(ctx context.Context, sellerID uuid.UUID, limit, offset int, unreadOnly bool) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, sellerID, limit, offset, unreadOnly)
}

// CountUnread возвращает количество непрочитанных уведомлений.
func (s *NotificationService) CountUnread(ctx context.Context, sellerID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, sellerID)
}

// MarkAsRead отмечает уведомление продавца прочитанным.
func (s *NotificationService) MarkAsRead(ctx context.Context, sellerID, id uuid.UUID) error {
	notification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.SellerID != sellerID {
		return fmt.Errorf("notification service: уведомление не найдено")
	}

	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		return err
	}

	s.pushUnread(ctx, sellerID)
	return nil
}

// MarkAllAsRead отмечает все уведомления продавца прочитанными.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, sellerID uuid.UUID) error {
	if err := s.repo.MarkAllAsRead(ctx, sellerID); err != nil {
		return err
	}

	s.pushUnread(ctx, sellerID)
	return nil
}

// pushUnread отправляет актуальный счётчик в сокеты, ошибки только логируются.
func (s *NotificationService) pushUnread(ctx context.Context, sellerID uuid.UUID) {
	if s.pusher == nil {
		return
	}

	count, err := s.repo.CountUnread(ctx, sellerID)
	if err != nil {
		if logger.Log != nil {
			logger.Log.WithFields(map[string]interface{}{
				"seller_id": sellerID,
				"error":     err.Error(),
			}).Warn("notification service: не удалось посчитать непрочитанное")
		}
		return
	}

	s.pusher.PushUnread(sellerID, count)
}

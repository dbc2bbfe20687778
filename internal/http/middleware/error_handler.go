package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/logger"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/repository"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Маскирует внутренние ошибки и возвращает понятные сообщения клиенту.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			statusCode := http.StatusInternalServerError
			message := "внутренняя ошибка сервера"

			if logger.Log != nil {
				logger.Log.WithFields(logrus.Fields{
					"error":  err.Error(),
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
				}).Error("Request error")
			}

			switch {
			case errors.Is(err.Err, repository.ErrSellerNotFound):
				statusCode = http.StatusNotFound
				message = "продавец не найден"
			case errors.Is(err.Err, repository.ErrOrderNotFound):
				statusCode = http.StatusNotFound
				message = "заказ не найден"
			case errors.Is(err.Err, repository.ErrProductNotFound):
				statusCode = http.StatusNotFound
				message = "товар не найден"
			case errors.Is(err.Err, repository.ErrWithdrawalNotFound):
				statusCode = http.StatusNotFound
				message = "заявка не найдена"
			case errors.Is(err.Err, repository.ErrNotificationNotFound):
				statusCode = http.StatusNotFound
				message = "уведомление не найдено"
			case errors.Is(err.Err, repository.ErrInsufficientFunds):
				statusCode = http.StatusConflict
				message = "недостаточно средств на кошельке"
			case errors.Is(err.Err, repository.ErrInvalidTransition):
				statusCode = http.StatusConflict
				message = "недопустимая смена статуса заказа"
			default:
				if errStr := err.Error(); errStr != "" && !containsInternalKeywords(errStr) {
					message = errStr
					if contains(errStr, "неверный") || contains(errStr, "невалид") || contains(errStr, "некорректн") {
						statusCode = http.StatusBadRequest
					} else if contains(errStr, "нет прав") || contains(errStr, "заморожен") {
						statusCode = http.StatusForbidden
					}
				}
			}

			c.JSON(statusCode, gin.H{"error": message})
		}
	}
}

// containsInternalKeywords проверяет, содержит ли строка ключевые слова внутренних ошибок.
func containsInternalKeywords(s string) bool {
	keywords := []string{
		"sql:",
		"database",
		"connection",
		"timeout",
		"internal",
		"panic",
		"runtime",
	}

	for _, keyword := range keywords {
		if contains(s, keyword) {
			return true
		}
	}
	return false
}

// contains проверяет, содержит ли строка подстроку (case-insensitive).
func contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

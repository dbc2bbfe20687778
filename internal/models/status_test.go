package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrder(t *testing.T) {
	assert.True(t, CanTransitionOrder(OrderStatusPending, OrderStatusPicked))
	assert.True(t, CanTransitionOrder(OrderStatusAssigned, OrderStatusPicked))
	assert.True(t, CanTransitionOrder(OrderStatusPicked, OrderStatusCompletionRequested))
	assert.True(t, CanTransitionOrder(OrderStatusCompletionRequested, OrderStatusCompleted))

	// Отмена доступна из любого неконечного статуса.
	for _, from := range []string{OrderStatusPending, OrderStatusAssigned, OrderStatusPicked, OrderStatusCompletionRequested} {
		assert.True(t, CanTransitionOrder(from, OrderStatusCancelled), from)
	}

	assert.False(t, CanTransitionOrder(OrderStatusCompleted, OrderStatusCancelled))
	assert.False(t, CanTransitionOrder(OrderStatusCancelled, OrderStatusPending))
	assert.False(t, CanTransitionOrder(OrderStatusPicked, OrderStatusPending))
	assert.False(t, CanTransitionOrder(OrderStatusPending, OrderStatusCompleted))
	assert.False(t, CanTransitionOrder("unknown", OrderStatusPicked))
}

func TestValidOrderStatuses(t *testing.T) {
	for _, status := range []string{
		OrderStatusPending,
		OrderStatusAssigned,
		OrderStatusPicked,
		OrderStatusCompletionRequested,
		OrderStatusCompleted,
		OrderStatusCancelled,
	} {
		assert.True(t, ValidOrderStatuses[status], status)
	}

	assert.False(t, ValidOrderStatuses["unknown"])
	assert.False(t, ValidOrderStatuses[""])
}

func TestIsTerminalOrderStatus(t *testing.T) {
	assert.True(t, IsTerminalOrderStatus(OrderStatusCompleted))
	assert.True(t, IsTerminalOrderStatus(OrderStatusCancelled))
	assert.False(t, IsTerminalOrderStatus(OrderStatusPending))
	assert.False(t, IsTerminalOrderStatus(OrderStatusPicked))
}

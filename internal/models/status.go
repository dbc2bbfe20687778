package models

// OrderStatus константы статусов заказов
const (
	OrderStatusPending             = "pending"
	OrderStatusAssigned            = "assigned"
	OrderStatusPicked              = "picked"
	OrderStatusCompletionRequested = "completion_requested"
	OrderStatusCompleted           = "completed"
	OrderStatusCancelled           = "cancelled"
)

// ValidOrderStatuses список валидных статусов заказов
var ValidOrderStatuses = map[string]bool{
	OrderStatusPending:             true,
	OrderStatusAssigned:            true,
	OrderStatusPicked:              true,
	OrderStatusCompletionRequested: true,
	OrderStatusCompleted:           true,
	OrderStatusCancelled:           true,
}

// orderTransitions — единственная таблица допустимых переходов статусов.
// Все проверки переходов идут через CanTransitionOrder, точечных сравнений
// строк по коду быть не должно.
var orderTransitions = map[string][]string{
	OrderStatusPending:             {OrderStatusAssigned, OrderStatusPicked, OrderStatusCancelled},
	OrderStatusAssigned:            {OrderStatusPicked, OrderStatusCancelled},
	OrderStatusPicked:              {OrderStatusCompletionRequested, OrderStatusCancelled},
	OrderStatusCompletionRequested: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:           {},
	OrderStatusCancelled:           {},
}

// CanTransitionOrder проверяет допустимость перехода from -> to.
func CanTransitionOrder(from, to string) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminalOrderStatus сообщает, является ли статус конечным.
func IsTerminalOrderStatus(status string) bool {
	return len(orderTransitions[status]) == 0
}

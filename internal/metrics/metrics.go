package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreMetrics содержит метрики витрины и расчётов по заказам.
type StoreMetrics struct {
	// Расчёты по заказам
	OrdersPickedTotal       prometheus.Counter
	OrdersPickedAmountTotal prometheus.Counter
	PickRejectionsTotal     *prometheus.CounterVec
	StatusTransitionsTotal  *prometheus.CounterVec

	// Кэш каталога
	CatalogCacheHitsTotal   prometheus.Counter
	CatalogCacheMissesTotal prometheus.Counter
	CatalogRefreshesTotal   prometheus.Counter

	// Выводы средств
	WithdrawalsCreatedTotal prometheus.Counter
	WithdrawalsAmountTotal  prometheus.Counter
}

// NewStoreMetrics регистрирует метрики в дефолтном регистре.
func NewStoreMetrics() *StoreMetrics {
	return &StoreMetrics{
		OrdersPickedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_picked_total",
			Help: "Общее количество успешно взятых в работу заказов",
		}),
		OrdersPickedAmountTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_picked_amount_total",
			Help: "Общая сумма списаний из кошельков при взятии заказов",
		}),
		PickRejectionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "order_pick_rejections_total",
			Help: "Отказы в расчёте по заказу по причинам",
		}, []string{"reason"}),
		StatusTransitionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "order_status_transitions_total",
			Help: "Смены статусов заказов",
		}, []string{"to_status"}),
		CatalogCacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Попадания в кэш снапшота каталога",
		}),
		CatalogCacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Промахи кэша снапшота каталога",
		}),
		CatalogRefreshesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "catalog_refreshes_total",
			Help: "Полные пересборки каталога из базы",
		}),
		WithdrawalsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "withdrawals_created_total",
			Help: "Созданные заявки на вывод средств",
		}),
		WithdrawalsAmountTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "withdrawals_amount_total",
			Help: "Общая сумма заявок на вывод",
		}),
	}
}

// RecordPick записывает успешный расчёт по заказу.
func (m *StoreMetrics) RecordPick(walletDeducted float64) {
	m.OrdersPickedTotal.Inc()
	m.OrdersPickedAmountTotal.Add(walletDeducted)
	m.StatusTransitionsTotal.WithLabelValues("picked").Inc()
}

// RecordPickRejection записывает отказ в расчёте.
func (m *StoreMetrics) RecordPickRejection(reason string) {
	m.PickRejectionsTotal.WithLabelValues(reason).Inc()
}

// RecordStatusTransition записывает смену статуса заказа.
func (m *StoreMetrics) RecordStatusTransition(toStatus string) {
	m.StatusTransitionsTotal.WithLabelValues(toStatus).Inc()
}

// RecordWithdrawal записывает созданную заявку на вывод.
func (m *StoreMetrics) RecordWithdrawal(amount float64) {
	m.WithdrawalsCreatedTotal.Inc()
	m.WithdrawalsAmountTotal.Add(amount)
}

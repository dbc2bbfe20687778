package service

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/cache"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/goroutine"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/logger"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/metrics"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

// CatalogCacheKey — ключ снапшота каталога в кэше.
const CatalogCacheKey = "products_catalog_snapshot"

// CatalogSellerRepository описывает доступ каталога к продавцам.
type CatalogSellerRepository interface {
	ListActive(ctx context.Context) ([]models.Seller, error)
}

// CatalogProductRepository описывает доступ каталога к товарам.
type CatalogProductRepository interface {
	ListSellerProductIDs(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

// CatalogConfig — параметры сборки и кэширования каталога.
type CatalogConfig struct {
	// TTL снапшота в кэше.
	TTL time.Duration
	// Максимум позиций в снапшоте.
	MaxProducts int
	// Размер чанка при пакетной загрузке товаров.
	ChunkSize int
}

// CatalogService собирает публичную витрину из инвентарей активных продавцов
// и отдаёт её из кэша. Запрос в пределах TTL отдаёт снапшот сразу и поднимает
// ровно одну фоновую пересборку; просроченный или пустой кэш пересобирается
// синхронно.
type CatalogService struct {
	sellers  CatalogSellerRepository
	products CatalogProductRepository
	store    cache.Store
	cfg      CatalogConfig
	metrics  *metrics.StoreMetrics

	refreshing atomic.Bool
}

// NewCatalogService создаёт сервис каталога. metrics опционален.
func NewCatalogService(sellers CatalogSellerRepository, products CatalogProductRepository, store cache.Store, cfg CatalogConfig, m *metrics.StoreMetrics) *CatalogService {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.MaxProducts <= 0 {
		cfg.MaxProducts = 50
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 10
	}
	return &CatalogService{
		sellers:  sellers,
		products: products,
		store:    store,
		cfg:      cfg,
		metrics:  m,
	}
}

// GetCatalog возвращает снапшот каталога. Снапшот моложе TTL отдаётся сразу
// и поднимает фоновую пересборку, чтобы следующий читатель получил более
// свежие данные. Просроченный снапшот не отдаётся: кэш пересобирается
// синхронно, как и при пустом кэше.
func (s *CatalogService) GetCatalog(ctx context.Context) (*models.CatalogSnapshot, error) {
	var snapshot models.CatalogSnapshot
	found, err := s.store.Get(ctx, CatalogCacheKey, &snapshot)
	if err != nil && logger.Log != nil {
		logger.Log.WithField("error", err.Error()).Warn("catalog: ошибка чтения кэша, пересобираем")
	}

	if found && time.Since(snapshot.CachedAt) < s.cfg.TTL {
		if s.metrics != nil {
			s.metrics.CatalogCacheHitsTotal.Inc()
		}
		s.refreshInBackground()
		return &snapshot, nil
	}

	if s.metrics != nil {
		s.metrics.CatalogCacheMissesTotal.Inc()
	}
	return s.Refresh(ctx)
}

// Refresh синхронно пересобирает каталог и кладёт снапшот в кэш.
func (s *CatalogService) Refresh(ctx context.Context) (*models.CatalogSnapshot, error) {
	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.storeSnapshot(ctx, snapshot)

	if s.metrics != nil {
		s.metrics.CatalogRefreshesTotal.Inc()
	}
	return snapshot, nil
}

// refreshInBackground поднимает фоновую пересборку, если она ещё не идёт.
// Гарантия "не более одной" держится на atomic-флаге: совпавшие по времени
// запросы просто уходят с текущим снапшотом.
func (s *CatalogService) refreshInBackground() {
	if !s.refreshing.CompareAndSwap(false, true) {
		return
	}
	goroutine.SafeGo(func() {
		defer s.refreshing.Store(false)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.Refresh(ctx); err != nil && logger.Log != nil {
			logger.Log.WithField("error", err.Error()).Error("catalog: фоновая пересборка не удалась")
		}
	})
}

// buildSnapshot собирает каталог: активные продавцы, их инвентари, пакетная
// загрузка товаров чанками и присоединение сводки продавца.
func (s *CatalogService) buildSnapshot(ctx context.Context) (*models.CatalogSnapshot, error) {
	sellers, err := s.sellers.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	// Обратный индекс товар -> продавец. Продавцы идут в детерминированном
	// порядке, при кросс-листинге позиция закрепляется за первым встреченным.
	owner := make(map[uuid.UUID]models.SellerSummary)
	var productIDs []uuid.UUID
	for _, seller := range sellers {
		ids, err := s.products.ListSellerProductIDs(ctx, seller.ID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if _, exists := owner[id]; exists {
				continue
			}
			owner[id] = models.SellerSummary{ID: seller.ID, ShopName: seller.ShopName}
			productIDs = append(productIDs, id)
		}
	}

	products, err := s.fetchInChunks(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	cached := make([]models.CachedProduct, 0, len(products))
	for _, p := range products {
		summary, ok := owner[p.ID]
		if !ok {
			continue
		}
		cached = append(cached, models.CachedProduct{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Category:    p.Category,
			Seller:      summary,
			CreatedAt:   p.CreatedAt,
		})
	}

	sort.Slice(cached, func(i, j int) bool {
		return cached[i].CreatedAt.After(cached[j].CreatedAt)
	})
	if len(cached) > s.cfg.MaxProducts {
		cached = cached[:s.cfg.MaxProducts]
	}

	return &models.CatalogSnapshot{
		Products: cached,
		CachedAt: time.Now(),
	}, nil
}

// fetchInChunks загружает товары пачками по ChunkSize идентификаторов.
// Чанки идут строго последовательно: следующий не начинается, пока не
// завершился предыдущий, так что ширина нагрузки на базу ограничена одним
// чанком. Неудавшийся чанк логируется и пропускается, снапшот собирается из
// успешных; ошибкой считается только ситуация, когда не удался ни один чанк.
// Отсутствующие в базе идентификаторы пропускаются без ошибки.
func (s *CatalogService) fetchInChunks(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var (
		products  []models.Product
		succeeded int
		firstErr  error
	)

	for start := 0; start < len(ids); start += s.cfg.ChunkSize {
		end := start + s.cfg.ChunkSize
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := s.products.GetByIDs(ctx, ids[start:end])
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if logger.Log != nil {
				logger.Log.WithField("error", err.Error()).Warn("catalog: чанк товаров не загружен, пропускаем")
			}
			continue
		}

		succeeded++
		products = append(products, batch...)
	}

	if succeeded == 0 {
		return nil, firstErr
	}
	return products, nil
}

// storeSnapshot пишет снапшот в кэш с TTL окна свежести. При ошибке записи
// выполняется аварийная очистка кэшевых ключей и одна повторная попытка;
// повторная неудача не считается ошибкой операции.
func (s *CatalogService) storeSnapshot(ctx context.Context, snapshot *models.CatalogSnapshot) {
	if err := s.store.Set(ctx, CatalogCacheKey, snapshot, s.cfg.TTL); err == nil {
		return
	}

	if err := s.store.DeleteContaining(ctx, "cache", "temp", "products"); err != nil && logger.Log != nil {
		logger.Log.WithField("error", err.Error()).Warn("catalog: аварийная очистка кэша не удалась")
	}

	if err := s.store.Set(ctx, CatalogCacheKey, snapshot, s.cfg.TTL); err != nil && logger.Log != nil {
		logger.Log.WithField("error", err.Error()).Warn("catalog: снапшот не записан, работаем без кэша")
	}
}

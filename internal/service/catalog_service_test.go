package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/cache"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

type mockSellerRepo struct {
	mock.Mock
}

func (m *mockSellerRepo) ListActive(ctx context.Context) ([]models.Seller, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Seller), args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) ListSellerProductIDs(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Product), args.Error(1)
}

// flakyStore имитирует кэш, у которого запись падает до аварийной очистки.
type flakyStore struct {
	mu          sync.Mutex
	inner       *cache.MemoryStore
	failSet     bool
	deleteCalls [][]string
	setAttempts int
}

func newFlakyStore() *flakyStore {
	return &flakyStore{inner: cache.NewMemoryStore(), failSet: true}
}

func (f *flakyStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return f.inner.Get(ctx, key, dest)
}

func (f *flakyStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setAttempts++
	if f.failSet {
		return errors.New("no space left")
	}
	return f.inner.Set(ctx, key, value, ttl)
}

func (f *flakyStore) DeleteContaining(ctx context.Context, substrings ...string) error {
	f.mu.Lock()
	f.deleteCalls = append(f.deleteCalls, substrings)
	f.failSet = false // очистка освобождает место
	f.mu.Unlock()
	return f.inner.DeleteContaining(ctx, substrings...)
}

func catalogFixture() ([]models.Seller, map[uuid.UUID][]uuid.UUID, []models.Product) {
	sellerA := models.Seller{ID: uuid.New(), ShopName: "Sunrise Gifts", Status: models.SellerStatusActive}
	sellerB := models.Seller{ID: uuid.New(), ShopName: "Retro Corner", Status: models.SellerStatusActive}

	shared := models.Product{ID: uuid.New(), Name: "Кружка", Price: 5, CreatedAt: time.Now().Add(-time.Hour)}
	own := models.Product{ID: uuid.New(), Name: "Плакат", Price: 15, CreatedAt: time.Now()}

	inventories := map[uuid.UUID][]uuid.UUID{
		sellerA.ID: {shared.ID},
		sellerB.ID: {shared.ID, own.ID},
	}

	return []models.Seller{sellerA, sellerB}, inventories, []models.Product{shared, own}
}

func TestCatalogService_Refresh_FirstSellerWinsCrossListing(t *testing.T) {
	sellers, inventories, products := catalogFixture()
	sellerRepo := new(mockSellerRepo)
	productRepo := new(mockProductRepo)
	store := cache.NewMemoryStore()
	svc := NewCatalogService(sellerRepo, productRepo, store, CatalogConfig{}, nil)
	ctx := context.Background()

	sellerRepo.On("ListActive", ctx).Return(sellers, nil)
	for sellerID, ids := range inventories {
		productRepo.On("ListSellerProductIDs", ctx, sellerID).Return(ids, nil)
	}
	productRepo.On("GetByIDs", ctx, mock.Anything).Return(products, nil)

	snapshot, err := svc.Refresh(ctx)
	assert.NoError(t, err)
	assert.Len(t, snapshot.Products, 2)

	// Кросс-листинговая кружка закреплена за первым продавцом
	for _, p := range snapshot.Products {
		if p.Name == "Кружка" {
			assert.Equal(t, "Sunrise Gifts", p.Seller.ShopName)
		}
	}

	// Новые товары первыми
	assert.Equal(t, "Плакат", snapshot.Products[0].Name)
}

func TestCatalogService_Refresh_TrimsToMax(t *testing.T) {
	sellerRepo := new(mockSellerRepo)
	productRepo := new(mockProductRepo)
	svc := NewCatalogService(sellerRepo, productRepo, cache.NewMemoryStore(), CatalogConfig{MaxProducts: 2}, nil)
	ctx := context.Background()

	seller := models.Seller{ID: uuid.New(), ShopName: "Sunrise Gifts", Status: models.SellerStatusActive}
	var ids []uuid.UUID
	var products []models.Product
	for i := 0; i < 5; i++ {
		p := models.Product{ID: uuid.New(), Name: "Товар", Price: 10, CreatedAt: time.Now().Add(time.Duration(i) * time.Minute)}
		ids = append(ids, p.ID)
		products = append(products, p)
	}

	sellerRepo.On("ListActive", ctx).Return([]models.Seller{seller}, nil)
	productRepo.On("ListSellerProductIDs", ctx, seller.ID).Return(ids, nil)
	productRepo.On("GetByIDs", ctx, mock.Anything).Return(products, nil)

	snapshot, err := svc.Refresh(ctx)
	assert.NoError(t, err)
	assert.Len(t, snapshot.Products, 2)
}

func TestCatalogService_Refresh_FetchesInChunks(t *testing.T) {
	sellerRepo := new(mockSellerRepo)
	productRepo := new(mockProductRepo)
	svc := NewCatalogService(sellerRepo, productRepo, cache.NewMemoryStore(), CatalogConfig{ChunkSize: 2}, nil)
	ctx := context.Background()

	seller := models.Seller{ID: uuid.New(), ShopName: "Sunrise Gifts", Status: models.SellerStatusActive}
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		ids = append(ids, uuid.New())
	}

	sellerRepo.On("ListActive", ctx).Return([]models.Seller{seller}, nil)
	productRepo.On("ListSellerProductIDs", ctx, seller.ID).Return(ids, nil)
	productRepo.On("GetByIDs", ctx, mock.MatchedBy(func(chunk []uuid.UUID) bool {
		return len(chunk) <= 2
	})).Return([]models.Product{}, nil)

	_, err := svc.Refresh(ctx)
	assert.NoError(t, err)
	productRepo.AssertNumberOfCalls(t, "GetByIDs", 3)
}

// chunkWidthProductRepo замеряет, сколько загрузок чанков выполняется
// одновременно.
type chunkWidthProductRepo struct {
	mu          sync.Mutex
	ids         []uuid.UUID
	calls       int
	inFlight    int
	maxInFlight int
}

func (r *chunkWidthProductRepo) ListSellerProductIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return r.ids, nil
}

func (r *chunkWidthProductRepo) GetByIDs(context.Context, []uuid.UUID) ([]models.Product, error) {
	r.mu.Lock()
	r.calls++
	r.inFlight++
	if r.inFlight > r.maxInFlight {
		r.maxInFlight = r.inFlight
	}
	r.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	r.mu.Lock()
	r.inFlight--
	r.mu.Unlock()
	return nil, nil
}

func TestCatalogService_Refresh_ChunksFetchedSequentially(t *testing.T) {
	sellerRepo := new(mockSellerRepo)
	productRepo := &chunkWidthProductRepo{}
	for i := 0; i < 50; i++ {
		productRepo.ids = append(productRepo.ids, uuid.New())
	}
	svc := NewCatalogService(sellerRepo, productRepo, cache.NewMemoryStore(), CatalogConfig{ChunkSize: 10}, nil)
	ctx := context.Background()

	seller := models.Seller{ID: uuid.New(), ShopName: "Sunrise Gifts", Status: models.SellerStatusActive}
	sellerRepo.On("ListActive", ctx).Return([]models.Seller{seller}, nil)

	_, err := svc.Refresh(ctx)
	assert.NoError(t, err)

	// Следующий чанк не начинается, пока не завершился предыдущий
	assert.Equal(t, 5, productRepo.calls)
	assert.Equal(t, 1, productRepo.maxInFlight)
}

func TestCatalogService_Refresh_FailedChunkSkipped(t *testing.T) {
	sellerRepo := new(mockSellerRepo)
	productRepo := new(mockProductRepo)
	svc := NewCatalogService(sellerRepo, productRepo, cache.NewMemoryStore(), CatalogConfig{ChunkSize: 2}, nil)
	ctx := context.Background()

	seller := models.Seller{ID: uuid.New(), ShopName: "Sunrise Gifts", Status: models.SellerStatusActive}
	var ids []uuid.UUID
	for i := 0; i < 4; i++ {
		ids = append(ids, uuid.New())
	}
	survivor := models.Product{ID: ids[2], Name: "Уцелевший товар", Price: 10, CreatedAt: time.Now()}

	sellerRepo.On("ListActive", ctx).Return([]models.Seller{seller}, nil)
	productRepo.On("ListSellerProductIDs", ctx, seller.ID).Return(ids, nil)
	productRepo.On("GetByIDs", ctx, []uuid.UUID{ids[0], ids[1]}).Return([]models.Product(nil), errors.New("connection reset"))
	productRepo.On("GetByIDs", ctx, []uuid.UUID{ids[2], ids[3]}).Return([]models.Product{survivor}, nil)

	// Снапшот собирается из успешных чанков
	snapshot, err := svc.Refresh(ctx)
	assert.NoError(t, err)
	assert.Len(t, snapshot.Products, 1)
	assert.Equal(t, "Уцелевший товар", snapshot.Products[0].Name)
}

func TestCatalogService_Refresh_AllChunksFailed(t *testing.T) {
	sellerRepo := new(mockSellerRepo)
	productRepo := new(mockProductRepo)
	svc := NewCatalogService(sellerRepo, productRepo, cache.NewMemoryStore(), CatalogConfig{ChunkSize: 2}, nil)
	ctx := context.Background()

	seller := models.Seller{ID: uuid.New(), ShopName: "Sunrise Gifts", Status: models.SellerStatusActive}
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	sellerRepo.On("ListActive", ctx).Return([]models.Seller{seller}, nil)
	productRepo.On("ListSellerProductIDs", ctx, seller.ID).Return(ids, nil)
	productRepo.On("GetByIDs", ctx, mock.Anything).Return([]models.Product(nil), errors.New("connection reset"))

	_, err := svc.Refresh(ctx)
	assert.Error(t, err)
}

func TestCatalogService_GetCatalog_FreshCacheServedAndRefreshedOnce(t *testing.T) {
	sellerRepo := new(mockSellerRepo)
	productRepo := new(mockProductRepo)
	store := cache.NewMemoryStore()
	svc := NewCatalogService(sellerRepo, productRepo, store, CatalogConfig{TTL: time.Minute}, nil)
	ctx := context.Background()

	seeded := &models.CatalogSnapshot{
		Products: []models.CachedProduct{{ID: uuid.New(), Name: "Кружка", Price: 5}},
		CachedAt: time.Now(),
	}
	assert.NoError(t, store.Set(ctx, CatalogCacheKey, seeded, time.Minute))

	started := make(chan struct{})
	release := make(chan struct{})
	sellerRepo.On("ListActive", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return([]models.Seller{}, nil).Once()

	// Свежий снапшот отдаётся сразу и поднимает фоновую пересборку
	snapshot, err := svc.GetCatalog(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Кружка", snapshot.Products[0].Name)

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("фоновая пересборка не запустилась")
	}

	// Пока пересборка идёт, повторные запросы не поднимают вторую
	snapshot, err = svc.GetCatalog(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Кружка", snapshot.Products[0].Name)
	_, _ = svc.GetCatalog(ctx)

	sellerRepo.AssertNumberOfCalls(t, "ListActive", 1)
	close(release)
}

func TestCatalogService_GetCatalog_ExpiredCacheRebuiltSynchronously(t *testing.T) {
	sellerRepo := new(mockSellerRepo)
	productRepo := new(mockProductRepo)
	store := cache.NewMemoryStore()
	svc := NewCatalogService(sellerRepo, productRepo, store, CatalogConfig{TTL: time.Minute}, nil)
	ctx := context.Background()

	expired := &models.CatalogSnapshot{
		Products: []models.CachedProduct{{ID: uuid.New(), Name: "Старый товар", Price: 5}},
		CachedAt: time.Now().Add(-2 * time.Minute),
	}
	assert.NoError(t, store.Set(ctx, CatalogCacheKey, expired, 10*time.Minute))

	sellerRepo.On("ListActive", ctx).Return([]models.Seller{}, nil).Once()

	// Просроченный снапшот не отдаётся: каталог пересобирается синхронно
	snapshot, err := svc.GetCatalog(ctx)
	assert.NoError(t, err)
	assert.Empty(t, snapshot.Products)
	sellerRepo.AssertNumberOfCalls(t, "ListActive", 1)
}

func TestCatalogService_Refresh_CacheWriteFailureRecovered(t *testing.T) {
	sellers, inventories, products := catalogFixture()
	sellerRepo := new(mockSellerRepo)
	productRepo := new(mockProductRepo)
	store := newFlakyStore()
	svc := NewCatalogService(sellerRepo, productRepo, store, CatalogConfig{}, nil)
	ctx := context.Background()

	sellerRepo.On("ListActive", ctx).Return(sellers, nil)
	for sellerID, ids := range inventories {
		productRepo.On("ListSellerProductIDs", ctx, sellerID).Return(ids, nil)
	}
	productRepo.On("GetByIDs", ctx, mock.Anything).Return(products, nil)

	snapshot, err := svc.Refresh(ctx)
	assert.NoError(t, err)
	assert.Len(t, snapshot.Products, 2)

	// После сбоя записи была аварийная очистка и повторная запись
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.deleteCalls, 1)
	assert.ElementsMatch(t, []string{"cache", "temp", "products"}, store.deleteCalls[0])
	assert.Equal(t, 2, store.setAttempts)
}

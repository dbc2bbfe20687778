package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// Store — клиентский кэш сервиса (снапшот каталога, сводка дашборда).
// Кэш best-effort: любая ошибка чтения трактуется как промах, ошибка записи
// не фатальна для вызывающего.
type Store interface {
	// Get читает значение в dest. Возвращает false при промахе.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set пишет значение с TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// DeleteContaining удаляет ключи, имя которых содержит любую из подстрок.
	// Используется аварийной очисткой при нехватке места.
	DeleteContaining(ctx context.Context, substrings ...string) error
}

// MemoryStore — кэш в памяти процесса с TTL. Используется в тестах и при
// запуске без Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryStore создаёт кэш в памяти и запускает фоновую чистку просроченного.
func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{items: make(map[string]memoryEntry)}
	go ms.cleanup()
	return ms
}

func (ms *MemoryStore) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	ms.mu.RLock()
	entry, exists := ms.items[key]
	ms.mu.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		return false, nil
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (ms *MemoryStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ms.mu.Lock()
	ms.items[key] = memoryEntry{data: data, expiresAt: time.Now().Add(ttl)}
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) DeleteContaining(_ context.Context, substrings ...string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for key := range ms.items {
		for _, sub := range substrings {
			if strings.Contains(key, sub) {
				delete(ms.items, key)
				break
			}
		}
	}
	return nil
}

// cleanup периодически удаляет просроченные записи.
func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		ms.mu.Lock()
		for key, entry := range ms.items {
			if now.After(entry.expiresAt) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}

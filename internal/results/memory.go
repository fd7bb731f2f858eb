package results

import (
	"context"
	"sync"
)

// MemoryStore реализует Store в памяти.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryStore создаёт новый MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Location возвращает место хранения.
func (s *MemoryStore) Location() string {
	return "memory"
}

// Save сохраняет запись.
func (s *MemoryStore) Save(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)

	return nil
}

// List возвращает копию сохранённых записей.
func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]Record, len(s.records))
	copy(records, s.records)

	return records, nil
}

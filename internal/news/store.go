package news

import (
	"sync"
	"time"

	"career-navigator/internal/domain/catalog"
)

// Store holds the current career headlines. Readers get copies.
type Store struct {
	mu        sync.RWMutex
	items     []catalog.NewsItem
	updatedAt time.Time
}

func NewStore(seed []catalog.NewsItem) *Store {
	return &Store{items: append([]catalog.NewsItem{}, seed...), updatedAt: time.Now().UTC()}
}

// Latest returns up to limit headlines in stored order. limit <= 0 returns all.
func (s *Store) Latest(limit int) []catalog.NewsItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.items)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]catalog.NewsItem{}, s.items[:n]...)
}

// Replace swaps the headlines. An empty list keeps the current ones and returns false.
func (s *Store) Replace(items []catalog.NewsItem) bool {
	if len(items) == 0 {
		return false
	}
	s.mu.Lock()
	s.items = append([]catalog.NewsItem{}, items...)
	s.updatedAt = time.Now().UTC()
	s.mu.Unlock()
	return true
}

func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

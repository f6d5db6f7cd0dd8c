package score

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository keeps scores in memory. It is used when no database is configured.
type MemoryRepository struct {
	lock   sync.RWMutex
	nextID int64
	scores []*Score
}

// NewMemoryRepository returns an empty repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Insert implements Repository
func (m *MemoryRepository) Insert(ctx context.Context, s *Score) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.nextID++
	s.ID = m.nextID
	s.Created = time.Now()

	c := *s
	m.scores = append(m.scores, &c)
	return nil
}

// Top implements Repository
func (m *MemoryRepository) Top(ctx context.Context, game string, limit int) ([]*Score, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	scores := make([]*Score, 0)
	for _, s := range m.scores {
		if s.Game == game {
			c := *s
			scores = append(scores, &c)
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}

	return scores, nil
}

// All implements Repository
func (m *MemoryRepository) All(ctx context.Context) ([]*Score, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	scores := make([]*Score, len(m.scores))
	for i, s := range m.scores {
		c := *s
		scores[i] = &c
	}

	return scores, nil
}

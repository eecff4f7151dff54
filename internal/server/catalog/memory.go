package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
)

// Memory is an in-process Backend keeping records sorted by position.
type Memory struct {
	mu     sync.RWMutex
	byID   map[string]*models.Asset
	sorted []*models.Asset
}

func NewMemory() *Memory {
	return &Memory{byID: make(map[string]*models.Asset)}
}

func (m *Memory) search(p Position) int {
	return sort.Search(len(m.sorted), func(i int) bool {
		return !PositionOf(m.sorted[i]).Before(p)
	})
}

func (m *Memory) remove(a *models.Asset) {
	i := m.search(PositionOf(a))
	if i < len(m.sorted) && m.sorted[i].ID == a.ID {
		m.sorted = append(m.sorted[:i], m.sorted[i+1:]...)
	}
}

func (m *Memory) Put(ctx context.Context, a *models.Asset) error {
	if err := ctx.Err(); err != nil {
		return storeUnavailable("memory put", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store(a)
}

func (m *Memory) Update(ctx context.Context, a *models.Asset) error {
	if err := ctx.Err(); err != nil {
		return storeUnavailable("memory update", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[a.ID]; !ok {
		return common.ErrNotFound
	}
	return m.store(a)
}

// store writes a; m.mu must be held.
func (m *Memory) store(a *models.Asset) error {
	if old, ok := m.byID[a.ID]; ok {
		if old.Completed() && !a.Completed() {
			return regressed(a)
		}
		m.remove(old)
	}
	c := a.Clone()
	m.byID[a.ID] = c

	i := m.search(PositionOf(c))
	m.sorted = append(m.sorted, nil)
	copy(m.sorted[i+1:], m.sorted[i:])
	m.sorted[i] = c
	return nil
}

func (m *Memory) Get(ctx context.Context, id string) (*models.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeUnavailable("memory get", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return a.Clone(), nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return storeUnavailable("memory delete", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if a, ok := m.byID[id]; ok {
		m.remove(a)
		delete(m.byID, id)
	}
	return nil
}

func (m *Memory) Range(ctx context.Context, q RangeQuery) (*RangePage, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeUnavailable("memory range", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := 0
	if q.After != nil {
		start = m.search(*q.After)
	}

	page := &RangePage{}
	for _, a := range m.sorted[start:] {
		if !inRange(a, q) {
			continue
		}
		if q.Limit > 0 && len(page.Assets) == q.Limit {
			next := PositionOf(page.Assets[len(page.Assets)-1])
			page.Next = &next
			break
		}
		page.Assets = append(page.Assets, a.Clone())
	}
	return page, nil
}

package fixture

import (
	"io/fs"
	"sync"

	"github.com/adventkit/adventkit/advent"
)

// Cache loads each problem's fixture from a store at most once.
//
// Fixtures are treated as immutable once loaded. Failed loads are not remembered, so a later
// call tries again.
type Cache struct {
	store   fs.FS
	entries map[advent.ProblemID]Fixture
	lock    sync.Mutex
}

func NewCache(store fs.FS) *Cache {
	return &Cache{store: store, entries: make(map[advent.ProblemID]Fixture)}
}

// Get returns the fixture of a problem, loading it on first access. A Cache without a store
// returns empty fixtures.
func (c *Cache) Get(id advent.ProblemID) (Fixture, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if f, ok := c.entries[id]; ok {
		return f, nil
	}
	if c.store == nil {
		return Fixture{ID: id}, nil
	}
	f, err := Load(c.store, id)
	if err != nil {
		return Fixture{}, err
	}
	c.entries[id] = f
	return f, nil
}

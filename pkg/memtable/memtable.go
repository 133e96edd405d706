package memtable

import (
	"github.com/coocood/freecache"
	"time"
)

// MemTable is a process local cache of serialized values, entries expire after the configured TTL
type MemTable struct {
	cache     *freecache.Cache
	ttlSecond int
}

// New creates freecache with size, a zero ttl means entries only leave by eviction
func New(size int, ttl time.Duration) *MemTable {
	return &MemTable{
		cache:     freecache.NewCache(size),
		ttlSecond: int(ttl / time.Second),
	}
}

// Get ...
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set ...
func (m *MemTable) Set(key string, data []byte) {
	_ = m.cache.Set([]byte(key), data, m.ttlSecond)
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}

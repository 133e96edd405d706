package catalog

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/otellib"
	"github.com/QuangTung97/promo-offer/pkg/timecond"
	"github.com/QuangTung97/promo-offer/pkg/util"
	"github.com/QuangTung97/promo-offer/repository"
	"go.uber.org/zap"
	"sync"
	"time"
)

//go:generate moq -out catalog_mocks_test.go . MemTable CacheClient CachePipeline

// MemTable for the in process cache layer (with eviction)
type MemTable interface {
	// Get may not return entry that it just set
	Get(key string) ([]byte, bool)
	Set(key string, data []byte)
	Delete(key string)
}

// GetOutput ...
type GetOutput struct {
	Found bool
	Data  []byte
}

// CacheClient for remote cache (like memcached)
type CacheClient interface {
	// Pipeline can NOT be shared between goroutines
	Pipeline() CachePipeline
}

// CachePipeline for batching cache requests
type CachePipeline interface {
	Get(key string) func() (GetOutput, error)
	Set(key string, value []byte, ttl uint32) func() error
	Delete(key string) func() error
	Finish()
}

// Entry is an offer definition with its time condition parsed once from the offer text.
// GlobalUsedCount of a cached entry is stale, usage counts must be read from the ledger.
type Entry struct {
	Offer     model.Offer        `json:"offer"`
	Condition timecond.Condition `json:"condition"`
}

// NullEntry ...
type NullEntry struct {
	Valid bool
	Entry Entry
}

// NewEntry ...
func NewEntry(offer model.Offer) Entry {
	return Entry{
		Offer:     offer,
		Condition: timecond.Parse(offer.Title, offer.Description),
	}
}

// Catalog is the read-mostly store of offer definitions.
// Lookups go through the mem table, then the remote cache when configured, then the repository.
type Catalog struct {
	provider repository.Provider
	repo     repository.Offer

	mem    MemTable
	client CacheClient
	ttl    uint32

	// generation is incremented by Invalidate, fills started before it are dropped
	mut        sync.Mutex
	generation uint64
}

// Option ...
type Option func(c *Catalog)

// WithCacheClient enables the remote cache layer
func WithCacheClient(client CacheClient) Option {
	return func(c *Catalog) {
		c.client = client
	}
}

// WithRemoteTTL sets expiration of remote cache entries, zero means no expiration
func WithRemoteTTL(ttl time.Duration) Option {
	return func(c *Catalog) {
		c.ttl = uint32(ttl / time.Second)
	}
}

// New ...
func New(provider repository.Provider, repo repository.Offer, mem MemTable, options ...Option) *Catalog {
	c := &Catalog{
		provider: provider,
		repo:     repo,
		mem:      mem,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func offerKey(id int64) string {
	return fmt.Sprintf("offer:%d", id)
}

func codeKey(code string) string {
	return "offer-code:" + code
}

func encodeID(id int64) []byte {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], uint64(id))
	return data[:]
}

func decodeID(data []byte) (int64, bool) {
	if len(data) < 8 {
		return 0, false
	}
	return int64(binary.LittleEndian.Uint64(data)), true
}

func (c *Catalog) remoteGet(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}

	pipe := c.client.Pipeline()
	defer pipe.Finish()

	output, err := pipe.Get(key)()
	if err != nil {
		otellib.Extract(ctx).Warn("catalog: remote cache get", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return output.Data, output.Found
}

type cacheValue struct {
	key  string
	data []byte
}

func (c *Catalog) currentGeneration() uint64 {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.generation
}

func (c *Catalog) memSet(gen uint64, values ...cacheValue) bool {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.generation != gen {
		return false
	}
	for _, v := range values {
		c.mem.Set(v.key, v.data)
	}
	return true
}

func (c *Catalog) remoteDelete(keys []string) error {
	pipe := c.client.Pipeline()
	defer pipe.Finish()

	fns := make([]func() error, 0, len(keys))
	for _, key := range keys {
		fns = append(fns, pipe.Delete(key))
	}
	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) store(ctx context.Context, gen uint64, values ...cacheValue) {
	if !c.memSet(gen, values...) {
		return
	}

	if c.client == nil {
		return
	}

	pipe := c.client.Pipeline()
	fns := make([]func() error, 0, len(values))
	for _, v := range values {
		fns = append(fns, pipe.Set(v.key, v.data, c.ttl))
	}
	for _, fn := range fns {
		if err := fn(); err != nil {
			otellib.Extract(ctx).Warn("catalog: remote cache set", zap.Error(err))
		}
	}
	pipe.Finish()

	// an invalidation may have deleted the remote keys before these sets landed
	if c.currentGeneration() == gen {
		return
	}
	keys := make([]string, 0, len(values))
	for _, v := range values {
		keys = append(keys, v.key)
	}
	if err := c.remoteDelete(keys); err != nil {
		otellib.Extract(ctx).Warn("catalog: remote cache delete stale", zap.Error(err))
	}
}

func (c *Catalog) getCached(ctx context.Context, gen uint64, key string) ([]byte, bool) {
	data, ok := c.mem.Get(key)
	if ok {
		return data, true
	}

	data, ok = c.remoteGet(ctx, key)
	if ok {
		c.memSet(gen, cacheValue{key: key, data: data})
	}
	return data, ok
}

func decodeEntry(data []byte) (Entry, bool) {
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

func (c *Catalog) loaded(ctx context.Context, gen uint64, nullOffer model.NullOffer, err error) (NullEntry, error) {
	if err != nil {
		return NullEntry{}, err
	}
	if !nullOffer.Valid {
		return NullEntry{}, nil
	}

	entry := NewEntry(nullOffer.Offer)

	data, err := json.Marshal(entry)
	if err != nil {
		return NullEntry{}, err
	}

	c.store(ctx, gen,
		cacheValue{key: offerKey(entry.Offer.ID), data: data},
		cacheValue{key: codeKey(entry.Offer.Code), data: encodeID(entry.Offer.ID)},
	)
	return NullEntry{Valid: true, Entry: entry}, nil
}

func (c *Catalog) get(ctx context.Context, gen uint64, id int64) (NullEntry, error) {
	data, ok := c.getCached(ctx, gen, offerKey(id))
	if ok {
		if entry, ok := decodeEntry(data); ok {
			return NullEntry{Valid: true, Entry: entry}, nil
		}
	}

	nullOffer, err := c.repo.GetOffer(c.provider.Readonly(ctx), id)
	return c.loaded(ctx, gen, nullOffer, err)
}

// Get finds an offer by id
func (c *Catalog) Get(ctx context.Context, id int64) (NullEntry, error) {
	return c.get(ctx, c.currentGeneration(), id)
}

// FindByCode finds an offer by its normalized code
func (c *Catalog) FindByCode(ctx context.Context, code string) (NullEntry, error) {
	code = util.NormalizeCode(code)
	gen := c.currentGeneration()

	data, ok := c.getCached(ctx, gen, codeKey(code))
	if ok {
		if id, ok := decodeID(data); ok {
			return c.get(ctx, gen, id)
		}
	}

	nullOffer, err := c.repo.FindOfferByCode(c.provider.Readonly(ctx), code)
	return c.loaded(ctx, gen, nullOffer, err)
}

// Invalidate must be called after every committed mutation of the offer.
// Cache fills of lookups started before the call are discarded.
func (c *Catalog) Invalidate(ctx context.Context, offer model.Offer) error {
	keys := []string{offerKey(offer.ID), codeKey(offer.Code)}

	c.mut.Lock()
	c.generation++
	for _, key := range keys {
		c.mem.Delete(key)
	}
	c.mut.Unlock()

	if c.client == nil {
		return nil
	}

	if err := c.remoteDelete(keys); err != nil {
		return fmt.Errorf("catalog: invalidate offer %d: %w", offer.ID, err)
	}
	return nil
}

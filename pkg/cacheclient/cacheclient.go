package cacheclient

import (
	"github.com/QuangTung97/go-memcache/memcache"
	"github.com/QuangTung97/promo-offer/service/catalog"
	"time"
)

// Client ...
type Client struct {
	client *memcache.Client
}

// Pipeline ...
type Pipeline struct {
	pipe *memcache.Pipeline
}

var _ catalog.CacheClient = &Client{}

var _ catalog.CachePipeline = Pipeline{}

// New ...
func New(addr string, numConns int) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
	}
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	p := c.client.Pipeline()
	defer p.Finish()
	return p.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// Pipeline ...
func (c *Client) Pipeline() catalog.CachePipeline {
	return Pipeline{
		pipe: c.client.Pipeline(),
	}
}

// Get ...
func (p Pipeline) Get(key string) func() (catalog.GetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{})
	return func() (catalog.GetOutput, error) {
		resp, err := fn()
		if err != nil {
			return catalog.GetOutput{}, err
		}
		if resp.Type == memcache.MGetResponseTypeVA {
			return catalog.GetOutput{
				Found: true,
				Data:  resp.Data,
			}, nil
		}
		return catalog.GetOutput{}, nil
	}
}

// Set ...
func (p Pipeline) Set(key string, value []byte, ttl uint32) func() error {
	fn := p.pipe.MSet(key, value, memcache.MSetOptions{
		TTL: ttl,
	})
	return func() error {
		_, err := fn()
		return err
	}
}

// Delete ...
func (p Pipeline) Delete(key string) func() error {
	fn := p.pipe.MDel(key, memcache.MDelOptions{})
	return func() error {
		_, err := fn()
		return err
	}
}

// Finish ...
func (p Pipeline) Finish() {
	p.pipe.Finish()
}

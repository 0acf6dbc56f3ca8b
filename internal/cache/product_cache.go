package cache

import (
	"context"
	"log"
	"sync"

	"github.com/verdantmarket/farmstand/internal/metrics"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/storage"
)

type ProductLister interface {
	ListAll(ctx context.Context) ([]*repository.Product, error)
}

// ProductCache holds the public stock view in memory. Mutating callers
// must invalidate: a reserve, a product edit or a rollover all leave the
// cached counters stale.
type ProductCache struct {
	mu    sync.RWMutex
	cache map[string]storage.Product
	repo  ProductLister
}

func NewProductCache(repo ProductLister) *ProductCache {
	return &ProductCache{
		cache: make(map[string]storage.Product),
		repo:  repo,
	}
}

func (c *ProductCache) LoadInitialData(ctx context.Context) error {
	rows, err := c.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, row := range rows {
		if !row.Public {
			continue
		}
		c.cache[row.ID] = storage.ProductFromRow(row)
	}
	metrics.ProductCacheItems.Set(float64(len(c.cache)))
	log.Printf("Loaded %d products into cache.", len(c.cache))
	return nil
}

func (c *ProductCache) Get(productID string) (*storage.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	product, found := c.cache[productID]
	if !found {
		return nil, false
	}
	return &product, true
}

func (c *ProductCache) Set(product storage.Product) {
	// Hidden products are not served from cache.
	if !product.Public {
		c.Delete(product.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[product.ID] = product
	metrics.ProductCacheItems.Set(float64(len(c.cache)))
}

func (c *ProductCache) Delete(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[productID]; found {
		delete(c.cache, productID)
		metrics.ProductCacheItems.Set(float64(len(c.cache)))
	}
}

// Flush drops every entry. Called on weekly rollover, when all counters
// reset at once.
func (c *ProductCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]storage.Product)
	metrics.ProductCacheItems.Set(0)
}

// Package analysis holds the derived-analysis cache: the advisor's most
// recent output, valid only until the course collection changes.
package analysis

import (
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/storage"
)

// Cache stores the last AI analysis in the store's analysis slot.
// Staleness is resolved by deletion, never by a dirty flag: any course
// mutation clears the cache, and a re-analysis clears it before the new
// request starts so a failed call leaves it empty rather than stale.
// Task mutations never touch it.
type Cache struct {
	store storage.Provider
}

func NewCache(store storage.Provider) *Cache {
	return &Cache{store: store}
}

// Get returns the cached result, or nil when absent.
func (c *Cache) Get() *models.AnalysisResult {
	return c.store.GetAnalysis()
}

// Set stores a fresh result whole. Partial updates do not exist.
func (c *Cache) Set(result *models.AnalysisResult) error {
	return c.store.SaveAnalysis(result)
}

// Clear drops the cached result.
func (c *Cache) Clear() error {
	return c.store.SaveAnalysis(nil)
}

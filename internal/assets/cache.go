package assets

import (
	"context"
	"sync"
)

// Kind labels what an imported file contains.
type Kind string

// Asset kinds.
const (
	KindModel    Kind = "model"
	KindMaterial Kind = "material"
	KindSound    Kind = "sound"
)

// Handle is one imported asset: the filename it came from, what it is, and
// how many importers asked for it.
type Handle struct {
	Filename string
	Kind     Kind
	RefCount int
}

// Importer produces a handle payload for a filename on first import.
// Returning an error aborts the import; nothing is cached.
type Importer func(ctx context.Context, filename string) (Kind, error)

// Cache memoizes asset imports by filename. Safe for concurrent use; the
// import itself runs under the lock, so two callers racing on the same
// filename import it once.
type Cache struct {
	mu      sync.Mutex
	handles map[string]*Handle
}

// NewCache creates an empty asset cache.
func NewCache() *Cache {
	return &Cache{handles: make(map[string]*Handle)}
}

// GetOrImport returns the cached handle for filename, importing it first if
// this is the filename's first request. Every call increments the handle's
// reference count.
func (c *Cache) GetOrImport(ctx context.Context, filename string, importer Importer) (*Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.handles[filename]; ok {
		h.RefCount++
		return h, nil
	}

	kind, err := importer(ctx, filename)
	if err != nil {
		return nil, err
	}
	h := &Handle{Filename: filename, Kind: kind, RefCount: 1}
	c.handles[filename] = h
	return h, nil
}

// Get returns the cached handle without importing, or nil.
func (c *Cache) Get(filename string) *Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handles[filename]
}

// Len reports the number of distinct imported files.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}

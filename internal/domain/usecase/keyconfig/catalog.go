package keyconfig

import (
	"sort"
	"sync"

	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
)

// Catalog interns keys by label so that configuration and the code that
// logs resolve a name to the same key identity.
type Catalog struct {
	mu   sync.Mutex
	keys map[string]*entity.Key
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{keys: make(map[string]*entity.Key)}
}

// Key returns the key interned under name, creating it on first use
func (c *Catalog) Key(name string) *entity.Key {
	return c.intern(name, func() *entity.Key { return entity.NewKey(name) })
}

// KeyWithDescription returns the key interned under name, creating it with
// description on first use. An empty name interns by description.
func (c *Catalog) KeyWithDescription(name, description string) *entity.Key {
	if name == "" {
		return c.intern(description, func() *entity.Key { return entity.NewDescribedKey(description) })
	}
	return c.intern(name, func() *entity.Key { return entity.NewKeyWithDescription(name, description) })
}

// Lookup returns the key interned under label without creating one
func (c *Catalog) Lookup(label string) (*entity.Key, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key, ok := c.keys[label]
	return key, ok
}

// Labels returns the interned labels in sorted order
func (c *Catalog) Labels() []string {
	c.mu.Lock()
	labels := make([]string, 0, len(c.keys))
	for label := range c.keys {
		labels = append(labels, label)
	}
	c.mu.Unlock()

	sort.Strings(labels)
	return labels
}

func (c *Catalog) intern(label string, create func() *entity.Key) *entity.Key {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key, ok := c.keys[label]; ok {
		return key
	}
	key := create()
	c.keys[label] = key
	return key
}

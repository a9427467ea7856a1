package assets

import (
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Cache wraps an AssetPack and keeps every successfully loaded blockstates
// file and model in memory. Concurrent loads of the same file only read it
// once. Failed loads are not cached.
//
// Values returned by a Cache are shared between callers and must not be modified.
type Cache struct {
	pack  *AssetPack
	store *cache.Cache
	group singleflight.Group
}

// NewCache returns a cache for pack
func NewCache(pack *AssetPack) *Cache {
	return &Cache{
		pack:  pack,
		store: cache.New(cache.NoExpiration, 0),
	}
}

// Pack returns the wrapped AssetPack
func (c *Cache) Pack() *AssetPack {
	return c.pack
}

// Len returns the number of cached values
func (c *Cache) Len() int {
	return c.store.ItemCount()
}

// Flush removes everything from the cache
func (c *Cache) Flush() {
	c.store.Flush()
}

// LoadBlockStates works like AssetPack.LoadBlockStates
func (c *Cache) LoadBlockStates(id string) (*BlockStates, error) {
	loc := BlockStatesLocation(id)
	v, err := c.load(loc, func() (interface{}, error) {
		return c.pack.LoadBlockStates(id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*BlockStates), nil
}

// LoadBlockModel works like AssetPack.LoadBlockModel
func (c *Cache) LoadBlockModel(id string) (*Model, error) {
	return c.LoadModel(BlockModelLocation(id))
}

// LoadItemModel works like AssetPack.LoadItemModel
func (c *Cache) LoadItemModel(id string) (*Model, error) {
	return c.LoadModel(ItemModelLocation(id))
}

// LoadModel works like AssetPack.LoadModel
func (c *Cache) LoadModel(loc ResourceLocation) (*Model, error) {
	v, err := c.load(loc, func() (interface{}, error) {
		return c.pack.LoadModel(loc)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Model), nil
}

// LoadBlockModelRecursive works like AssetPack.LoadBlockModelRecursive but
// shares parents between calls
func (c *Cache) LoadBlockModelRecursive(id string) ([]*Model, error) {
	m, err := c.LoadBlockModel(id)
	if err != nil {
		return nil, err
	}
	return m.ResolveParentChain(c)
}

// LoadItemModelRecursive works like AssetPack.LoadItemModelRecursive
func (c *Cache) LoadItemModelRecursive(id string) ([]*Model, error) {
	m, err := c.LoadItemModel(id)
	if err != nil {
		return nil, err
	}
	return m.ResolveParentChain(c)
}

func (c *Cache) load(loc ResourceLocation, fn func() (interface{}, error)) (interface{}, error) {
	key := loc.key()
	if v, ok := c.store.Get(key); ok {
		return v, nil
	}
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// another call might have finished between Get and Do
		if v, ok := c.store.Get(key); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		c.store.Set(key, v, cache.NoExpiration)
		return v, nil
	})
	return v, err
}

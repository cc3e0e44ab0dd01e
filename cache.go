package jwsalg

import (
	"crypto"
	"sync"
)

type keyCacheKey struct {
	family   Family
	material string
}

type keyCacheEntry struct {
	once sync.Once
	key  crypto.PublicKey
	err  error
}

// keyCache memoizes ParsePublicKey results. Each entry is parsed at most
// once and shared by every primitive resolved from the same material.
// Entries are never evicted.
type keyCache struct {
	entries sync.Map // keyCacheKey -> *keyCacheEntry
}

// parse returns the cached entry for (material, family), parsing it on
// first use, and reports whether the entry already existed.
func (c *keyCache) parse(material string, family Family) (*keyCacheEntry, bool) {
	k := keyCacheKey{family: family, material: material}
	v, ok := c.entries.Load(k)
	if !ok {
		v, ok = c.entries.LoadOrStore(k, &keyCacheEntry{})
	}

	e := v.(*keyCacheEntry)
	e.once.Do(func() { e.key, e.err = ParsePublicKey(material, family) })
	return e, ok
}

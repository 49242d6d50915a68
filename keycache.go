package sigtoken

import (
	"container/list"
	"sync"

	"golang.org/x/crypto/blake2b"
)

type keyCacheEntry struct {
	key [blake2b.Size256]byte
	kp  Keypair
}

// KeyCache is a thread-safe LRU cache of derived keypairs.
// Entries are indexed by a BLAKE2b digest of the secret, so the secret itself
// is never retained. When the cache is full the least recently used keypair
// is dropped.
type KeyCache struct {
	capacity int
	items    map[[blake2b.Size256]byte]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

// NewKeyCache creates a cache holding at most capacity keypairs.
// The capacity must be positive, otherwise it panics.
func NewKeyCache(capacity int) *KeyCache {
	if capacity <= 0 {
		panic("sigtoken: key cache capacity must be positive")
	}
	return &KeyCache{
		capacity: capacity,
		items:    make(map[[blake2b.Size256]byte]*list.Element),
		eviction: list.New(),
	}
}

// Keypair returns the keypair for secret, deriving and caching it on a miss.
func (c *KeyCache) Keypair(secret string) (Keypair, error) {
	if secret == "" {
		return Keypair{}, ErrMissingSecret
	}
	key := blake2b.Sum256([]byte(secret))

	c.mu.Lock()
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		kp := elem.Value.(*keyCacheEntry).kp
		c.mu.Unlock()
		return kp, nil
	}
	c.mu.Unlock()

	// Derive outside the lock; concurrent misses for one secret yield equal keypairs.
	kp, err := MakeKeypair(secret)
	if err != nil {
		return Keypair{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*keyCacheEntry).kp, nil
	}

	c.items[key] = c.eviction.PushFront(&keyCacheEntry{key: key, kp: kp})
	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}

	return kp, nil
}

// Len returns the number of cached keypairs.
func (c *KeyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Clear drops every cached keypair.
func (c *KeyCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[[blake2b.Size256]byte]*list.Element)
	c.eviction.Init()
}

// Must be called with lock held.
func (c *KeyCache) evictOldest() {
	elem := c.eviction.Back()
	if elem == nil {
		return
	}
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*keyCacheEntry).key)
}

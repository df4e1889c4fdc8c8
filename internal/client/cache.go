package client

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache keys. Keys are hierarchical: invalidating "users" also drops
// "users/list" and "users/with-hobbies".
const (
	KeyUsers            = "users"
	KeyUsersList        = "users/list"
	KeyUsersWithHobbies = "users/with-hobbies"
)

// Loader produces the value cached under a key.
type Loader func(ctx context.Context) (any, error)

// Listener receives the outcome of every refetch of a subscribed key.
type Listener func(value any, err error)

type subscription struct {
	load      Loader
	listeners map[int]Listener
}

// Cache holds fetched values by key. Concurrent loads of one key share a
// single call, and a load that started before an invalidation never
// repopulates the entry.
type Cache struct {
	mu      sync.Mutex
	entries map[string]any
	gens    map[string]uint64
	subs    map[string]*subscription
	nextID  int
	flights singleflight.Group
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]any),
		gens:    make(map[string]uint64),
		subs:    make(map[string]*subscription),
	}
}

// Get returns the cached value for key without loading it.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Fetch returns the cached value for key or loads and stores it.
func (c *Cache) Fetch(ctx context.Context, key string, load Loader) (any, error) {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	return c.load(ctx, key, load)
}

func (c *Cache) load(ctx context.Context, key string, load Loader) (any, error) {
	c.mu.Lock()
	gen, tracked := c.gens[key]
	if !tracked {
		c.gens[key] = 0
	}
	c.mu.Unlock()

	v, err, _ := c.flights.Do(key+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.gens[key] == gen {
			c.entries[key] = v
		}
		c.mu.Unlock()
		return v, nil
	})
	return v, err
}

// Subscribe registers fn for refetches of key triggered by Invalidate. load
// is used for those refetches. The returned function removes the listener.
func (c *Cache) Subscribe(key string, load Loader, fn Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub, ok := c.subs[key]
	if !ok {
		sub = &subscription{listeners: make(map[int]Listener)}
		c.subs[key] = sub
	}
	sub.load = load
	id := c.nextID
	c.nextID++
	sub.listeners[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(sub.listeners, id)
		if len(sub.listeners) == 0 && c.subs[key] == sub {
			delete(c.subs, key)
		}
	}
}

// Invalidate drops every entry under prefix, then refetches the subscribed
// keys under prefix and hands the results to their listeners before returning.
func (c *Cache) Invalidate(ctx context.Context, prefix string) {
	type refetch struct {
		key       string
		load      Loader
		listeners []Listener
	}

	c.mu.Lock()
	for key := range c.entries {
		if matchesPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	for key := range c.gens {
		if matchesPrefix(key, prefix) {
			c.gens[key]++
		}
	}
	var pending []refetch
	for key, sub := range c.subs {
		if !matchesPrefix(key, prefix) || sub.load == nil {
			continue
		}
		r := refetch{key: key, load: sub.load}
		for _, fn := range sub.listeners {
			r.listeners = append(r.listeners, fn)
		}
		pending = append(pending, r)
	}
	c.mu.Unlock()

	for _, r := range pending {
		v, err := c.load(ctx, r.key, r.load)
		for _, fn := range r.listeners {
			fn(v, err)
		}
	}
}

func matchesPrefix(key, prefix string) bool {
	return key == prefix || strings.HasPrefix(key, prefix+"/")
}

// Package query keys fetched results by their full parameter tuple and
// guarantees a superseded in-flight fetch can never overwrite a newer one.
// Mutations publish invalidation events that listing pages subscribe to,
// replacing ambient cache-key magic with an explicit bus.
package query

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/rashedq/artscape/internal/errs"
)

// Key identifies one logical query: resource plus the encoded parameter
// tuple. Two fetches with different filters or pages never share a key.
type Key string

// KeyOf builds a key from a resource name and its query parameters.
func KeyOf(resource string, q url.Values) Key {
	if len(q) == 0 {
		return Key(resource)
	}
	return Key(resource + "?" + q.Encode())
}

// Resource returns the part of the key before the parameter tuple.
func (k Key) Resource() string {
	s := string(k)
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return s[:i]
	}
	return s
}

type entry struct {
	seq uint64
	val any
}

// Cache stores the last committed result per key and tracks, per key, the
// sequence of the newest issued request. Committing with an older
// sequence is refused, so completion order cannot resurrect stale state.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]entry
	issued  map[Key]uint64
	subs    map[uuid.UUID]subscription
}

type subscription struct {
	resource string
	fn       func()
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[Key]entry),
		issued:  make(map[Key]uint64),
		subs:    make(map[uuid.UUID]subscription),
	}
}

// Begin registers a new request for key and returns its sequence token.
// Any fetch started earlier for the same key is now superseded.
func (c *Cache) Begin(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued[key]++
	return c.issued[key]
}

// Commit stores val for key if seq still identifies the newest request.
// It reports whether the value was applied.
func (c *Cache) Commit(key Key, seq uint64, val any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.issued[key] {
		return false
	}
	c.entries[key] = entry{seq: seq, val: val}
	return true
}

// Get returns the last committed value for key.
func (c *Cache) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.val, true
}

// Invalidate drops every cached entry under resource and notifies its
// subscribers. Called after a successful mutation.
func (c *Cache) Invalidate(resource string) {
	c.mu.Lock()
	var fns []func()
	for k := range c.entries {
		if k.Resource() == resource {
			delete(c.entries, k)
		}
	}
	for _, s := range c.subs {
		if s.resource == resource {
			fns = append(fns, s.fn)
		}
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Subscribe registers fn to run after each invalidation of resource.
func (c *Cache) Subscribe(resource string, fn func()) uuid.UUID {
	id, _ := uuid.NewV4()
	c.mu.Lock()
	c.subs[id] = subscription{resource: resource, fn: fn}
	c.mu.Unlock()
	return id
}

// Unsubscribe removes a subscription; unknown ids are ignored.
func (c *Cache) Unsubscribe(id uuid.UUID) {
	c.mu.Lock()
	delete(c.subs, id)
	c.mu.Unlock()
}

// Run fetches through the cache: it registers the request, runs fetch,
// and commits the result unless a newer request for the same key was
// issued meanwhile, in which case it returns errs.ErrStale.
func Run[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	seq := c.Begin(key)
	out, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if !c.Commit(key, seq, out) {
		var zero T
		return zero, errs.ErrStale
	}
	return out, nil
}

// Cached returns the last committed value for key when it decodes to T.
func Cached[T any](c *Cache, key Key) (T, bool) {
	v, ok := c.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

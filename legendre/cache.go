package legendre

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes rules per degree. Lookups take a read lock; misses go
// through a singleflight group so concurrent first requests for one degree
// run New exactly once. Failed constructions are not stored.
//
// A Cache is safe for concurrent use. The zero value is not usable; call
// NewCache.
type Cache struct {
	mu     sync.RWMutex
	rules  map[int]*Legendre
	group  singleflight.Group
	opts   []Option
	logger *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used for cache events. Panics on nil.
func WithLogger(l *slog.Logger) CacheOption {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(c *Cache) { c.logger = l.With(slog.String("component", "legendre.cache")) }
}

// WithRuleOptions sets the construction options applied to every rule the
// cache builds.
func WithRuleOptions(opts ...Option) CacheOption {
	return func(c *Cache) { c.opts = append([]Option(nil), opts...) }
}

// NewCache returns an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		rules:  make(map[int]*Legendre),
		logger: slog.Default().With(slog.String("component", "legendre.cache")),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

var shared = NewCache()

// Shared returns the process-wide cache built with default options.
func Shared() *Cache { return shared }

// Get returns the rule of degree n, building it on first use.
func (c *Cache) Get(n int) (*Legendre, error) {
	c.mu.RLock()
	l, ok := c.rules[n]
	c.mu.RUnlock()
	if ok {
		return l, nil
	}

	v, err, sharedCall := c.group.Do(strconv.Itoa(n), func() (interface{}, error) {
		// another flight may have finished between the RUnlock and Do
		c.mu.RLock()
		l, ok := c.rules[n]
		c.mu.RUnlock()
		if ok {
			return l, nil
		}

		start := time.Now()
		l, err := New(n, c.opts...)
		if err != nil {
			c.logger.Warn("rule construction failed",
				slog.Int("degree", n),
				slog.String("error", err.Error()),
			)
			return nil, err
		}

		c.mu.Lock()
		c.rules[n] = l
		c.mu.Unlock()

		c.logger.Debug("rule computed",
			slog.Int("degree", n),
			slog.String("fingerprint", l.Rule().Fingerprint()),
			slog.Duration("duration", time.Since(start)),
		)
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	if sharedCall {
		c.logger.Debug("rule shared with concurrent caller", slog.Int("degree", n))
	}

	return v.(*Legendre), nil
}

// Put stores l under its degree, replacing any previous entry. It is used to
// seed a cache from a persisted table.
func (c *Cache) Put(l *Legendre) {
	if l == nil {
		return
	}
	c.mu.Lock()
	c.rules[l.degree] = l
	c.mu.Unlock()
}

// Len returns the number of cached degrees.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rules)
}

// Reset drops every cached rule.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.rules = make(map[int]*Legendre)
	c.mu.Unlock()
}

package orbyte

import (
	"io"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// executable is the common surface of text/template and html/template.
type executable interface {
	Execute(w io.Writer, data any) error
}

type cacheEntry struct {
	tpl   executable
	mtime time.Time
}

// templateCache caches parsed templates keyed by source path and locale,
// invalidated by file modification time. singleflight collapses concurrent
// parses of the same key.
type templateCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group
}

func newTemplateCache() *templateCache {
	return &templateCache{entries: make(map[string]*cacheEntry)}
}

// get returns the cached template for key while its recorded mtime still
// matches, parsing via parse otherwise.
func (c *templateCache) get(key string, mtime time.Time, parse func() (executable, error)) (executable, error) {
	c.mu.RLock()
	ent, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && ent.mtime.Equal(mtime) {
		return ent.tpl, nil
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		tpl, err := parse()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = &cacheEntry{tpl: tpl, mtime: mtime}
		c.mu.Unlock()
		return tpl, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(executable), nil
}

// reset clears all entries.
func (c *templateCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

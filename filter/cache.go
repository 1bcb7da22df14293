package filter

import (
	"container/list"
	"sync"
)

// lruCache is a thread-safe LRU of compiled filters keyed by expression
type lruCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
	mu        sync.Mutex
}

// entry is stored in the cache
type entry struct {
	key   string
	value *ExprFilter
}

// newLRUCache creates a new LRU cache with the given size
func newLRUCache(size int) *lruCache {
	return &lruCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get retrieves a value from the cache
func (c *lruCache) Get(key string) (*ExprFilter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, exists := c.items[key]
	if !exists {
		return nil, false
	}

	c.evictList.MoveToFront(node)
	return node.Value.(*entry).value, true
}

// Put adds or updates a value in the cache
func (c *lruCache) Put(key string, value *ExprFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Check if key exists
	if node, exists := c.items[key]; exists {
		c.evictList.MoveToFront(node)
		node.Value.(*entry).value = value
		return
	}

	// Add new entry
	ent := &entry{key: key, value: value}
	node := c.evictList.PushFront(ent)
	c.items[key] = node

	// Evict if necessary
	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

// removeOldest removes the least recently used item
func (c *lruCache) removeOldest() {
	node := c.evictList.Back()
	if node != nil {
		c.evictList.Remove(node)
		kv := node.Value.(*entry)
		delete(c.items, kv.key)
	}
}

// Clear removes all items from the cache
func (c *lruCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.evictList.Init()
}

// Size returns the number of items in the cache
func (c *lruCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.evictList.Len()
}

// Compiler compiles expressions, reusing earlier compilations.
type Compiler struct {
	cache *lruCache
}

// NewCompiler creates a compiler that remembers up to size expressions
func NewCompiler(size int) *Compiler {
	if size < 1 {
		size = 1
	}
	return &Compiler{cache: newLRUCache(size)}
}

// Compile returns the cached filter for expression or compiles it.
func (c *Compiler) Compile(expression string) (*ExprFilter, error) {
	if f, ok := c.cache.Get(expression); ok {
		return f, nil
	}

	f, err := CompileExprFilter(expression)
	if err != nil {
		return nil, err
	}
	c.cache.Put(expression, f)
	return f, nil
}

var defaultCompiler = NewCompiler(64)

// Compile compiles expression with the package-wide cache.
func Compile(expression string) (*ExprFilter, error) {
	return defaultCompiler.Compile(expression)
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

var ErrClosed = errors.New("store: connection closed")

// Backend is the raw persistence surface behind a Hub. Values are stored as
// JSON text under string keys.
type Backend interface {
	Load(key string) (string, bool, error)
	Save(key, value string) error
	Close() error
}

// Hub owns one backend and fans out change notifications between the
// connections sharing it. Each open view holds its own Conn; a write made
// through one Conn is announced to every other Conn, never to the writer.
type Hub struct {
	mu      sync.Mutex
	backend Backend
	conns   map[*Conn]struct{}
}

func NewHub(backend Backend) *Hub {
	return &Hub{
		backend: backend,
		conns:   make(map[*Conn]struct{}),
	}
}

// Conn registers and returns a new connection on the hub.
func (h *Hub) Conn() *Conn {
	conn := &Conn{
		hub:      h,
		watchers: make(map[int]func(key string)),
	}
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	return conn
}

func (h *Hub) Close() error {
	h.mu.Lock()
	h.conns = make(map[*Conn]struct{})
	h.mu.Unlock()
	return h.backend.Close()
}

func (h *Hub) broadcast(origin *Conn, key string) {
	h.mu.Lock()
	targets := make([]*Conn, 0, len(h.conns))
	for conn := range h.conns {
		if conn != origin {
			targets = append(targets, conn)
		}
	}
	h.mu.Unlock()

	for _, conn := range targets {
		conn.dispatch(key)
	}
}

func (h *Hub) drop(conn *Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

// Conn is one execution context's handle on the shared store.
type Conn struct {
	hub       *Hub
	mu        sync.Mutex
	watchers  map[int]func(key string)
	nextWatch int
	closed    bool
}

// Get decodes the value stored under key into out. It reports false when the
// key is absent or the stored value fails to decode, leaving out untouched so
// callers keep their documented default.
func (c *Conn) Get(key string, out any) bool {
	raw, ok, err := c.hub.backend.Load(key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

// Set encodes v as JSON, persists it under key, and notifies every other
// connection on the hub.
func (c *Conn) Set(key string, v any) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := c.hub.backend.Save(key, string(raw)); err != nil {
		return fmt.Errorf("store: save %s: %w", key, err)
	}
	c.hub.broadcast(c, key)
	return nil
}

// Watch registers a callback fired with the key whenever another connection
// writes. The returned cancel removes the registration.
func (c *Conn) Watch(fn func(key string)) func() {
	c.mu.Lock()
	id := c.nextWatch
	c.nextWatch++
	c.watchers[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
}

// Close detaches the connection from the hub. Further Sets fail and no more
// change notifications are delivered.
func (c *Conn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.watchers = make(map[int]func(key string))
	c.mu.Unlock()
	c.hub.drop(c)
}

func (c *Conn) dispatch(key string) {
	c.mu.Lock()
	fns := make([]func(string), 0, len(c.watchers))
	for _, fn := range c.watchers {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn(key)
	}
}

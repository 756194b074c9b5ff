package ws

import "sync"

// RawConn is the write surface of a websocket connection, satisfied by
// the library's *websocket.Conn.
type RawConn interface {
	WriteJSON(v any) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Conn wraps a connection with a write lock. The underlying library
// allows at most one writer at a time, and state broadcasts, error
// replies and close frames come from different goroutines.
type Conn struct {
	raw RawConn
	mu  sync.Mutex
}

func NewConn(raw RawConn) *Conn {
	return &Conn{raw: raw}
}

func (c *Conn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.raw.WriteJSON(v)
}

func (c *Conn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.raw.WriteMessage(messageType, data)
}

func (c *Conn) Close() error {
	return c.raw.Close()
}

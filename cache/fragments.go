package cache

import (
	"bytes"
	"fmt"
	"io"
	"time"
)

// Fragments caches rendered HTML keyed by the view state that produced it.
type Fragments struct {
	c *Cache[[]byte]
}

func NewFragments(ttl time.Duration) (*Fragments, error) {
	c, err := New(func(b []byte) int64 { return int64(len(b)) }, "Fragment Cache", ttl)
	if err != nil {
		return nil, fmt.Errorf("error creating fragment cache: %w", err)
	}
	return &Fragments{c: c}, nil
}

// Render returns the cached bytes for key, rendering and storing them on a
// miss. Render errors are never cached.
func (f *Fragments) Render(key string, render func(w io.Writer) error) ([]byte, error) {
	if b, ok := f.c.Get(key); ok {
		return b, nil
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return nil, fmt.Errorf("error rendering fragment %s: %w", key, err)
	}
	b := buf.Bytes()
	f.c.Set(key, b, int64(len(b)))
	return b, nil
}

func (f *Fragments) Wait() {
	f.c.Wait()
}

func (f *Fragments) Stats() map[string]interface{} {
	return f.c.Stats()
}

func (f *Fragments) Close() {
	f.c.Close()
}

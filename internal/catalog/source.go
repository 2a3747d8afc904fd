package catalog

import "sync/atomic"

// Source holds the current catalog. Readers take the pointer once and keep
// using that value; a reload never mutates a catalog already handed out.
type Source struct {
	cur atomic.Pointer[Catalog]
}

// NewSource starts with c.
func NewSource(c *Catalog) *Source {
	s := &Source{}
	s.cur.Store(c)
	return s
}

// Current returns the catalog in effect.
func (s *Source) Current() *Catalog {
	return s.cur.Load()
}

// Swap replaces the catalog and returns the old one.
func (s *Source) Swap(c *Catalog) *Catalog {
	return s.cur.Swap(c)
}

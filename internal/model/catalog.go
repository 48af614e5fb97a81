package model

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog = errors.New("catalog has no items")
	ErrDuplicateID  = errors.New("duplicate item id")
	ErrMissingID    = errors.New("item has no id")
)

// Catalog is an ordered, non-empty set of items with unique IDs.
// Order defines previous/next adjacency and never changes after construction.
type Catalog struct {
	name  string
	items []Item
	index map[string]int
}

// NewCatalog validates items and builds a Catalog.
// The items slice is copied; later changes to it do not affect the catalog.
func NewCatalog(name string, items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyCatalog)
	}

	c := &Catalog{
		name:  name,
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(c.items, items)

	for i, item := range c.items {
		if item.ID == "" {
			return nil, fmt.Errorf("%s: item %d (%q): %w", name, i, item.Title, ErrMissingID)
		}
		if _, exists := c.index[item.ID]; exists {
			return nil, fmt.Errorf("%s: %q: %w", name, item.ID, ErrDuplicateID)
		}
		c.index[item.ID] = i
	}

	return c, nil
}

// Name returns the catalog name.
func (c *Catalog) Name() string {
	return c.name
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []Item {
	result := make([]Item, len(c.items))
	copy(result, c.items)
	return result
}

// At returns the item at position i.
func (c *Catalog) At(i int) (Item, bool) {
	if i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i], true
}

// Item finds an item by ID.
func (c *Catalog) Item(id string) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Contains reports whether id belongs to the catalog.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// IndexOf returns the zero-based position of id, or -1 if absent.
func (c *Catalog) IndexOf(id string) int {
	i, ok := c.index[id]
	if !ok {
		return -1
	}
	return i
}

// First returns the ID of the first item.
func (c *Catalog) First() string {
	return c.items[0].ID
}

// Last returns the ID of the last item.
func (c *Catalog) Last() string {
	return c.items[len(c.items)-1].ID
}

// Next returns the ID after id. At the last item, or for an unknown id,
// it returns id unchanged (navigation clamps, it does not wrap).
func (c *Catalog) Next(id string) string {
	i := c.IndexOf(id)
	if i < 0 || i >= len(c.items)-1 {
		return id
	}
	return c.items[i+1].ID
}

// Previous returns the ID before id, clamped like Next.
func (c *Catalog) Previous(id string) string {
	i := c.IndexOf(id)
	if i <= 0 {
		return id
	}
	return c.items[i-1].ID
}

package carousel

import "github.com/nikbrunner/carousel/internal/model"

// Selection holds the single selected item of a catalog.
// It always refers to a valid item; it starts on the first one.
type Selection struct {
	catalog  *model.Catalog
	selected string
}

// NewSelection creates a Selection positioned on the catalog's first item.
func NewSelection(catalog *model.Catalog) Selection {
	return Selection{
		catalog:  catalog,
		selected: catalog.First(),
	}
}

// Select moves the selection to id if the catalog contains it.
// Unknown ids are ignored. Returns true when the id was accepted.
func (s *Selection) Select(id string) bool {
	if !s.catalog.Contains(id) {
		return false
	}
	s.selected = id
	return true
}

// Current returns the selected item ID.
func (s Selection) Current() string {
	return s.selected
}

// Index returns the position of the selected item in the catalog.
func (s Selection) Index() int {
	return s.catalog.IndexOf(s.selected)
}

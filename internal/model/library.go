package model

import "fmt"

// Library holds every catalog the application can show, in display order.
type Library struct {
	Catalogs []CatalogRecord `json:"catalogs"`
}

// CatalogRecord is the stored form of a catalog plus its presentation settings.
type CatalogRecord struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	ScrollLock bool   `json:"scrollLock"` // engage the busy lock while centering
	Items      []Item `json:"items"`
}

// NewLibrary creates an empty Library with initialized slices.
func NewLibrary() *Library {
	return &Library{
		Catalogs: []CatalogRecord{},
	}
}

// Catalog validates the record and builds its Catalog.
func (r CatalogRecord) Catalog() (*Catalog, error) {
	return NewCatalog(r.Name, r.Items)
}

// DisplayTitle returns Title, falling back to Name.
func (r CatalogRecord) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// GetCatalogByName finds a catalog record by name, returns nil if not found.
func (l *Library) GetCatalogByName(name string) *CatalogRecord {
	for i := range l.Catalogs {
		if l.Catalogs[i].Name == name {
			return &l.Catalogs[i]
		}
	}
	return nil
}

// Build validates every record and returns the catalogs in library order.
func (l *Library) Build() ([]*Catalog, error) {
	catalogs := make([]*Catalog, 0, len(l.Catalogs))
	for _, rec := range l.Catalogs {
		c, err := rec.Catalog()
		if err != nil {
			return nil, fmt.Errorf("build library: %w", err)
		}
		catalogs = append(catalogs, c)
	}
	return catalogs, nil
}

// EnsureIDs assigns generated IDs to items stored without one.
// Returns the number of items that received an ID.
func (l *Library) EnsureIDs() int {
	assigned := 0
	for ci := range l.Catalogs {
		items := l.Catalogs[ci].Items
		for ii := range items {
			if items[ii].ID == "" {
				items[ii].ID = generateUUID()
				assigned++
			}
		}
	}
	return assigned
}

// ImportMerge appends items to the named catalog, creating it if needed.
// Items whose title and subtitle already exist in that catalog are skipped.
// Returns (added, skipped) counts.
func (l *Library) ImportMerge(name string, items []Item) (added, skipped int) {
	rec := l.GetCatalogByName(name)
	if rec == nil {
		l.Catalogs = append(l.Catalogs, CatalogRecord{Name: name, Title: name})
		rec = &l.Catalogs[len(l.Catalogs)-1]
	}

	seen := make(map[string]bool, len(rec.Items))
	for _, item := range rec.Items {
		seen[item.Title+"\x00"+item.Subtitle] = true
	}

	for _, item := range items {
		key := item.Title + "\x00" + item.Subtitle
		if seen[key] {
			skipped++
			continue
		}
		if item.ID == "" {
			item.ID = generateUUID()
		}
		seen[key] = true
		rec.Items = append(rec.Items, item)
		added++
	}

	return added, skipped
}

// DefaultLibrary returns the built-in demo catalogs: a plain slide row and a
// product row that uses the scroll lock.
func DefaultLibrary() *Library {
	return &Library{
		Catalogs: []CatalogRecord{
			{
				Name:  "slides",
				Title: "Interactive Fade Masked Carousel",
				Items: []Item{
					{ID: "slide-1", Title: "Slide 1", Subtitle: "First slide content", Color: "#F87171"},
					{ID: "slide-2", Title: "Slide 2", Subtitle: "Second slide content", Color: "#60A5FA"},
					{ID: "slide-3", Title: "Slide 3", Subtitle: "Third slide content", Color: "#4ADE80"},
					{ID: "slide-4", Title: "Slide 4", Subtitle: "Fourth slide content", Color: "#FACC15"},
					{ID: "slide-5", Title: "Slide 5", Subtitle: "Fifth slide content", Color: "#C084FC"},
					{ID: "slide-6", Title: "Slide 6", Subtitle: "Sixth slide content", Color: "#F472B6"},
					{ID: "slide-7", Title: "Slide 7", Subtitle: "Seventh slide content", Color: "#818CF8"},
					{ID: "slide-8", Title: "Slide 8", Subtitle: "Eighth slide content", Color: "#FB923C"},
				},
			},
			{
				Name:       "products",
				Title:      "Enhanced Interactive Carousel",
				ScrollLock: true,
				Items: []Item{
					{ID: "product-a", Title: "Product A", Subtitle: "Premium Quality", Badge: "$99", Color: "#EF4444"},
					{ID: "product-b", Title: "Product B", Subtitle: "Best Seller", Badge: "$149", Color: "#3B82F6"},
					{ID: "product-c", Title: "Product C", Subtitle: "Eco Friendly", Badge: "$79", Color: "#22C55E"},
					{ID: "product-d", Title: "Product D", Subtitle: "Limited Edition", Badge: "$199", Color: "#EAB308"},
					{ID: "product-e", Title: "Product E", Subtitle: "New Arrival", Badge: "$129", Color: "#A855F7"},
					{ID: "product-f", Title: "Product F", Subtitle: "Customer Favorite", Badge: "$89", Color: "#EC4899"},
				},
			},
		},
	}
}

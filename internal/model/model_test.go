package model_test

import (
	"errors"
	"testing"

	"github.com/nikbrunner/carousel/internal/model"
)

func letters(ids ...string) []model.Item {
	items := make([]model.Item, len(ids))
	for i, id := range ids {
		items[i] = model.Item{ID: id, Title: "Item " + id}
	}
	return items
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name    string
		items   []model.Item
		wantErr error
	}{
		{"valid", letters("a", "b", "c"), nil},
		{"single item", letters("a"), nil},
		{"empty", nil, model.ErrEmptyCatalog},
		{"duplicate id", letters("a", "b", "a"), model.ErrDuplicateID},
		{"missing id", []model.Item{{ID: "a"}, {Title: "no id"}}, model.ErrMissingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := model.NewCatalog("test", tt.items)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if c.Len() != len(tt.items) {
					t.Errorf("Len() = %d, want %d", c.Len(), len(tt.items))
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalog_CopiesItems(t *testing.T) {
	items := letters("a", "b")
	c, err := model.NewCatalog("test", items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items[0].ID = "mutated"

	if c.First() != "a" {
		t.Errorf("catalog changed with source slice: First() = %q", c.First())
	}

	got := c.Items()
	got[1].ID = "mutated"
	if c.Last() != "b" {
		t.Errorf("catalog changed through Items(): Last() = %q", c.Last())
	}
}

func TestCatalog_IndexOf(t *testing.T) {
	c, _ := model.NewCatalog("test", letters("a", "b", "c"))

	tests := []struct {
		id   string
		want int
	}{
		{"a", 0},
		{"b", 1},
		{"c", 2},
		{"nonexistent", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := c.IndexOf(tt.id); got != tt.want {
			t.Errorf("IndexOf(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestCatalog_NextPrevious_Clamp(t *testing.T) {
	c, _ := model.NewCatalog("test", letters("a", "b", "c"))

	tests := []struct {
		name     string
		id       string
		wantNext string
		wantPrev string
	}{
		{"first", "a", "b", "a"},
		{"middle", "b", "c", "a"},
		{"last", "c", "c", "b"},
		{"unknown", "zzz", "zzz", "zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Next(tt.id); got != tt.wantNext {
				t.Errorf("Next(%q) = %q, want %q", tt.id, got, tt.wantNext)
			}
			if got := c.Previous(tt.id); got != tt.wantPrev {
				t.Errorf("Previous(%q) = %q, want %q", tt.id, got, tt.wantPrev)
			}
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, _ := model.NewCatalog("test", letters("a", "b"))

	if item, ok := c.Item("b"); !ok || item.Title != "Item b" {
		t.Errorf("Item(b) = %+v, %v", item, ok)
	}
	if _, ok := c.Item("x"); ok {
		t.Error("Item(x) should not be found")
	}
	if _, ok := c.At(2); ok {
		t.Error("At(2) should be out of range")
	}
	if _, ok := c.At(-1); ok {
		t.Error("At(-1) should be out of range")
	}
	if !c.Contains("a") || c.Contains("x") {
		t.Error("Contains mismatch")
	}
}

func TestNewItem_GeneratesID(t *testing.T) {
	a := model.NewItem(model.NewItemParams{Title: "A"})
	b := model.NewItem(model.NewItemParams{Title: "B"})

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected generated IDs")
	}
	if a.ID == b.ID {
		t.Errorf("expected distinct IDs, both %q", a.ID)
	}
	if a.Label() != "Select A" {
		t.Errorf("Label() = %q", a.Label())
	}
}

func TestLibrary_ImportMerge(t *testing.T) {
	lib := model.NewLibrary()

	added, skipped := lib.ImportMerge("links", []model.Item{
		{Title: "Go", Subtitle: "https://go.dev"},
		{Title: "Go", Subtitle: "https://go.dev"},
		{Title: "Charm", Subtitle: "https://charm.sh"},
	})

	if added != 2 || skipped != 1 {
		t.Errorf("first import: added=%d skipped=%d, want 2/1", added, skipped)
	}

	added, skipped = lib.ImportMerge("links", []model.Item{
		{Title: "Charm", Subtitle: "https://charm.sh"},
		{Title: "Lipgloss", Subtitle: "https://github.com/charmbracelet/lipgloss"},
	})

	if added != 1 || skipped != 1 {
		t.Errorf("second import: added=%d skipped=%d, want 1/1", added, skipped)
	}

	rec := lib.GetCatalogByName("links")
	if rec == nil {
		t.Fatal("expected catalog to be created")
	}
	if len(rec.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(rec.Items))
	}
	for _, item := range rec.Items {
		if item.ID == "" {
			t.Errorf("imported item %q has no ID", item.Title)
		}
	}
}

func TestLibrary_EnsureIDs(t *testing.T) {
	lib := &model.Library{
		Catalogs: []model.CatalogRecord{
			{Name: "x", Items: []model.Item{{ID: "keep"}, {Title: "new"}}},
		},
	}

	if n := lib.EnsureIDs(); n != 1 {
		t.Errorf("EnsureIDs() = %d, want 1", n)
	}
	if lib.Catalogs[0].Items[0].ID != "keep" {
		t.Error("existing ID was replaced")
	}
	if lib.Catalogs[0].Items[1].ID == "" {
		t.Error("missing ID was not assigned")
	}
}

func TestDefaultLibrary_Builds(t *testing.T) {
	catalogs, err := model.DefaultLibrary().Build()
	if err != nil {
		t.Fatalf("default library invalid: %v", err)
	}
	if len(catalogs) != 2 {
		t.Fatalf("expected 2 catalogs, got %d", len(catalogs))
	}
	if catalogs[0].Len() != 8 {
		t.Errorf("slides: expected 8 items, got %d", catalogs[0].Len())
	}
	if catalogs[1].Len() != 6 {
		t.Errorf("products: expected 6 items, got %d", catalogs[1].Len())
	}
}

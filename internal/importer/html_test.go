package importer_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/carousel/internal/importer"
)

func TestParseHTMLItems_SingleLink(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://example.com" ADD_DATE="1234567890">Example Site</A>
</DL><p>`

	items, err := importer.ParseHTMLItems(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Title != "Example Site" {
		t.Errorf("expected title 'Example Site', got %q", item.Title)
	}
	if item.Subtitle != "https://example.com" {
		t.Errorf("expected subtitle 'https://example.com', got %q", item.Subtitle)
	}
	if item.Badge != "" {
		t.Errorf("expected no badge at root, got %q", item.Badge)
	}
	if item.ID == "" {
		t.Error("expected non-empty ID")
	}
}

func TestParseHTMLItems_NestedFoldersBecomeBadges(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3 ADD_DATE="1234567890">Development</H3>
    <DL><p>
        <DT><H3 ADD_DATE="1234567890">React</H3>
        <DL><p>
            <DT><A HREF="https://react.dev">React Docs</A>
        </DL><p>
        <DT><A HREF="https://github.com">GitHub</A>
    </DL><p>
    <DT><A HREF="https://google.com">Google</A>
</DL><p>`

	items, err := importer.ParseHTMLItems(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		title string
		badge string
	}{
		{"React Docs", "React"},
		{"GitHub", "Development"},
		{"Google", ""},
	}

	if len(items) != len(tests) {
		t.Fatalf("expected %d items, got %d", len(tests), len(items))
	}
	for i, tt := range tests {
		if items[i].Title != tt.title {
			t.Errorf("item %d: title = %q, want %q", i, items[i].Title, tt.title)
		}
		if items[i].Badge != tt.badge {
			t.Errorf("item %d (%s): badge = %q, want %q", i, tt.title, items[i].Badge, tt.badge)
		}
	}
}

func TestParseHTMLItems_SkipsLinksWithoutHref(t *testing.T) {
	html := `<DL><p>
    <DT><A>No URL</A>
    <DT><A HREF="https://go.dev"></A>
</DL><p>`

	items, err := importer.ParseHTMLItems(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "https://go.dev" {
		t.Errorf("empty link text should fall back to URL, got %q", items[0].Title)
	}
}

func TestParseHTMLItems_UniqueIDs(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="https://a.example">Same</A>
    <DT><A HREF="https://a.example">Same</A>
</DL><p>`

	items, err := importer.ParseHTMLItems(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 || items[0].ID == items[1].ID {
		t.Errorf("expected two items with distinct IDs, got %+v", items)
	}
}

package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/carousel/internal/model"
)

// DefaultExportPath returns the default export file path for a catalog.
// Format: ~/Downloads/<catalog>-export-YYYY-MM-DD.html
func DefaultExportPath(catalog string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s-export-%s.html", catalog, time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML writes a catalog as Netscape bookmark HTML, one folder per
// catalog. Items become links with the subtitle as href; items with a badge
// are grouped into a subfolder named after it, in first-seen order.
func ExportHTML(rec model.CatalogRecord) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	fmt.Fprintf(&b, "    <DT><H3>%s</H3>\n", html.EscapeString(rec.DisplayTitle()))
	b.WriteString("    <DL><p>\n")

	var badges []string
	grouped := make(map[string][]model.Item)
	for _, item := range rec.Items {
		if item.Badge == "" {
			continue
		}
		if _, ok := grouped[item.Badge]; !ok {
			badges = append(badges, item.Badge)
		}
		grouped[item.Badge] = append(grouped[item.Badge], item)
	}

	for _, badge := range badges {
		fmt.Fprintf(&b, "        <DT><H3>%s</H3>\n", html.EscapeString(badge))
		b.WriteString("        <DL><p>\n")
		writeItems(&b, grouped[badge], 3)
		b.WriteString("        </DL><p>\n")
	}

	var loose []model.Item
	for _, item := range rec.Items {
		if item.Badge == "" {
			loose = append(loose, item)
		}
	}
	writeItems(&b, loose, 2)

	b.WriteString("    </DL><p>\n")
	b.WriteString("</DL><p>\n")

	return b.String()
}

func writeItems(b *strings.Builder, items []model.Item, indent int) {
	prefix := strings.Repeat("    ", indent)
	for _, item := range items {
		fmt.Fprintf(b,
			"%s<DT><A HREF=\"%s\">%s</A>\n",
			prefix,
			html.EscapeString(item.Subtitle),
			html.EscapeString(item.Title),
		)
	}
}

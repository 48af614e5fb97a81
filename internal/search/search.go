package search

import (
	"cmp"
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/nikbrunner/carousel/internal/model"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Catalog        string // catalog name
	Item           model.Item
	Index          int // position of the item in its catalog
	MatchedIndexes []int
	Score          int
}

// itemTitles implements fuzzy.Source over catalog items.
type itemTitles []model.Item

func (it itemTitles) String(i int) string {
	return it[i].Title
}

func (it itemTitles) Len() int {
	return len(it)
}

// FuzzySearchItems searches one catalog by item title.
// Returns results sorted by match score (best first).
func FuzzySearchItems(catalog *model.Catalog, query string) []SearchResult {
	if query == "" || catalog == nil {
		return nil
	}

	items := itemTitles(catalog.Items())
	matches := fuzzy.FindFrom(query, items)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Catalog:        catalog.Name(),
			Item:           items[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// FuzzySearchLibrary searches every catalog in the library and merges the
// results by score. Ties keep library order.
func FuzzySearchLibrary(catalogs []*model.Catalog, query string) []SearchResult {
	var results []SearchResult
	for _, c := range catalogs {
		results = append(results, FuzzySearchItems(c, query)...)
	}
	sortByScore(results)
	return results
}

// sortByScore orders results best score first, keeping ties in place.
func sortByScore(results []SearchResult) {
	slices.SortStableFunc(results, func(a, b SearchResult) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

package index

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rickgao/skyblock-ah/internal/model"
)

// Index maps normalized item names to the auctions listing them.
type Index struct {
	byName      map[string][]model.Auction
	pages       int
	count       int
	lastUpdated int64
}

// Normalize returns the lookup key for an item display name.
func Normalize(name string) string {
	return strings.ToLower(name)
}

// Build merges pages into an Index. Pages are processed in ascending page
// index order and records keep their in-page order, so each name's list
// reflects page order, then record order.
func Build(pages []model.Page) *Index {
	ordered := slices.Clone(pages)
	slices.SortStableFunc(ordered, func(a, b model.Page) int {
		return cmp.Compare(a.Page, b.Page)
	})

	idx := &Index{
		byName: make(map[string][]model.Auction),
		pages:  len(ordered),
	}

	for _, p := range ordered {
		for _, a := range p.Auctions {
			key := Normalize(a.ItemName)
			idx.byName[key] = append(idx.byName[key], a)
		}
		idx.count += len(p.Auctions)
		idx.lastUpdated = max(idx.lastUpdated, p.LastUpdated)
	}

	return idx
}

// Lookup returns the auctions for name, matched case-insensitively. Unknown
// names yield an empty slice. The returned slice is a copy.
func (idx *Index) Lookup(name string) []model.Auction {
	auctions, ok := idx.byName[Normalize(name)]
	if !ok {
		return []model.Auction{}
	}
	return slices.Clone(auctions)
}

// Names returns every normalized item name in sorted order.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.byName))
	for name := range idx.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of distinct normalized names.
func (idx *Index) Len() int {
	return len(idx.byName)
}

// Count returns the total number of auctions across all names.
func (idx *Index) Count() int {
	return idx.count
}

// Pages returns the number of pages the index was built from.
func (idx *Index) Pages() int {
	return idx.pages
}

// LastUpdated returns the newest upstream lastUpdated value (ms since epoch)
// among the merged pages.
func (idx *Index) LastUpdated() int64 {
	return idx.lastUpdated
}

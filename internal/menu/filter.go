package menu

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter keeps items whose label (or aria label) fuzzily contains query,
// ignoring case. Order is preserved; an empty query keeps everything.
func Filter(items []Item, query string) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]Item(nil), items...)
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if fuzzy.MatchFold(query, item.Label) || fuzzy.MatchFold(query, item.AriaLabel) {
			out = append(out, item)
		}
	}
	return out
}

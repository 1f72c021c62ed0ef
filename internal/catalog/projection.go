package catalog

import "strings"

// Project returns the categories the storefront should render for the
// current search text and badge filter.
//
// While searching, the active filter is ignored: an item matches when its
// Arabic name contains the search text as-is, or its English name contains
// it case-insensitively. With no search text, an item matches when the
// filter is "all" or equals the item's badge. Categories left with no
// matching items are dropped. The source slice is never mutated.
func Project(cats []Category, search, filter string) []Category {
	if search == "" && filter == FilterAll {
		return cats
	}

	out := make([]Category, 0, len(cats))
	for _, cat := range cats {
		items := make([]MenuItem, 0, len(cat.Items))
		for _, it := range cat.Items {
			if matches(it, search, filter) {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		cat.Items = items
		out = append(out, cat)
	}
	return out
}

func matches(it MenuItem, search, filter string) bool {
	if search != "" {
		return strings.Contains(it.NameAR, search) ||
			strings.Contains(strings.ToLower(it.NameEN), strings.ToLower(search))
	}
	return filter == FilterAll || string(it.Badge) == filter
}

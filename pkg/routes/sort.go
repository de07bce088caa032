package routes

import (
	"sort"
	"strings"
)

// Sort orders descriptors for registration: middleware strictly before
// routes, then deeper paths first within each class, ties broken by
// descending path comparison. Middleware-first lets hosts apply
// cross-cutting hooks regardless of how sensitive their framework is to
// registration order; deeper-first keeps a shallow wildcard-ish pattern
// from shadowing a more specific one in frameworks that match in
// registration order.
//
// The sort is stable, so descriptors comparing equal keep walk order and
// repeated scans of an unchanged tree stay structurally identical.
func Sort(descriptors []*Descriptor) {
	sort.SliceStable(descriptors, func(i, j int) bool {
		a, b := descriptors[i], descriptors[j]

		if a.IsMiddleware != b.IsMiddleware {
			return a.IsMiddleware
		}

		da, db := pathDepth(a.Path), pathDepth(b.Path)
		if da != db {
			return da > db
		}

		return a.Path > b.Path
	})
}

// pathDepth counts a pattern's slash-delimited components.
func pathDepth(path string) int {
	return len(strings.Split(path, "/"))
}

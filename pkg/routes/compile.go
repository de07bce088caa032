package routes

import "strings"

// compilePath turns a bare relative path (conventions already stripped,
// slash-separated) into a route pattern plus its parameter names.
//
// Directory-level parts equal to "index" contribute nothing. Each
// remaining part is tokenized on "." with bracket tokens kept whole, then
// every dot-segment becomes one pattern component:
//
//   - [...name] records name and stops compilation entirely; nothing
//     after it, in this part or any later part, is consumed
//   - [name]    becomes ":name" and records name
//   - any other text becomes a literal component
//
// Components join with "/", gain a leading "/", and repeated slashes
// collapse. A catch-all appends a trailing "/*" after the collapse, which
// is why a root-level catch-all compiles to "//*": the bare path has no
// components, collapse leaves "/", and the "/*" lands on top. That shape
// is kept as-is; Lint flags it rather than this function rewriting it.
func compilePath(bare string) (path string, params []string, catchAll bool) {
	var components []string

	for _, part := range strings.Split(bare, "/") {
		// "index" parts add no path component.
		if part == "index" {
			continue
		}

		for _, seg := range splitDotSegments(part) {
			switch {
			case strings.HasPrefix(seg, "[...") && strings.HasSuffix(seg, "]"):
				params = append(params, seg[4:len(seg)-1])
				catchAll = true
			case strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]"):
				name := seg[1 : len(seg)-1]
				params = append(params, name)
				components = append(components, ":"+name)
			default:
				components = append(components, seg)
			}

			if catchAll {
				break
			}
		}
		if catchAll {
			break
		}
	}

	path = "/" + strings.Join(components, "/")

	// Collapse repeated slashes left behind by empty dot-segments.
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}

	if catchAll {
		path += "/*"
	}

	return path, params, catchAll
}

// splitDotSegments splits a path part on "." while treating anything
// between "[" and "]" as opaque, so tokens like "[...path]" survive
// intact.
func splitDotSegments(part string) []string {
	var segs []string
	var b strings.Builder
	depth := 0

	for _, r := range part {
		switch r {
		case '[':
			depth++
			b.WriteRune(r)
		case ']':
			if depth > 0 {
				depth--
			}
			b.WriteRune(r)
		case '.':
			if depth > 0 {
				b.WriteRune(r)
				continue
			}
			segs = append(segs, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}

	return append(segs, b.String())
}

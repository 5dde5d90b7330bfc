package template

import "sort"

// Walk visits every node of t depth-first in template order. Returning false
// from fn skips the node's children.
func Walk(t Template, fn func(n Node) bool) {
	for _, n := range t {
		walk(n, fn)
	}
}

func walk(n Node, fn func(n Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if el, ok := n.(*Element); ok {
		for _, c := range el.Children {
			walk(c, fn)
		}
	}
}

// Keys returns the sorted, de-duplicated lookup keys of every Dynamic
// attribute in t.
func Keys(t Template) []string {
	return collect(t, Dynamic)
}

// Messages returns the sorted, de-duplicated messages of every Handler
// attribute in t.
func Messages(t Template) []string {
	return collect(t, Handler)
}

func collect(t Template, kind AttrKind) []string {
	seen := map[string]bool{}
	Walk(t, func(n Node) bool {
		if el, ok := n.(*Element); ok {
			for _, a := range el.Attrs {
				if a.Kind == kind {
					seen[a.Value] = true
				}
			}
		}
		return true
	})
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

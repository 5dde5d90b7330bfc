package memdom

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vcrobe/weft/dom"
)

// Render writes nodes as HTML. Attributes are emitted in sorted order and
// listeners are not represented.
func Render(w io.Writer, nodes ...dom.Node) error {
	for _, n := range nodes {
		hn, err := toHTML(n)
		if err != nil {
			return err
		}
		if err := html.Render(w, hn); err != nil {
			return err
		}
	}
	return nil
}

// OuterHTML returns the HTML of nodes, or an error string if a node is foreign.
func OuterHTML(nodes ...dom.Node) string {
	var buf bytes.Buffer
	if err := Render(&buf, nodes...); err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	return buf.String()
}

func toHTML(n dom.Node) (*html.Node, error) {
	switch n := n.(type) {
	case *Text:
		return &html.Node{Type: html.TextNode, Data: n.Content}, nil
	case *Element:
		hn := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(strings.ToLower(n.Tag))),
		}
		for _, k := range slices.Sorted(maps.Keys(n.Attrs)) {
			hn.Attr = append(hn.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
		}
		for _, c := range n.Children {
			hc, err := toHTML(c)
			if err != nil {
				return nil, err
			}
			hn.AppendChild(hc)
		}
		return hn, nil
	default:
		return nil, fmt.Errorf("render %T: %w", n, ErrForeignNode)
	}
}

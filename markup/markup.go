// Package markup extracts a template.Template from HTML markup. Attribute
// names follow the binding convention: bare names are static, a ':' prefix
// marks a dynamic lookup and an '@' prefix marks an event handler.
package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vcrobe/weft/template"
)

type options struct {
	keepWhitespace bool
}

// Option configures Parse.
type Option func(*options)

// KeepWhitespace keeps whitespace-only text nodes, which are dropped by
// default so indentation in template files does not become view nodes.
func KeepWhitespace() Option {
	return func(o *options) { o.keepWhitespace = true }
}

// Parse parses src as the content of a <body> element.
func Parse(src string, opts ...Option) (template.Template, error) {
	return ParseReader(strings.NewReader(src), opts...)
}

// ParseReader parses r as the content of a <body> element. Comments and
// doctypes are dropped; html, head and body wrappers are unwrapped.
func ParseReader(r io.Reader, opts ...Option) (template.Template, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return extract(nodes, o), nil
}

func extract(nodes []*html.Node, o options) template.Template {
	var out template.Template
	for _, n := range nodes {
		out = append(out, extractNode(n, o)...)
	}
	return out
}

func children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

func extractNode(n *html.Node, o options) template.Template {
	switch n.Type {
	case html.TextNode:
		if !o.keepWhitespace && strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return template.Template{template.Txt(n.Data)}
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Html, atom.Head, atom.Body:
			return extract(children(n), o)
		}
		el := template.El(n.Data, make(map[string]template.Attr, len(n.Attr)))
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			name, spec := template.ParseAttr(key, a.Val)
			el.Attrs[name] = spec
		}
		for _, c := range extract(children(n), o) {
			el.Children = append(el.Children, c)
		}
		return template.Template{el}
	case html.DocumentNode:
		return extract(children(n), o)
	default:
		return nil
	}
}

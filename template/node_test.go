package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttr(t *testing.T) {
	tests := []struct {
		raw      string
		value    string
		wantName string
		want     Attr
	}{
		{"class", "hello", "class", StaticAttr("hello")},
		{":title", "label", "title", DynamicAttr("label")},
		{"@click", "increment", "click", HandlerAttr("increment")},
		{"data-x", "", "data-x", StaticAttr("")},
		// only the first prefix character is significant
		{"::odd", "k", ":odd", DynamicAttr("k")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, attr := ParseAttr(tt.raw, tt.value)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.want, attr)
		})
	}
}

func TestElDefaultsAttrs(t *testing.T) {
	el := El("p", nil, Txt("hello"))
	assert.NotNil(t, el.Attrs)
	assert.Len(t, el.Children, 1)
}

func TestKeysAndMessages(t *testing.T) {
	tpl := Template{
		El("div", map[string]Attr{"title": DynamicAttr("label"), "class": StaticAttr("box")},
			El("span", map[string]Attr{"data-n": DynamicAttr("count")}, Txt("x")),
			El("button", map[string]Attr{"click": HandlerAttr("increment"), "id": DynamicAttr("label")}),
		),
		El("button", map[string]Attr{"click": HandlerAttr("decrement")}),
	}

	assert.Equal(t, []string{"count", "label"}, Keys(tpl))
	assert.Equal(t, []string{"decrement", "increment"}, Messages(tpl))
}

func TestWalkOrderAndSkip(t *testing.T) {
	tpl := Template{
		El("a", nil, El("b", nil, Txt("1")), Txt("2")),
		Txt("3"),
	}
	var seen []string
	Walk(tpl, func(n Node) bool {
		switch v := n.(type) {
		case *Element:
			seen = append(seen, v.Tag)
			return v.Tag != "b"
		case *Text:
			seen = append(seen, v.Content)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "2", "3"}, seen)
}

package runtime_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/weft/dom"
	"github.com/vcrobe/weft/dom/memdom"
	"github.com/vcrobe/weft/errs"
	"github.com/vcrobe/weft/runtime"
	"github.com/vcrobe/weft/template"
	"github.com/vcrobe/weft/vdom"
)

// counter is built on ComponentBase the way application components are.
type counter struct {
	runtime.ComponentBase
	Count     int
	inits     int
	destroyed int
}

func newCounter() *counter {
	c := &counter{}
	c.Expose("count", func() any { return c.Count })
	c.On("increment", func() bool {
		c.Count++
		return true
	})
	return c
}

func (c *counter) OnInit()    { c.inits++ }
func (c *counter) OnDestroy() { c.destroyed++ }

// empty has no keys and ignores every message.
type empty struct{}

func (empty) Lookup(string) (any, bool) { return nil, false }
func (empty) Handle(string) bool        { return false }

func counterTemplate() template.Template {
	return template.Template{
		template.El("div", map[string]template.Attr{"class": template.StaticAttr("counter")},
			template.El("span", map[string]template.Attr{"data-count": template.DynamicAttr("count")}, template.Txt("count")),
			template.El("button", map[string]template.Attr{"click": template.HandlerAttr("increment")}, template.Txt("+")),
		),
	}
}

func TestScenarioA_ParagraphWithText(t *testing.T) {
	doc := memdom.NewDocument()
	rt := runtime.New(doc, empty{}, template.Template{
		template.El("p", nil, template.Txt("hello")),
	})
	assert.Equal(t, runtime.Constructed, rt.State())

	roots, err := rt.Render()
	require.NoError(t, err)
	require.Len(t, roots, 1)

	p := roots[0].(*memdom.Element)
	assert.Equal(t, "p", p.Tag)
	require.Len(t, p.Children, 1)
	assert.Equal(t, "hello", p.Children[0].(*memdom.Text).Content)
	assert.Equal(t, runtime.Rendered, rt.State())
}

func TestScenarioB_ClickIncrementsAndMarksDirty(t *testing.T) {
	c := newCounter()
	rt := runtime.New(memdom.NewDocument(), c, template.Template{
		template.El("button", map[string]template.Attr{"click": template.HandlerAttr("increment")}, template.Txt("+")),
	})

	roots, err := rt.Render()
	require.NoError(t, err)
	rt.Dirty().Reset()

	btn := roots[0].(*memdom.Element)
	assert.Equal(t, 1, btn.Click())
	assert.Equal(t, 1, c.Count)
	assert.True(t, rt.Dirty().IsSet())
}

func TestRender_IdempotentWithoutStateChange(t *testing.T) {
	rt := runtime.New(memdom.NewDocument(), newCounter(), counterTemplate())

	first, err := rt.Render()
	require.NoError(t, err)
	firstHTML := memdom.OuterHTML(first...)
	firstView := rt.View()

	second, err := rt.Render()
	require.NoError(t, err)

	assert.Equal(t, firstHTML, memdom.OuterHTML(second...))
	assert.NotSame(t, first[0], second[0])
	assert.NotSame(t, firstView[0], rt.View()[0])
}

func TestRender_ReflectsStateAfterDispatch(t *testing.T) {
	c := newCounter()
	rt := runtime.New(memdom.NewDocument(), c, counterTemplate())

	roots, err := rt.Render()
	require.NoError(t, err)
	memdom.ByTag(roots, "button")[0].Click()
	memdom.ByTag(roots, "button")[0].Click()

	roots, err = rt.Render()
	require.NoError(t, err)
	assert.Equal(t, "2", memdom.ByTag(roots, "span")[0].Attrs["data-count"])
}

func TestRender_ReleasesPreviousGenerationListeners(t *testing.T) {
	c := newCounter()
	rt := runtime.New(memdom.NewDocument(), c, counterTemplate())

	oldRoots, err := rt.Render()
	require.NoError(t, err)
	oldBtn := memdom.ByTag(oldRoots, "button")[0]

	_, err = rt.Render()
	require.NoError(t, err)

	assert.Equal(t, 0, oldBtn.Listeners("click"))
	assert.Equal(t, 0, oldBtn.Click())
	assert.Equal(t, 0, c.Count)
}

func TestRender_MissingKeyProducesNoPlatformNodes(t *testing.T) {
	doc := memdom.NewDocument()
	rt := runtime.New(doc, empty{}, template.Template{
		template.El("p", map[string]template.Attr{"title": template.DynamicAttr("missing")}, template.Txt("x")),
	})

	roots, err := rt.Render()
	require.Error(t, err)
	assert.Nil(t, roots)
	assert.True(t, errs.Is(err, errs.KindConfiguration))
	assert.Equal(t, 0, doc.Created())
	assert.Equal(t, runtime.Constructed, rt.State())
}

// toggler exposes "label" only while visible is true.
type toggler struct {
	visible bool
}

func (c *toggler) Lookup(key string) (any, bool) {
	if key == "label" && c.visible {
		return "shown", true
	}
	return nil, false
}

func (c *toggler) Handle(message string) bool {
	if message == "hide" {
		c.visible = false
		return true
	}
	return false
}

func TestRenderInto_FailureKeepsPreviousTree(t *testing.T) {
	doc := memdom.NewDocument()
	mount := doc.NewMount("app")
	c := &toggler{visible: true}
	rt := runtime.New(doc, c, template.Template{
		template.El("button", map[string]template.Attr{
			"title": template.DynamicAttr("label"),
			"click": template.HandlerAttr("hide"),
		}),
	})

	require.NoError(t, rt.RenderInto(mount))
	before := memdom.OuterHTML(mount.Children...)
	assert.Equal(t, `<button title="shown"></button>`, before)

	btn := mount.Children[0].(*memdom.Element)
	btn.Click()
	assert.True(t, rt.Dirty().IsSet())

	err := rt.RenderInto(mount)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindConfiguration))

	// the mounted tree and its listeners are still the previous generation
	assert.Equal(t, before, memdom.OuterHTML(mount.Children...))
	assert.Same(t, btn, mount.Children[0])
	assert.Equal(t, 1, btn.Listeners("click"))
	assert.Len(t, rt.Roots(), 1)
}

func TestRenderInto_ReplacesMountContent(t *testing.T) {
	doc := memdom.NewDocument()
	mount := doc.NewMount("app")
	stale, _ := doc.CreateText("loading...")
	require.NoError(t, mount.ReplaceChildren(stale))

	rt := runtime.New(doc, newCounter(), counterTemplate())
	require.NoError(t, rt.RenderInto(mount))
	require.NoError(t, rt.RenderInto(mount))

	require.Len(t, mount.Children, 1)
	assert.Equal(t, `<div class="counter"><span data-count="0">count</span><button>+</button></div>`,
		memdom.OuterHTML(mount.Children...))
}

func TestTeardown_DispatcherBecomesNoop(t *testing.T) {
	doc := memdom.NewDocument()
	mount := doc.NewMount("app")
	c := newCounter()
	rt := runtime.New(doc, c, counterTemplate())
	require.NoError(t, rt.RenderInto(mount))

	dispatchers := vdom.Bindings(rt.View()[0])
	require.Len(t, dispatchers, 1)
	d := dispatchers[0]

	rt.Teardown()
	rt.Teardown()

	assert.Equal(t, runtime.TornDown, rt.State())
	assert.Empty(t, mount.Children)
	assert.Nil(t, rt.Component())
	require.NotNil(t, rt.Dirty())
	assert.False(t, rt.Dirty().IsSet())
	assert.Equal(t, 1, c.destroyed)

	assert.NotPanics(t, func() { d.Dispatch(nil) })
	assert.Equal(t, 0, c.Count)

	_, err := rt.Render()
	assert.True(t, errs.Is(err, errs.KindLifetime))
	assert.ErrorIs(t, err, errs.ErrTornDown)
}

func TestLifecycle_OnInitOnce(t *testing.T) {
	c := newCounter()
	rt := runtime.New(memdom.NewDocument(), c, counterTemplate())
	for range 3 {
		_, err := rt.Render()
		require.NoError(t, err)
	}
	assert.Equal(t, 1, c.inits)
}

// reentrant tries to render its own runtime from inside Lookup.
type reentrant struct {
	rt  *runtime.Runtime
	err error
}

func (c *reentrant) Lookup(key string) (any, bool) {
	_, c.err = c.rt.Render()
	return "x", true
}

func (c *reentrant) Handle(string) bool { return false }

func TestRender_NestedRenderRejected(t *testing.T) {
	c := &reentrant{}
	rt := runtime.New(memdom.NewDocument(), c, template.Template{
		template.El("p", map[string]template.Attr{"title": template.DynamicAttr("k")}),
	})
	c.rt = rt

	_, err := rt.Render()
	require.NoError(t, err)
	assert.ErrorIs(t, c.err, runtime.ErrNestedRender)

	// the guard is released afterwards
	_, err = rt.Render()
	require.NoError(t, err)
}

func TestComponentBase_UnknownKeysAndMessages(t *testing.T) {
	c := newCounter()
	_, ok := c.Lookup("nope")
	assert.False(t, ok)
	assert.False(t, c.Handle("nope"))
	assert.Equal(t, []string{"count"}, c.Keys())
}

func TestRuntime_SharesTemplate(t *testing.T) {
	tpl := counterTemplate()
	rt := runtime.New(memdom.NewDocument(), newCounter(), tpl, runtime.WithName("counter"))
	assert.Equal(t, "counter", rt.Name())
	assert.Same(t, tpl[0], rt.Template()[0])
}

// brokenMount refuses every mount.
type brokenMount struct {
	err error
}

func (m brokenMount) ReplaceChildren(...dom.Node) error { return m.err }

func TestRenderInto_MountFailureKeepsPreviousListeners(t *testing.T) {
	doc := memdom.NewDocument()
	mount := doc.NewMount("app")
	c := newCounter()
	rt := runtime.New(doc, c, counterTemplate())
	require.NoError(t, rt.RenderInto(mount))
	btn := memdom.ByTag(mount.Children, "button")[0]

	boom := errors.New("detached")
	err := rt.RenderInto(brokenMount{err: boom})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindPlatform))
	assert.ErrorIs(t, err, boom)

	assert.Same(t, btn, memdom.ByTag(rt.Roots(), "button")[0])
	assert.Equal(t, 1, btn.Listeners("click"))
	assert.Equal(t, 1, btn.Click())
	assert.Equal(t, 1, c.Count)
}

// recordingDoc remembers every element it creates.
type recordingDoc struct {
	*memdom.Document
	elements []*memdom.Element
}

func (d *recordingDoc) CreateElement(tag string) (dom.Element, error) {
	el, err := d.Document.CreateElement(tag)
	if err != nil {
		return nil, err
	}
	d.elements = append(d.elements, el.(*memdom.Element))
	return el, nil
}

// selfDestruct tears its own runtime down from inside Lookup.
type selfDestruct struct {
	rt *runtime.Runtime
}

func (c *selfDestruct) Lookup(string) (any, bool) {
	c.rt.Teardown()
	return "bye", true
}

func (c *selfDestruct) Handle(string) bool { return true }

func TestRender_TeardownDuringRenderStaysTornDown(t *testing.T) {
	doc := &recordingDoc{Document: memdom.NewDocument()}
	c := &selfDestruct{}
	rt := runtime.New(doc, c, template.Template{
		template.El("button", map[string]template.Attr{
			"title": template.DynamicAttr("label"),
			"click": template.HandlerAttr("go"),
		}),
	})
	c.rt = rt

	roots, err := rt.Render()
	require.Error(t, err)
	assert.Nil(t, roots)
	assert.True(t, errs.Is(err, errs.KindLifetime))
	assert.ErrorIs(t, err, errs.ErrTornDown)

	assert.Equal(t, runtime.TornDown, rt.State())
	assert.Empty(t, rt.Roots())
	assert.Empty(t, rt.View())
	require.Len(t, doc.elements, 1)
	assert.Equal(t, 0, doc.elements[0].Listeners("click"))
}

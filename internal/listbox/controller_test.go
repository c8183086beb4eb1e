package listbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/listbox-control/internal/dom"
)

type fixture struct {
	doc     *dom.Document
	ctrl    *Controller
	trigger *dom.Element
	menu    *dom.Element
	items   []*dom.Element
	outside *dom.Element
	clicks  []string
}

// newFixture renders a trigger, a role=menu list of button items, and an
// unrelated element outside the menu, then binds the controller's props.
func newFixture(t *testing.T, labels ...string) *fixture {
	t.Helper()
	doc := dom.NewDocument()
	f := &fixture{doc: doc}
	f.ctrl = New(doc, len(labels))
	t.Cleanup(f.ctrl.Close)

	f.trigger = doc.Body.AppendChild(dom.NewElement(dom.NodeButton))
	f.trigger.Text = "Menu"
	f.menu = doc.Body.AppendChild(dom.NewElement("ul"))
	f.menu.SetAttr("role", RoleMenu)
	for _, label := range labels {
		label := label
		li :=f.menu.AppendChild(dom.NewElement("li"))
		item := li.AppendChild(dom.NewElement(dom.NodeButton))
		item.Text = label
		item.OnClick = func(*dom.Event) {
			f.clicks = append(f.clicks, label)
			f.ctrl.SetActive(false)
		}
		f.items = append(f.items, item)
	}
	f.outside = doc.Body.AppendChild(dom.NewElement("p"))
	f.outside.Text = "elsewhere"
	f.bind()
	return f
}

func (f *fixture) bind() {
	f.ctrl.TriggerProps().Bind(f.trigger)
	for i, p := range f.ctrl.ItemProps() {
		p.Bind(f.items[i])
	}
}

func (f *fixture) open(t *testing.T) {
	t.Helper()
	f.trigger.Focus()
	f.doc.DispatchKeyDown(dom.KeyEnter, false)
	require.True(t, f.ctrl.Active())
}

func (f *fixture) press(key string) *dom.Event {
	return f.doc.DispatchKeyDown(key, false)
}

func TestNewControllerStartsInactive(t *testing.T) {
	f := newFixture(t, "One", "Two")
	require.False(t, f.ctrl.Active())
	require.Zero(t, f.ctrl.FocusIndex())
	require.Equal(t, 2, f.ctrl.ItemCount())
	require.False(t, f.ctrl.Subscribed())
	require.Zero(t, f.doc.ListenerCount(""))
}

func TestNegativeItemCountClampsToZero(t *testing.T) {
	c := New(dom.NewDocument(), -3)
	t.Cleanup(c.Close)
	require.Zero(t, c.ItemCount())
	require.Empty(t, c.ItemProps())
	require.Nil(t, c.Item(0))
}

func TestTriggerPropsReflectState(t *testing.T) {
	f := newFixture(t, "One")
	p := f.ctrl.TriggerProps()
	assert.Equal(t, RoleButton, p.Role)
	assert.True(t, p.AriaHasPopup)
	assert.False(t, p.AriaExpanded)
	assert.Zero(t, p.TabIndex)
	assert.Same(t, f.ctrl.Trigger(), p.Ref)
	assert.Same(t, f.trigger, p.Ref.Current())

	f.ctrl.SetActive(true)
	f.bind()
	v, _ := f.trigger.Attr("aria-expanded")
	assert.Equal(t, "true", v)
	v, _ = f.trigger.Attr("aria-haspopup")
	assert.Equal(t, "true", v)
}

func TestItemPropsAreRovingMenuItems(t *testing.T) {
	f := newFixture(t, "One", "Two", "Three")
	props := f.ctrl.ItemProps()
	require.Len(t, props, 3)
	for i, p := range props {
		assert.Equal(t, RoleMenuItem, p.Role)
		assert.Equal(t, -1, p.TabIndex)
		assert.Same(t, f.items[i], p.Ref.Current())
		assert.NotNil(t, p.OnKeyDown)
	}
}

func TestOpeningFocusesFirstItem(t *testing.T) {
	f := newFixture(t, "One", "Two", "Three")
	f.ctrl.SetActive(true)
	require.True(t, f.items[0].Focused())
	f.press(dom.KeyArrowDown)
	f.press(dom.KeyArrowDown)
	require.Equal(t, 2, f.ctrl.FocusIndex())

	f.ctrl.SetActive(false)
	f.ctrl.SetActive(true)
	require.Zero(t, f.ctrl.FocusIndex())
	require.True(t, f.items[0].Focused())
}

func TestUpdateActiveAppliesUpdater(t *testing.T) {
	f := newFixture(t, "One")
	f.ctrl.UpdateActive(func(v bool) bool { return !v })
	require.True(t, f.ctrl.Active())
	f.ctrl.UpdateActive(func(v bool) bool { return !v })
	require.False(t, f.ctrl.Active())
	f.ctrl.UpdateActive(nil)
	require.False(t, f.ctrl.Active())
}

func TestTriggerClickToggles(t *testing.T) {
	f := newFixture(t, "One", "Two")
	f.doc.DispatchClick(f.trigger)
	require.True(t, f.ctrl.Active(), "listener installed by the opening click must not close the menu")
	require.True(t, f.items[0].Focused())

	f.doc.DispatchClick(f.trigger)
	require.False(t, f.ctrl.Active())
	require.Zero(t, f.doc.ListenerCount(""))
}

func TestTriggerEnterAndSpaceOpen(t *testing.T) {
	for _, key := range []string{dom.KeyEnter, dom.KeySpace} {
		f := newFixture(t, "One")
		f.trigger.Focus()
		ev := f.press(key)
		require.True(t, ev.DefaultPrevented(), "key %q", key)
		require.True(t, f.ctrl.Active(), "key %q", key)
		require.Empty(t, f.clicks)
	}
}

func TestTriggerEscapeCloses(t *testing.T) {
	f := newFixture(t, "One")
	f.open(t)
	f.trigger.Focus()
	ev := f.press(dom.KeyEscape)
	require.True(t, ev.DefaultPrevented())
	require.False(t, f.ctrl.Active())
}

// ArrowDown on a closed trigger does not open the menu.
func TestTriggerArrowDownWhileClosedDoesNotOpen(t *testing.T) {
	f := newFixture(t, "One", "Two")
	f.trigger.Focus()
	ev := f.press(dom.KeyArrowDown)
	require.False(t, f.ctrl.Active())
	require.False(t, ev.DefaultPrevented())
	require.True(t, f.trigger.Focused())
	require.Equal(t, 1, f.doc.ScrollOffset, "unhandled arrow falls through to the page")
}

func TestTriggerArrowDownAndTabWhileOpenFocusFirstItem(t *testing.T) {
	for _, key := range []string{dom.KeyArrowDown, dom.KeyTab} {
		f := newFixture(t, "One", "Two")
		f.open(t)
		f.trigger.Focus()
		ev := f.press(key)
		require.True(t, ev.DefaultPrevented(), "key %q", key)
		require.True(t, f.ctrl.Active(), "key %q", key)
		require.True(t, f.items[0].Focused(), "key %q", key)
	}
}

func TestTriggerIgnoresOtherKeys(t *testing.T) {
	f := newFixture(t, "One")
	f.trigger.Focus()
	ev := f.press("a")
	require.False(t, ev.DefaultPrevented())
	require.False(t, f.ctrl.Active())
}

func TestArrowNavigationWraps(t *testing.T) {
	for n := 1; n <= 4; n++ {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = string(rune('a' + i))
		}
		f := newFixture(t, labels...)
		f.open(t)

		f.press(dom.KeyArrowUp)
		require.Equal(t, n-1, f.ctrl.FocusIndex(), "ArrowUp from first item, n=%d", n)
		require.True(t, f.items[n-1].Focused())

		f.press(dom.KeyArrowDown)
		require.Zero(t, f.ctrl.FocusIndex(), "ArrowDown from last item, n=%d", n)
		require.True(t, f.items[0].Focused())
	}
}

func TestArrowNavigationSteps(t *testing.T) {
	f := newFixture(t, "One", "Two", "Three")
	f.open(t)
	f.press(dom.KeyArrowDown)
	f.press(dom.KeyArrowDown)
	require.Equal(t, 2, f.ctrl.FocusIndex())
	f.press(dom.KeyArrowUp)
	require.Equal(t, 1, f.ctrl.FocusIndex())
	require.True(t, f.items[1].Focused())
	require.Zero(t, f.doc.ScrollOffset, "arrow keys must not scroll while open")
}

func TestEscapeOnItemClosesAndReturnsFocusToTrigger(t *testing.T) {
	f := newFixture(t, "One", "Two")
	f.open(t)
	f.press(dom.KeyArrowDown)
	f.press(dom.KeyEscape)
	require.False(t, f.ctrl.Active())
	require.True(t, f.trigger.Focused())
	require.Zero(t, f.doc.ListenerCount(""))
}

func TestTabOnItemClosesWithoutResettingFocusIndex(t *testing.T) {
	f := newFixture(t, "One", "Two", "Three")
	f.open(t)
	f.press(dom.KeyArrowDown)
	f.press(dom.KeyArrowDown)
	ev := f.press(dom.KeyTab)
	require.False(t, ev.DefaultPrevented(), "Tab must tab out naturally")
	require.False(t, f.ctrl.Active())
	require.Equal(t, 2, f.ctrl.FocusIndex())
	require.Equal(t, f.doc.Body, f.doc.ActiveElement(), "no tabbable element follows the menu")
}

func TestEnterOnNativeItemClicksOnce(t *testing.T) {
	f := newFixture(t, "One", "Two")
	f.open(t)
	f.press(dom.KeyArrowDown)
	f.press(dom.KeyEnter)
	require.Equal(t, []string{"Two"}, f.clicks, "native buttons click through the default action only")
	require.False(t, f.ctrl.Active())
}

func TestEnterOnNonNativeItemClicksProgrammatically(t *testing.T) {
	doc := dom.NewDocument()
	c := New(doc, 2)
	t.Cleanup(c.Close)
	menu := doc.Body.AppendChild(dom.NewElement("ul"))
	menu.SetAttr("role", RoleMenu)
	var clicked []int
	for i, p := range c.ItemProps() {
		li := menu.AppendChild(dom.NewElement("li"))
		li.Text = []string{"alpha", "beta"}[i]
		idx := i
		li.OnClick = func(*dom.Event) { clicked = append(clicked, idx) }
		p.Bind(li)
	}
	c.SetActive(true)
	doc.DispatchKeyDown(dom.KeyEnter, false)
	require.Equal(t, []int{0}, clicked)
	require.False(t, c.Active())
}

func TestSpaceOnItemClicksAndCloses(t *testing.T) {
	f := newFixture(t, "One", "Two")
	f.open(t)
	f.press(dom.KeySpace)
	require.Equal(t, []string{"One"}, f.clicks)
	require.False(t, f.ctrl.Active())
	require.Zero(t, f.ctrl.FocusIndex())
}

func TestShiftKeepsFocusIndex(t *testing.T) {
	f := newFixture(t, "One", "Two")
	f.open(t)
	f.press(dom.KeyArrowDown)
	f.press(dom.KeyShift)
	require.True(t, f.ctrl.Active())
	require.Equal(t, 1, f.ctrl.FocusIndex())
	require.True(t, f.items[1].Focused())
}

func TestTypeAheadFocusesFirstPrefixMatch(t *testing.T) {
	f := newFixture(t, "One", "Two", "Three")
	f.open(t)

	f.press("t")
	require.Equal(t, 1, f.ctrl.FocusIndex())
	require.True(t, f.items[1].Focused())

	f.press("T")
	require.Equal(t, 1, f.ctrl.FocusIndex(), "search is index ordered, not cyclic")

	f.press("z")
	require.Equal(t, 1, f.ctrl.FocusIndex())
	require.True(t, f.items[1].Focused())

	f.press("o")
	require.Zero(t, f.ctrl.FocusIndex())
}

func TestTypeAheadIgnoresHyphen(t *testing.T) {
	f := newFixture(t, "One", "-dash")
	f.open(t)
	f.press("-")
	require.Zero(t, f.ctrl.FocusIndex())
	require.True(t, f.items[0].Focused())
}

func TestTypeAheadFallsBackToAriaLabel(t *testing.T) {
	f := newFixture(t, "", "Two")
	f.items[0].SetAttr("aria-label", "Settings")
	f.open(t)
	f.press(dom.KeyArrowDown)
	f.press("s")
	require.Zero(t, f.ctrl.FocusIndex())
}

func TestUnrecognizedKeysAreIgnored(t *testing.T) {
	f := newFixture(t, "One", "Two")
	f.open(t)
	f.press(dom.KeyArrowDown)
	for _, key := range []string{dom.KeyArrowLeft, "F1", "é", ""} {
		ev := f.press(key)
		require.False(t, ev.DefaultPrevented(), "key %q", key)
		require.True(t, f.ctrl.Active(), "key %q", key)
		require.Equal(t, 1, f.ctrl.FocusIndex(), "key %q", key)
	}
}

func TestOutsideClickCloses(t *testing.T) {
	f := newFixture(t, "One", "Two")
	f.open(t)
	f.doc.DispatchClick(f.menu)
	require.True(t, f.ctrl.Active(), "click on the menu container keeps it open")

	f.doc.DispatchClick(f.outside)
	require.False(t, f.ctrl.Active())
	require.Zero(t, f.doc.ListenerCount(""))

	f.open(t)
	f.doc.DispatchClick(nil)
	require.False(t, f.ctrl.Active(), "click on the body is outside")
}

func TestItemClickSelectsAndCloses(t *testing.T) {
	f := newFixture(t, "One", "Two")
	f.open(t)
	f.items[1].Click()
	require.Equal(t, []string{"Two"}, f.clicks)
	require.False(t, f.ctrl.Active())
}

func TestArrowScrollSuppressedOnlyWhileActive(t *testing.T) {
	f := newFixture(t, "One")
	f.outside.TabIndex = 0
	f.outside.Focus()
	f.press(dom.KeyArrowDown)
	require.Equal(t, 1, f.doc.ScrollOffset)

	f.ctrl.SetActive(true)
	f.outside.Focus()
	ev := f.press(dom.KeyArrowDown)
	require.True(t, ev.DefaultPrevented())
	f.press(dom.KeyArrowUp)
	require.Equal(t, 1, f.doc.ScrollOffset)

	ev = f.press("x")
	require.False(t, ev.DefaultPrevented())
}

func TestRepeatedCyclesLeaveNoListeners(t *testing.T) {
	f := newFixture(t, "One", "Two")
	for i := 0; i < 100; i++ {
		f.ctrl.SetActive(true)
		f.ctrl.SetActive(true)
		require.Equal(t, 2, f.doc.ListenerCount(""), "cycle %d", i)
		switch i % 3 {
		case 0:
			f.ctrl.SetActive(false)
		case 1:
			f.press(dom.KeyEscape)
		default:
			f.doc.DispatchClick(f.outside)
		}
		require.Zero(t, f.doc.ListenerCount(""), "cycle %d", i)
	}
}

func TestCloseRemovesListeners(t *testing.T) {
	f := newFixture(t, "One")
	f.ctrl.SetActive(true)
	require.True(t, f.ctrl.Subscribed())
	f.ctrl.Close()
	require.Zero(t, f.doc.ListenerCount(""))
	require.Nil(t, f.ctrl.Trigger().Current())

	f.ctrl.SetActive(true)
	require.False(t, f.ctrl.Active(), "closed controller ignores state changes")
	require.Zero(t, f.doc.ListenerCount(""))
}

func TestSetItemCountRegeneratesHandles(t *testing.T) {
	f := newFixture(t, "One", "Two", "Three")
	old := f.ctrl.ItemProps()
	f.ctrl.SetActive(true)
	f.press(dom.KeyArrowUp)
	require.Equal(t, 2, f.ctrl.FocusIndex())

	f.ctrl.SetItemCount(2)
	fresh := f.ctrl.ItemProps()
	require.Len(t, fresh, 2)
	for i := range fresh {
		require.NotSame(t, old[i].Ref, fresh[i].Ref)
		require.Nil(t, fresh[i].Ref.Current(), "new handles start unbound")
	}
	require.Nil(t, old[0].Ref.Current(), "stale handles are released")
	require.Zero(t, f.ctrl.FocusIndex())

	f.items = f.items[:2]
	f.bind()
	f.ctrl.Refocus()
	require.True(t, f.items[0].Focused())
}

func TestZeroItemsIsOpenButUnnavigable(t *testing.T) {
	f := newFixture(t)
	f.open(t)
	require.True(t, f.trigger.Focused(), "nothing to focus")
	require.NotPanics(t, func() {
		f.ctrl.HandleItemKeyDown(&dom.Event{Type: dom.EventKeyDown, Key: dom.KeyArrowDown, Target: f.trigger})
		f.ctrl.HandleItemKeyDown(&dom.Event{Type: dom.EventKeyDown, Key: dom.KeyArrowUp, Target: f.trigger})
		f.ctrl.HandleItemKeyDown(&dom.Event{Type: dom.EventKeyDown, Key: "a", Target: f.trigger})
	})
	require.True(t, f.ctrl.Active())
	require.Zero(t, f.ctrl.FocusIndex())
}

func TestUnboundItemsAreSkipped(t *testing.T) {
	doc := dom.NewDocument()
	c := New(doc, 3)
	t.Cleanup(c.Close)
	require.NotPanics(t, func() {
		c.SetActive(true)
		c.HandleItemKeyDown(&dom.Event{Type: dom.EventKeyDown, Key: dom.KeyArrowDown})
		c.HandleItemKeyDown(&dom.Event{Type: dom.EventKeyDown, Key: dom.KeySpace})
		c.HandleItemKeyDown(&dom.Event{Type: dom.EventKeyDown, Key: dom.KeyEscape})
		c.HandleTrigger(nil)
		c.HandleItemKeyDown(nil)
	})
	require.False(t, c.Active())
	require.Equal(t, doc.Body, doc.ActiveElement())
}

func TestWithMenuRole(t *testing.T) {
	doc := dom.NewDocument()
	c := New(doc, 0, WithMenuRole("listbox"))
	t.Cleanup(c.Close)
	box := doc.Body.AppendChild(dom.NewElement("div"))
	box.SetAttr("role", "listbox")
	c.SetActive(true)
	doc.DispatchClick(box)
	require.True(t, c.Active())
	doc.DispatchClick(doc.Body)
	require.False(t, c.Active())
}

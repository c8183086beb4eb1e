package listbox

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/atomicstack/listbox-control/internal/dom"
	"github.com/atomicstack/listbox-control/internal/logging/events"
)

// HandleItemKeyDown interprets a key press on a focused menu item.
func (c *Controller) HandleItemKeyDown(e *dom.Event) {
	if e == nil {
		return
	}
	if IsControlKey(e.Key) {
		c.handleControlKey(e)
		return
	}
	if IsTypeAheadKey(e.Key) {
		c.typeAhead(e.Key)
	}
}

func (c *Controller) handleControlKey(e *dom.Event) {
	target := e.CurrentTarget
	if target == nil {
		target = e.Target
	}
	switch e.Key {
	case dom.KeyEscape:
		c.SetActive(false)
		c.triggerRef.Focus()
	case dom.KeyTab:
		c.SetActive(false)
	case dom.KeyEnter:
		// Native controls already click on Enter as their default action.
		if !target.NativelyActivated() {
			target.Click()
		}
		c.SetActive(false)
	case dom.KeySpace:
		target.Click()
		c.SetActive(false)
	}
	c.moveFocus(c.nextIndex(e.Key))
}

// nextIndex computes the roving focus target for a control key, wrapping at
// both ends. Keys other than the arrows keep the current index.
func (c *Controller) nextIndex(key string) int {
	n := len(c.itemRefs)
	if n == 0 {
		return c.focusIndex
	}
	switch key {
	case dom.KeyArrowUp:
		if c.focusIndex > 0 {
			return c.focusIndex - 1
		}
		return n - 1
	case dom.KeyArrowDown:
		if c.focusIndex < n-1 {
			return c.focusIndex + 1
		}
		return 0
	}
	return c.focusIndex
}

// typeAhead focuses the first item, in index order, whose label starts with
// key. Labels are read from the rendered text, then the text content, then
// aria-label.
func (c *Controller) typeAhead(key string) {
	idx := c.matchItem(key)
	events.ListBox.TypeAhead(key, idx)
	if idx >= 0 {
		c.moveFocus(idx)
	}
}

func (c *Controller) matchItem(key string) int {
	fold := cases.Fold()
	prefix := fold.String(key)
	for i, ref := range c.itemRefs {
		el := ref.Current()
		if el == nil {
			continue
		}
		if strings.HasPrefix(fold.String(el.InnerText()), prefix) ||
			strings.HasPrefix(fold.String(el.TextContent()), prefix) {
			return i
		}
		if label, ok := el.Attr("aria-label"); ok && strings.HasPrefix(fold.String(label), prefix) {
			return i
		}
	}
	return -1
}

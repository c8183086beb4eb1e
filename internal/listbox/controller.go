package listbox

import (
	"github.com/atomicstack/listbox-control/internal/dom"
	"github.com/atomicstack/listbox-control/internal/logging/events"
)

// Option customises a Controller.
type Option func(*Controller)

// WithMenuRole changes the role value that marks the menu container for
// outside-click detection.
func WithMenuRole(role string) Option {
	return func(c *Controller) {
		if role != "" {
			c.menuRole = role
		}
	}
}

// Controller holds the activation state and roving focus of one listbox.
type Controller struct {
	doc        *dom.Document
	active     bool
	focusIndex int
	menuRole   string

	triggerRef *dom.Ref
	itemRefs   []*dom.Ref

	clickListener *dom.Listener
	arrowListener *dom.Listener
	closed        bool
}

// New creates an inactive controller for itemCount items. Negative counts are
// treated as zero.
func New(doc *dom.Document, itemCount int, opts ...Option) *Controller {
	c := &Controller{
		doc:        doc,
		menuRole:   RoleMenu,
		triggerRef: dom.NewRef(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.itemRefs = newRefs(itemCount)
	return c
}

func newRefs(n int) []*dom.Ref {
	if n < 0 {
		n = 0
	}
	refs := make([]*dom.Ref, n)
	for i := range refs {
		refs[i] = dom.NewRef()
	}
	return refs
}

// Active reports whether the menu is open.
func (c *Controller) Active() bool {
	return c.active
}

// FocusIndex returns the index of the item holding roving focus.
func (c *Controller) FocusIndex() int {
	return c.focusIndex
}

// ItemCount returns the number of item handles.
func (c *Controller) ItemCount() int {
	return len(c.itemRefs)
}

// Trigger returns the trigger back-reference.
func (c *Controller) Trigger() *dom.Ref {
	return c.triggerRef
}

// Item returns the back-reference for item i, or nil when out of range.
func (c *Controller) Item(i int) *dom.Ref {
	if i < 0 || i >= len(c.itemRefs) {
		return nil
	}
	return c.itemRefs[i]
}

// SetActive opens or closes the menu. Entering the active state installs the
// document listeners and focuses the first item; leaving it removes them.
func (c *Controller) SetActive(active bool) {
	if c.closed || c.active == active {
		return
	}
	c.active = active
	events.ListBox.Active(active)
	if active {
		c.subscribe()
		c.moveFocus(0)
		return
	}
	c.unsubscribe()
}

// UpdateActive applies fn to the current state and stores the result.
func (c *Controller) UpdateActive(fn func(bool) bool) {
	if fn == nil {
		return
	}
	c.SetActive(fn(c.active))
}

// SetItemCount replaces every item handle. Handles from the previous count
// are never reused; the host must bind the new ones.
func (c *Controller) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	for _, ref := range c.itemRefs {
		ref.Detach()
	}
	c.itemRefs = newRefs(n)
	if c.focusIndex >= n {
		c.focusIndex = 0
	}
	events.ListBox.ItemCount(n)
	if c.active {
		c.moveFocus(0)
	}
}

// Refocus re-applies focus to the current item. Hosts call it after binding
// fresh handles so the open menu's focus lands on a rendered element.
func (c *Controller) Refocus() {
	c.moveFocus(c.focusIndex)
}

// Close removes any installed document listeners and releases the element
// back-references. The controller ignores further state changes.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.unsubscribe()
	c.active = false
	c.closed = true
	c.triggerRef.Detach()
	for _, ref := range c.itemRefs {
		ref.Detach()
	}
}

// moveFocus records index and focuses its element. Items are only focused
// while the menu is open; an out-of-range index is ignored.
func (c *Controller) moveFocus(index int) {
	if index < 0 || index >= len(c.itemRefs) {
		return
	}
	c.focusIndex = index
	ref := c.itemRefs[index]
	events.ListBox.Focus(index, ref.Current() != nil)
	if c.active {
		ref.Focus()
	}
}

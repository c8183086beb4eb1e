package listbox

import (
	"github.com/atomicstack/listbox-control/internal/dom"
	"github.com/atomicstack/listbox-control/internal/logging/events"
)

// subscribe installs the outside-click and arrow-scroll listeners. Calling
// it while they are installed does nothing.
func (c *Controller) subscribe() {
	if c.doc == nil || c.clickListener != nil {
		return
	}
	c.clickListener = c.doc.AddEventListener(dom.EventClick, c.handleDocumentClick)
	c.arrowListener = c.doc.AddEventListener(dom.EventKeyDown, c.handleDocumentKeyDown)
	events.ListBox.Subscribe(true)
}

// unsubscribe removes both listeners; each is removed exactly once.
func (c *Controller) unsubscribe() {
	if c.doc == nil || c.clickListener == nil {
		return
	}
	c.doc.RemoveEventListener(c.clickListener)
	c.doc.RemoveEventListener(c.arrowListener)
	c.clickListener = nil
	c.arrowListener = nil
	events.ListBox.Subscribe(false)
}

// Subscribed reports whether the document listeners are installed.
func (c *Controller) Subscribed() bool {
	return c.clickListener != nil
}

// handleDocumentClick closes the menu when a click lands outside every
// element carrying the menu role.
func (c *Controller) handleDocumentClick(e *dom.Event) {
	if e.Target == nil || e.Target.Closest("role", c.menuRole) != nil {
		return
	}
	c.SetActive(false)
}

// handleDocumentKeyDown stops arrow keys from scrolling the page while the
// menu is open.
func (c *Controller) handleDocumentKeyDown(e *dom.Event) {
	if !c.active {
		return
	}
	switch e.Key {
	case dom.KeyArrowDown, dom.KeyArrowUp:
		e.PreventDefault()
	}
}

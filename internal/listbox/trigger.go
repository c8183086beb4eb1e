package listbox

import "github.com/atomicstack/listbox-control/internal/dom"

// HandleTrigger interprets clicks and key presses on the trigger. A click
// toggles the menu. Only ArrowDown, Escape, Enter, Space and Tab are
// handled; other keys pass through untouched.
//
// ArrowDown and Tab move focus into an open menu but do not open a closed
// one.
func (c *Controller) HandleTrigger(e *dom.Event) {
	if e == nil {
		return
	}
	if !e.IsKeyboard() {
		c.UpdateActive(func(active bool) bool { return !active })
		return
	}
	if !IsTriggerKey(e.Key) {
		return
	}
	switch e.Key {
	case dom.KeyArrowDown, dom.KeyTab:
		if c.active {
			e.PreventDefault()
			c.moveFocus(0)
		}
	case dom.KeyEnter, dom.KeySpace:
		e.PreventDefault()
		c.SetActive(true)
	case dom.KeyEscape:
		e.PreventDefault()
		c.SetActive(false)
	}
}

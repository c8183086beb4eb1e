package dom

import "github.com/atomicstack/listbox-control/internal/logging/events"

// Listener is a registration handle returned by AddEventListener.
type Listener struct {
	typ     string
	fn      Handler
	removed bool
}

// Document owns the element tree, focus, and document-level listeners.
type Document struct {
	Body *Element

	// ScrollOffset counts unprevented arrow-key scroll steps.
	ScrollOffset int

	active    *Element
	listeners []*Listener
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	d := &Document{}
	body := NewElement("BODY")
	body.setDocument(d)
	d.Body = body
	return d
}

// ActiveElement returns the focused element, falling back to the body.
func (d *Document) ActiveElement() *Element {
	if d.active == nil {
		return d.Body
	}
	return d.active
}

func (d *Document) setActive(el *Element) {
	if d.active == el {
		return
	}
	d.active = el
	label := ""
	if el != nil {
		label = el.NodeName
		if role, ok := el.Attr("role"); ok {
			label += "[" + role + "]"
		}
	}
	events.Document.Focus(label)
}

// AddEventListener registers fn for events of type typ reaching the document.
func (d *Document) AddEventListener(typ string, fn Handler) *Listener {
	l := &Listener{typ: typ, fn: fn}
	d.listeners = append(d.listeners, l)
	events.Document.ListenerAdded(typ, d.ListenerCount(typ))
	return l
}

// RemoveEventListener unregisters l. It reports false when l was already
// removed or never registered here.
func (d *Document) RemoveEventListener(l *Listener) bool {
	if l == nil || l.removed {
		return false
	}
	for i, cur := range d.listeners {
		if cur != l {
			continue
		}
		l.removed = true
		d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
		events.Document.ListenerRemoved(l.typ, d.ListenerCount(l.typ))
		return true
	}
	return false
}

// ListenerCount returns the number of registered listeners of type typ. An
// empty type counts all listeners.
func (d *Document) ListenerCount(typ string) int {
	if typ == "" {
		return len(d.listeners)
	}
	n := 0
	for _, l := range d.listeners {
		if l.typ == typ {
			n++
		}
	}
	return n
}

// DispatchKeyDown delivers a keydown to the active element, its ancestors and
// the document listeners, then runs the default action unless prevented.
func (d *Document) DispatchKeyDown(key string, shift bool) *Event {
	ev := &Event{Type: EventKeyDown, Key: key, Shift: shift, Target: d.ActiveElement()}
	d.dispatch(ev)
	if !ev.defaultPrevented {
		d.keyDefault(ev)
	}
	return ev
}

// DispatchClick delivers a click targeted at target (the body when nil).
func (d *Document) DispatchClick(target *Element) *Event {
	if target == nil {
		target = d.Body
	}
	ev := &Event{Type: EventClick, Target: target}
	d.dispatch(ev)
	return ev
}

// dispatch bubbles ev from its target to the root and then to the document
// listeners registered when dispatch began.
func (d *Document) dispatch(ev *Event) {
	snapshot := make([]*Listener, 0, len(d.listeners))
	for _, l := range d.listeners {
		if l.typ == ev.Type {
			snapshot = append(snapshot, l)
		}
	}
	for n := ev.Target; n != nil && !ev.stopped; n = n.parent {
		var h Handler
		switch ev.Type {
		case EventClick:
			h = n.OnClick
		case EventKeyDown:
			h = n.OnKeyDown
		}
		if h != nil {
			ev.CurrentTarget = n
			h(ev)
		}
	}
	for _, l := range snapshot {
		if ev.stopped {
			break
		}
		if l.removed {
			continue
		}
		ev.CurrentTarget = nil
		l.fn(ev)
	}
	ev.CurrentTarget = nil
}

func (d *Document) keyDefault(ev *Event) {
	switch ev.Key {
	case KeyEnter:
		if ev.Target.NativelyActivated() {
			ev.Target.Click()
		}
	case KeyTab:
		d.moveTabFocus(ev.Target, ev.Shift)
	case KeyArrowDown:
		d.ScrollOffset++
	case KeyArrowUp:
		d.ScrollOffset--
	}
}

// Tabbable returns rendered elements with TabIndex >= 0 in document order.
func (d *Document) Tabbable() []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(e *Element) {
		if e.Hidden {
			return
		}
		if e != d.Body && e.TabIndex >= 0 {
			out = append(out, e)
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	walk(d.Body)
	return out
}

// moveTabFocus moves focus to the tabbable element after (or before) from in
// document order. Elements outside the tab sequence use their tree position.
func (d *Document) moveTabFocus(from *Element, backward bool) {
	order := d.documentOrder()
	pos := -1
	for i, e := range order {
		if e == from {
			pos = i
			break
		}
	}
	step := 1
	if backward {
		step = -1
	}
	for i := pos + step; i >= 0 && i < len(order); i += step {
		e := order[i]
		if e != d.Body && e.TabIndex >= 0 && e.Rendered() {
			e.Focus()
			return
		}
	}
	d.setActive(nil)
}

func (d *Document) documentOrder() []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(e *Element) {
		out = append(out, e)
		for _, c := range e.children {
			walk(c)
		}
	}
	walk(d.Body)
	return out
}

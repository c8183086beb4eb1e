package dom

import "strings"

// Node names with native activation behaviour.
const (
	NodeButton = "BUTTON"
	NodeInput  = "INPUT"
	NodeLink   = "A"
)

// Handler receives events dispatched to an element or the document.
type Handler func(*Event)

// Element is a node in the rendered tree. The host owns its lifecycle;
// controllers only hold back-references to it.
type Element struct {
	NodeName string
	Text     string
	Hidden   bool
	TabIndex int

	OnClick   Handler
	OnKeyDown Handler

	attrs    map[string]string
	parent   *Element
	children []*Element
	doc      *Document
}

// NewElement creates a detached element with the given node name.
func NewElement(nodeName string) *Element {
	return &Element{
		NodeName: strings.ToUpper(nodeName),
		TabIndex: -1,
		attrs:    make(map[string]string),
	}
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets an attribute value.
func (e *Element) SetAttr(name, value string) {
	if e == nil {
		return
	}
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Children returns the element's children in document order.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	return append([]*Element(nil), e.children...)
}

// Document returns the owning document, or nil when detached.
func (e *Element) Document() *Document {
	if e == nil {
		return nil
	}
	return e.doc
}

// AppendChild attaches child as the last child of e, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) *Element {
	if e == nil || child == nil || child == e {
		return child
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	child.setDocument(e.doc)
	return child
}

// RemoveChild detaches child from e. It reports whether child was present.
func (e *Element) RemoveChild(child *Element) bool {
	if e == nil || child == nil {
		return false
	}
	for i, c := range e.children {
		if c != child {
			continue
		}
		e.children = append(e.children[:i], e.children[i+1:]...)
		child.parent = nil
		if d := child.doc; d != nil && child.Contains(d.active) {
			d.active = nil
		}
		child.setDocument(nil)
		return true
	}
	return false
}

func (e *Element) setDocument(d *Document) {
	e.doc = d
	for _, c := range e.children {
		c.setDocument(d)
	}
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	if e == nil {
		return false
	}
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Closest returns e or its nearest ancestor carrying attribute name with the
// given value.
func (e *Element) Closest(name, value string) *Element {
	for n := e; n != nil; n = n.parent {
		if v, ok := n.attrs[name]; ok && v == value {
			return n
		}
	}
	return nil
}

// TextContent returns the text of the element and all descendants,
// including hidden ones.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	e.collectText(&b, false)
	return b.String()
}

// InnerText returns the rendered text: hidden descendants contribute
// nothing. An element that is not rendered at all reports its TextContent.
func (e *Element) InnerText() string {
	if e == nil {
		return ""
	}
	if !e.Rendered() {
		return e.TextContent()
	}
	var b strings.Builder
	e.collectText(&b, true)
	return strings.TrimSpace(b.String())
}

func (e *Element) collectText(b *strings.Builder, renderedOnly bool) {
	if renderedOnly && e.Hidden {
		return
	}
	b.WriteString(e.Text)
	for _, c := range e.children {
		c.collectText(b, renderedOnly)
	}
}

// Rendered reports whether the element and all its ancestors are visible.
func (e *Element) Rendered() bool {
	if e == nil {
		return false
	}
	for n := e; n != nil; n = n.parent {
		if n.Hidden {
			return false
		}
	}
	return true
}

// Focused reports whether e is the active element of its document.
func (e *Element) Focused() bool {
	return e != nil && e.doc != nil && e.doc.active == e
}

// Focus makes e the active element. Detached elements are ignored.
func (e *Element) Focus() {
	if e == nil || e.doc == nil {
		return
	}
	e.doc.setActive(e)
}

// Click dispatches a click event targeted at e.
func (e *Element) Click() {
	if e == nil || e.doc == nil {
		return
	}
	e.doc.DispatchClick(e)
}

// NativelyActivated reports whether Enter triggers the element's click as a
// default action.
func (e *Element) NativelyActivated() bool {
	if e == nil {
		return false
	}
	switch e.NodeName {
	case NodeButton, NodeInput, NodeLink:
		return true
	}
	return false
}

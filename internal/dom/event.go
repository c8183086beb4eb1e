package dom

// Event types.
const (
	EventClick   = "click"
	EventKeyDown = "keydown"
)

// Key names delivered in keyboard events.
const (
	KeyTab        = "Tab"
	KeyShift      = "Shift"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = " "
)

// Event is a keyboard or mouse event travelling through the tree.
type Event struct {
	Type  string
	Key   string
	Shift bool

	Target        *Element
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// IsKeyboard reports whether the event carries a key.
func (e *Event) IsKeyboard() bool {
	return e != nil && e.Key != ""
}

// PreventDefault cancels the document's default action for the event.
func (e *Event) PreventDefault() {
	if e != nil {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e != nil && e.defaultPrevented
}

// StopPropagation prevents the event from reaching ancestors and the
// document listeners.
func (e *Event) StopPropagation() {
	if e != nil {
		e.stopped = true
	}
}

package dom

// Ref is a back-reference to an element rendered by the host. The zero value
// is unbound and every operation on it is a no-op.
type Ref struct {
	current *Element
}

// NewRef returns an unbound reference.
func NewRef() *Ref {
	return &Ref{}
}

// Current returns the bound element or nil.
func (r *Ref) Current() *Element {
	if r == nil {
		return nil
	}
	return r.current
}

// Attach binds the reference to el.
func (r *Ref) Attach(el *Element) {
	if r == nil {
		return
	}
	r.current = el
}

// Detach clears the binding.
func (r *Ref) Detach() {
	if r == nil {
		return
	}
	r.current = nil
}

// Focus focuses the bound element, if any.
func (r *Ref) Focus() {
	r.Current().Focus()
}

// Click clicks the bound element, if any.
func (r *Ref) Click() {
	r.Current().Click()
}

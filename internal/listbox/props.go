package listbox

import "github.com/atomicstack/listbox-control/internal/dom"

// Roles and tab indexes applied to bound elements.
const (
	RoleButton   = "button"
	RoleMenuItem = "menuitem"
	RoleMenu     = "menu"
)

// TriggerProps are the attributes and handlers for the control that opens
// the menu. OnClick and OnKeyDown share the same handler.
type TriggerProps struct {
	Ref          *dom.Ref
	Role         string
	AriaHasPopup bool
	AriaExpanded bool
	TabIndex     int
	OnClick      dom.Handler
	OnKeyDown    dom.Handler
}

// ItemProps are the attributes and handler for one menu item.
type ItemProps struct {
	Ref       *dom.Ref
	Role      string
	TabIndex  int
	OnKeyDown dom.Handler
}

// Bind applies the props to el and attaches the back-reference. The host
// calls it every render so AriaExpanded stays current.
func (p TriggerProps) Bind(el *dom.Element) {
	if el == nil {
		return
	}
	el.SetAttr("role", p.Role)
	el.SetAttr("aria-haspopup", boolAttr(p.AriaHasPopup))
	el.SetAttr("aria-expanded", boolAttr(p.AriaExpanded))
	el.TabIndex = p.TabIndex
	el.OnClick = p.OnClick
	el.OnKeyDown = p.OnKeyDown
	p.Ref.Attach(el)
}

// Bind applies the props to el and attaches the back-reference.
func (p ItemProps) Bind(el *dom.Element) {
	if el == nil {
		return
	}
	el.SetAttr("role", p.Role)
	el.TabIndex = p.TabIndex
	el.OnKeyDown = p.OnKeyDown
	p.Ref.Attach(el)
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// TriggerProps returns the bindable props for the trigger element.
func (c *Controller) TriggerProps() TriggerProps {
	return TriggerProps{
		Ref:          c.triggerRef,
		Role:         RoleButton,
		AriaHasPopup: true,
		AriaExpanded: c.active,
		TabIndex:     0,
		OnClick:      c.HandleTrigger,
		OnKeyDown:    c.HandleTrigger,
	}
}

// ItemProps returns one set of props per item, in item order.
func (c *Controller) ItemProps() []ItemProps {
	props := make([]ItemProps, len(c.itemRefs))
	for i, ref := range c.itemRefs {
		props[i] = ItemProps{
			Ref:       ref,
			Role:      RoleMenuItem,
			TabIndex:  -1,
			OnKeyDown: c.HandleItemKeyDown,
		}
	}
	return props
}

package menu

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects the element an item renders as.
type Kind string

const (
	KindButton Kind = "button"
	KindLink   Kind = "link"
	KindItem   Kind = "item"
)

// Item represents a selectable menu entry.
type Item struct {
	Label     string `toml:"label" yaml:"label"`
	AriaLabel string `toml:"aria_label,omitempty" yaml:"aria_label,omitempty"`
	Kind      Kind   `toml:"kind,omitempty" yaml:"kind,omitempty"`
}

// Definition is a complete menu: the trigger title and its items.
type Definition struct {
	Title string `toml:"title" yaml:"title"`
	Items []Item `toml:"items" yaml:"items"`
}

const defaultTitle = "Menu"

var defaultLabels = []string{"One", "Two", "Three", "foo", "bar", "baz", "hello", "world"}

// Default returns the built-in demo menu.
func Default() Definition {
	items := make([]Item, len(defaultLabels))
	for i, label := range defaultLabels {
		items[i] = Item{Label: label, Kind: KindButton}
	}
	return Definition{Title: defaultTitle, Items: items}
}

// NodeName maps the item kind to the element node name it renders as.
func (i Item) NodeName() string {
	switch i.Kind {
	case KindLink:
		return "A"
	case KindItem:
		return "LI"
	default:
		return "BUTTON"
	}
}

// Labels returns item labels in order.
func (d Definition) Labels() []string {
	out := make([]string, len(d.Items))
	for i, item := range d.Items {
		out[i] = item.Label
	}
	return out
}

var errEmptyLabel = errors.New("empty label")

// Normalize fills defaults and validates the definition. Items need a label
// or an aria label; kinds must be known.
func (d *Definition) Normalize() error {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		d.Title = defaultTitle
	}
	for i := range d.Items {
		item := &d.Items[i]
		item.Label = strings.TrimSpace(item.Label)
		item.AriaLabel = strings.TrimSpace(item.AriaLabel)
		if item.Label == "" && item.AriaLabel == "" {
			return fmt.Errorf("item %d: %w", i, errEmptyLabel)
		}
		switch item.Kind {
		case "":
			item.Kind = KindButton
		case KindButton, KindLink, KindItem:
		default:
			return fmt.Errorf("item %d: unknown kind %q", i, item.Kind)
		}
	}
	return nil
}

package ui

import "github.com/atomicstack/listbox-control/internal/dom"

// rect is a cell rectangle with exclusive right and bottom edges.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type region struct {
	id      string
	bounds  rect
	element *dom.Element
}

// hitMap resolves screen coordinates to rendered elements. Regions added
// later take priority.
type hitMap struct {
	regions []region
}

func (h *hitMap) add(id string, bounds rect, el *dom.Element) {
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}
	h.regions = append(h.regions, region{id: id, bounds: bounds, element: el})
}

func (h *hitMap) test(x, y int) *region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].bounds.contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

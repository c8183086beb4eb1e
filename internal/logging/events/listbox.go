package events

import "github.com/atomicstack/listbox-control/internal/logging"

type ListBoxTracer struct{}

var ListBox = ListBoxTracer{}

func (ListBoxTracer) Active(active bool) {
	logging.Trace("listbox.active", map[string]interface{}{"active": active})
}

func (ListBoxTracer) Focus(index int, bound bool) {
	logging.Trace("listbox.focus", map[string]interface{}{"index": index, "bound": bound})
}

func (ListBoxTracer) TypeAhead(key string, index int) {
	logging.Trace("listbox.typeahead", map[string]interface{}{"key": key, "index": index})
}

func (ListBoxTracer) ItemCount(count int) {
	logging.Trace("listbox.items", map[string]interface{}{"count": count})
}

func (ListBoxTracer) Subscribe(installed bool) {
	logging.Trace("listbox.listeners", map[string]interface{}{"installed": installed})
}

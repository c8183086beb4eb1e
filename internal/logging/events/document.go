package events

import "github.com/atomicstack/listbox-control/internal/logging"

type DocumentTracer struct{}

var Document = DocumentTracer{}

func (DocumentTracer) Focus(element string) {
	logging.Trace("document.focus", map[string]interface{}{"element": element})
}

func (DocumentTracer) ListenerAdded(typ string, count int) {
	logging.Trace("document.listener.add", map[string]interface{}{"type": typ, "count": count})
}

func (DocumentTracer) ListenerRemoved(typ string, count int) {
	logging.Trace("document.listener.remove", map[string]interface{}{"type": typ, "count": count})
}

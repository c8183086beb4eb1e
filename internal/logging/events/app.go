package events

import "github.com/atomicstack/listbox-control/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) ItemsLoaded(source string, count int, filter string) {
	logging.Trace("app.items", map[string]interface{}{"source": source, "count": count, "filter": filter})
}

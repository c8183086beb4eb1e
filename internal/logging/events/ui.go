package events

import "github.com/atomicstack/listbox-control/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Key(key string, shift bool, target string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "shift": shift, "target": target})
}

func (UITracer) Click(x, y int, region string) {
	logging.Trace("ui.click", map[string]interface{}{"x": x, "y": y, "region": region})
}

func (UITracer) Select(index int, label string) {
	logging.Trace("ui.select", map[string]interface{}{"index": index, "label": label})
}

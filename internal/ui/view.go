package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	triggerOpen   = "▴"
	triggerClosed = "▾"
	focusMarker   = "▌"
	menuPadding   = 4
	minMenuWidth  = 12
)

// layout computes the clickable regions of the current frame. It mirrors
// the row order used by View.
func (m *Model) layout() *hitMap {
	hm := &hitMap{}
	hm.add("trigger", rect{X: 0, Y: 0, W: lipgloss.Width(m.triggerLabel()), H: 1}, m.trigger)
	if !m.ctrl.Active() {
		return hm
	}
	width := m.menuWidth()
	hm.add("menu", rect{X: 0, Y: 1, W: width, H: len(m.items)}, m.menuEl)
	for i, el := range m.items {
		hm.add(fmt.Sprintf("item:%d", i), rect{X: 0, Y: 1 + i, W: width, H: 1}, el)
	}
	return hm
}

func (m *Model) triggerLabel() string {
	arrow := triggerClosed
	if m.ctrl.Active() {
		arrow = triggerOpen
	}
	return fmt.Sprintf("[ %s %s ]", m.def.Title, arrow)
}

func (m *Model) menuWidth() int {
	width := minMenuWidth
	for _, item := range m.def.Items {
		if w := lipgloss.Width(itemText(item.Label, item.AriaLabel)) + menuPadding; w > width {
			width = w
		}
	}
	if m.width > 0 && width > m.width {
		width = m.width
	}
	return width
}

func itemText(label, aria string) string {
	if label != "" {
		return label
	}
	return aria
}

// View renders the trigger, the open menu, the selected value and the
// optional footer.
func (m *Model) View() string {
	lines := make([]string, 0, len(m.items)+5)

	label := m.triggerLabel()
	if m.trigger.Focused() {
		lines = append(lines, render(styles.TriggerFocused, label))
	} else {
		lines = append(lines, render(styles.Trigger, label))
	}

	if m.ctrl.Active() {
		width := m.menuWidth()
		for i, el := range m.items {
			lines = append(lines, m.renderItem(i, el.Focused(), width))
		}
	}

	lines = append(lines, "")
	value := m.value
	if value == "" {
		value = "(none)"
	}
	lines = append(lines, render(styles.Info, "value: "+value))

	if m.errMsg != "" {
		lines = append(lines, render(styles.Error, m.errMsg))
	}
	if m.infoMsg != "" {
		lines = append(lines, render(styles.Info, m.infoMsg))
	}
	if m.showFooter {
		lines = append(lines, render(styles.Footer, m.help.View(m.keys)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderItem(i int, focused bool, width int) string {
	item := m.def.Items[i]
	text := itemText(item.Label, item.AriaLabel)
	avail := width - 2
	if avail < 1 {
		avail = 1
	}
	text = truncate.StringWithTail(text, uint(avail), "…")
	if pad := avail - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	if focused {
		return render(styles.SelectedItemIndicator, focusMarker+" ") + render(styles.SelectedItem, text)
	}
	return render(styles.ItemIndicator, "  ") + render(styles.Item, text)
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

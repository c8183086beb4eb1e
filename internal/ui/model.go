package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/listbox-control/internal/backend"
	"github.com/atomicstack/listbox-control/internal/dom"
	"github.com/atomicstack/listbox-control/internal/listbox"
	"github.com/atomicstack/listbox-control/internal/logging"
	"github.com/atomicstack/listbox-control/internal/logging/events"
	"github.com/atomicstack/listbox-control/internal/menu"
	"github.com/atomicstack/listbox-control/internal/theme"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Loader produces a fresh menu definition for reloads.
type Loader func() (menu.Definition, error)

type menuLoadedMsg struct {
	def menu.Definition
	err error
}

// Model implements the Bubble Tea model hosting one listbox.
type Model struct {
	doc     *dom.Document
	ctrl    *listbox.Controller
	def     menu.Definition
	trigger *dom.Element
	menuEl  *dom.Element
	items   []*dom.Element
	status  *dom.Element

	value      string
	errMsg     string
	infoMsg    string
	width      int
	height     int
	fixedWidth bool
	showFooter bool
	keys       keyMap
	help       help.Model
	reload     Loader
	backend    *backend.Watcher

	handlers map[reflect.Type]msgHandler
}

// NewModel renders def into a fresh document and binds a controller to it.
// A positive width pins the layout width.
func NewModel(def menu.Definition, width int, showFooter bool, reload Loader) *Model {
	doc := dom.NewDocument()
	m := &Model{
		doc:        doc,
		ctrl:       listbox.New(doc, len(def.Items)),
		def:        def,
		showFooter: showFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
		reload:     reload,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
		m.help.Width = width
	}
	m.trigger = doc.Body.AppendChild(dom.NewElement(dom.NodeButton))
	m.trigger.Text = def.Title
	m.menuEl = doc.Body.AppendChild(dom.NewElement("ul"))
	m.menuEl.SetAttr("role", listbox.RoleMenu)
	m.status = doc.Body.AppendChild(dom.NewElement("p"))
	m.renderItems()
	m.sync()
	m.trigger.Focus()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	m.sync()
	return m, cmd
}

// Close releases the controller and its document listeners.
func (m *Model) Close() {
	m.ctrl.Close()
}

// Value returns the most recently selected item label.
func (m *Model) Value() string {
	return m.value
}

// Controller exposes the bound listbox controller.
func (m *Model) Controller() *listbox.Controller {
	return m.ctrl
}

// Document exposes the rendered element tree.
func (m *Model) Document() *dom.Document {
	return m.doc
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(menuLoadedMsg{}):     m.handleMenuLoadedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// renderItems replaces the item elements with one per definition item and
// binds fresh controller handles to them.
func (m *Model) renderItems() {
	for _, el := range m.items {
		m.menuEl.RemoveChild(el)
	}
	if len(m.items) > 0 || m.ctrl.ItemCount() != len(m.def.Items) {
		m.ctrl.SetItemCount(len(m.def.Items))
	}
	m.items = make([]*dom.Element, len(m.def.Items))
	props := m.ctrl.ItemProps()
	for i, item := range m.def.Items {
		el := m.menuEl.AppendChild(dom.NewElement(item.NodeName()))
		el.Text = item.Label
		if item.AriaLabel != "" {
			el.SetAttr("aria-label", item.AriaLabel)
		}
		idx := i
		el.OnClick = func(*dom.Event) { m.selectItem(idx) }
		props[i].Bind(el)
		m.items[i] = el
	}
	m.ctrl.Refocus()
}

// selectItem records the chosen value and closes the menu. The controller
// never closes on mouse selection by itself.
func (m *Model) selectItem(i int) {
	if i < 0 || i >= len(m.def.Items) {
		return
	}
	item := m.def.Items[i]
	m.value = item.Label
	if m.value == "" {
		m.value = item.AriaLabel
	}
	events.UI.Select(i, m.value)
	m.ctrl.SetActive(false)
}

// sync pushes controller state back onto the rendered elements.
func (m *Model) sync() {
	m.ctrl.TriggerProps().Bind(m.trigger)
	m.menuEl.Hidden = !m.ctrl.Active()
	m.status.Text = m.value
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.Close()
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Reload):
		return m.reloadCmd()
	}
	for _, k := range m.keys.translate(keyMsg) {
		events.UI.Key(k.name, k.shift, describe(m.doc.ActiveElement()))
		m.doc.DispatchKeyDown(k.name, k.shift)
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	var target *dom.Element
	regionID := "body"
	if hit := m.layout().test(mouse.X, mouse.Y); hit != nil {
		target = hit.element
		regionID = hit.id
	}
	events.UI.Click(mouse.X, mouse.Y, regionID)
	if target != nil && target.TabIndex >= 0 {
		target.Focus()
	}
	m.doc.DispatchClick(target)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
		m.help.Width = size.Width
	}
	m.height = size.Height
	return nil
}

func (m *Model) reloadCmd() tea.Cmd {
	if m.reload == nil {
		m.infoMsg = "Nothing to reload."
		return nil
	}
	load := m.reload
	return func() tea.Msg {
		def, err := load()
		return menuLoadedMsg{def: def, err: err}
	}
}

func (m *Model) handleMenuLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(menuLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.err != nil {
		logging.Error(loaded.err)
		m.errMsg = loaded.err.Error()
		return nil
	}
	m.applyDefinition(loaded.def)
	m.infoMsg = "Menu reloaded."
	return nil
}

func (m *Model) applyDefinition(def menu.Definition) {
	m.errMsg = ""
	m.def = def
	m.trigger.Text = def.Title
	m.renderItems()
}

func describe(el *dom.Element) string {
	if el == nil {
		return ""
	}
	if role, ok := el.Attr("role"); ok {
		return el.NodeName + "[" + role + "]"
	}
	return el.NodeName
}

// Package ui contains the Bubble Tea program that hosts a single menu button.
// The Model renders a menu definition into a dom.Document and binds a
// listbox.Controller to the trigger and item elements; the terminal is only
// an input source and a painter for that tree.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are translated by the keymap into dom key names and
//     dispatched at the focused element, so the controller sees the same
//     events a browser would deliver.
//   - Left mouse presses are resolved against the hit map computed from the
//     last layout and dispatched as clicks; misses land on the body.
//   - After every message, sync pushes controller state (aria-expanded, menu
//     visibility) back onto the tree before View paints it.
//
// Reloads:
//   - ctrl+r runs the configured Loader as a tea.Cmd; its menuLoadedMsg
//     re-renders the items and resizes the controller.
//   - A backend.Watcher attached with Watch streams definitions whenever the
//     items file changes on disk.
package ui

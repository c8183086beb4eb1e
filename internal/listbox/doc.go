// Package listbox implements the interaction logic of a menu button: the
// trigger that opens a listbox and the menu items inside it.
//
// A Controller owns two pieces of state, whether the menu is active and
// which item holds roving focus, plus back-references to the trigger and
// item elements rendered by the host. The host binds TriggerProps and
// ItemProps to its elements and routes dom events to them; the controller
// translates those events into state transitions and issues focus commands
// through the references.
//
// Side effects run synchronously with each transition:
//   - becoming active installs a document click listener (outside clicks
//     close the menu) and a document keydown listener (arrow keys do not
//     scroll the page), then focuses the first item;
//   - becoming inactive removes both listeners.
//
// Close must be called when the host discards the controller so no listener
// outlives it.
package listbox

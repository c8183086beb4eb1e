package listbox

import (
	"regexp"
	"slices"

	"github.com/atomicstack/listbox-control/internal/dom"
)

// controlKeys are the keys a focused item always intercepts.
var controlKeys = []string{
	dom.KeyTab,
	dom.KeyShift,
	dom.KeyEnter,
	dom.KeyEscape,
	dom.KeyArrowUp,
	dom.KeyArrowDown,
	dom.KeySpace,
}

// triggerKeys are the only keys the trigger reacts to.
var triggerKeys = []string{
	dom.KeyArrowDown,
	dom.KeyEscape,
	dom.KeyEnter,
	dom.KeySpace,
	dom.KeyTab,
}

// typeAheadPattern matches a single printable character that can start a
// type-ahead jump. The hyphen is not part of the set.
var typeAheadPattern = regexp.MustCompile("^[a-zA-Z0-9./<>?;:\"'`!@#$%^&*()\\[\\]{}_+=|\\\\~,]$")

// IsControlKey reports whether key belongs to the item control set.
func IsControlKey(key string) bool {
	return slices.Contains(controlKeys, key)
}

// IsTriggerKey reports whether the trigger handles key.
func IsTriggerKey(key string) bool {
	return slices.Contains(triggerKeys, key)
}

// IsTypeAheadKey reports whether key is a printable type-ahead character.
func IsTypeAheadKey(key string) bool {
	return typeAheadPattern.MatchString(key)
}

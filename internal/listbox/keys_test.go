package listbox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atomicstack/listbox-control/internal/dom"
)

func TestKeyClassification(t *testing.T) {
	cases := []struct {
		key       string
		control   bool
		trigger   bool
		typeAhead bool
	}{
		{dom.KeyTab, true, true, false},
		{dom.KeyShift, true, false, false},
		{dom.KeyEnter, true, true, false},
		{dom.KeyEscape, true, true, false},
		{dom.KeyArrowUp, true, false, false},
		{dom.KeyArrowDown, true, true, false},
		{dom.KeySpace, true, true, false},
		{dom.KeyArrowLeft, false, false, false},
		{"a", false, false, true},
		{"Z", false, false, true},
		{"7", false, false, true},
		{"-", false, false, false},
		{",", false, false, true},
		{"\\", false, false, true},
		{"[", false, false, true},
		{"`", false, false, true},
		{"~", false, false, true},
		{"ab", false, false, false},
		{"é", false, false, false},
		{"", false, false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.control, IsControlKey(tc.key), "control %q", tc.key)
		assert.Equal(t, tc.trigger, IsTriggerKey(tc.key), "trigger %q", tc.key)
		assert.Equal(t, tc.typeAhead, IsTypeAheadKey(tc.key), "type-ahead %q", tc.key)
	}
}

//go:build linux

package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKey(t *testing.T) {
	up, err := LookupKey("KEY_UP")
	require.NoError(t, err)
	assert.Equal(t, Key(103), up)

	shift, err := LookupKey("KEY_LEFTSHIFT")
	require.NoError(t, err)
	assert.Equal(t, ShiftLeft, shift)

	_, err = LookupKey("KEY_DOES_NOT_EXIST")
	assert.Error(t, err)

	_, err = LookupKey("up")
	assert.Error(t, err, "names must use the KEY_ form")
}

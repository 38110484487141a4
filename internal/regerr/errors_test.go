package regerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesOnlyItsKind(t *testing.T) {
	testCases := []struct {
		name     string
		err      *Error
		sentinel error
	}{
		{"invalid phase", InvalidPhase("Alpha", "item", "Sword", "loaded"), ErrInvalidPhase},
		{"duplicate", DuplicateName("Alpha", "item", "Sword"), ErrDuplicateName},
		{"missing resource", MissingResource("Alpha", "item", "Sword", "Alpha/Items/Sword", nil), ErrMissingResource},
		{"out of range", OutOfRange("Alpha", "music_box", "Theme", 9000, "not a music slot"), ErrOutOfRange},
		{"validation", Invalid("Alpha", "music_box", "Theme", 12, "already claimed"), ErrValidation},
	}

	all := []error{ErrInvalidPhase, ErrDuplicateName, ErrMissingResource, ErrOutOfRange, ErrValidation}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("setup failed: %w", tc.err)
			for _, s := range all {
				assert.Equal(t, s == tc.sentinel, errors.Is(wrapped, s), "sentinel %v", s)
			}
			assert.Equal(t, tc.err.Kind, KindOf(wrapped))
		})
	}
}

func TestError_MessageCarriesIdentifiers(t *testing.T) {
	err := OutOfRange("Beta", "music_box", "ThemeBox", 4242, "music slot is not registered")
	msg := err.Error()

	assert.Contains(t, msg, `owner "Beta"`)
	assert.Contains(t, msg, `category "music_box"`)
	assert.Contains(t, msg, `name "ThemeBox"`)
	assert.Contains(t, msg, "slot 4242")
	assert.Contains(t, msg, "music slot is not registered")
}

func TestError_UnwrapsInternal(t *testing.T) {
	cause := errors.New("file vanished")
	err := MissingResource("Alpha", "tile", "Ore", "Alpha/Tiles/Ore", cause)

	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, ErrMissingResource)
	assert.Contains(t, err.Error(), "file vanished")
	assert.NotContains(t, DuplicateName("Alpha", "tile", "Ore").Error(), "slot")
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/modslots/internal/content"
)

// AssertSlot checks that owner registered name in kind and that it occupies
// want.
func AssertSlot(t *testing.T, result *HarnessResult, kind content.Kind, owner, name string, want int) {
	t.Helper()
	require.NoError(t, result.Err)

	for _, row := range result.App.Registry().Report().Slots {
		if row.Kind == kind && row.Owner == owner && row.Name == name {
			require.Equal(t, want, row.Slot, "slot of %s %s:%s", kind, owner, name)
			return
		}
	}
	require.Failf(t, "registration not found", "no live %s registered as %s:%s", kind, owner, name)
}

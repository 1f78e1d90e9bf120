package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunch(t *testing.T) {
	t.Run("clean exit", func(t *testing.T) {
		err := Launch(context.Background(), "true", "/tmp/does-not-matter.conf")
		assert.NoError(t, err)
	})

	t.Run("non-zero exit is a warning, not a failure to start", func(t *testing.T) {
		err := Launch(context.Background(), "false", "/tmp/does-not-matter.conf")
		var warn *ExitWarning
		require.ErrorAs(t, err, &warn)
		assert.Contains(t, warn.Error(), "viewer terminated")
	})

	t.Run("missing binary", func(t *testing.T) {
		err := Launch(context.Background(), "definitely-not-a-real-viewer", "/tmp/x.conf")
		require.Error(t, err)
		var warn *ExitWarning
		assert.False(t, errors.As(err, &warn), "a start failure must not be downgraded to a warning")
	})
}

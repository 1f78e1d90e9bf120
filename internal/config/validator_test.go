package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	setup := func() {
		viper.Reset()
		viper.Set("viewer", "remote-viewer")
		viper.Set("timeout", "30s")
	}
	t.Cleanup(viper.Reset)

	t.Run("valid configuration", func(t *testing.T) {
		setup()
		assert.NoError(t, Validate())
	})

	t.Run("negative timeout", func(t *testing.T) {
		setup()
		viper.Set("timeout", "-5s")
		err := Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("zero timeout", func(t *testing.T) {
		setup()
		viper.Set("timeout", "0s")
		err := Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("empty viewer", func(t *testing.T) {
		setup()
		viper.Set("viewer", "")
		err := Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "viewer")
	})
}

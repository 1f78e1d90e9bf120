package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir()) // keep a real ~/.pvespice.yaml out of the test

	Load("")

	assert.Equal(t, "remote-viewer", viper.GetString("viewer"))
	assert.Equal(t, 30*time.Second, viper.GetDuration("timeout"))
	assert.False(t, viper.GetBool("insecure"))
	assert.False(t, viper.GetBool("verbose"))
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PVESPICE_CLUSTER", "pve.example.com")
	t.Setenv("PVESPICE_VIEWER", "spicy")

	Load("")

	assert.Equal(t, "pve.example.com", viper.GetString("cluster"))
	assert.Equal(t, "spicy", viper.GetString("viewer"))
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"cluster", "user", "password", "name", "id", "viewer", "insecure", "timeout"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "flag %q should be registered", name)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestRootCommandSelectorContract(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("neither name nor id", func(t *testing.T) {
		rootCmd.SetArgs([]string{"--cluster", "pve.example.com", "--user", "root@pam"})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one of the flags")
	})

	t.Run("both name and id", func(t *testing.T) {
		rootCmd.SetArgs([]string{
			"--cluster", "pve.example.com", "--user", "root@pam",
			"--name", "web1", "--id", "101",
		})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "none of the others can be")
	})
}

func TestExecuteExitsNonZeroOnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	code := 0
	oldExit := exit
	exit = func(c int) { code = c }
	defer func() { exit = oldExit }()

	// Selector flags conflict, so Execute fails before any network access.
	rootCmd.SetArgs([]string{
		"--cluster", "pve.example.com", "--user", "root@pam",
		"--name", "web1", "--id", "101",
	})
	Execute()
	assert.Equal(t, 1, code)
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Validate checks configuration values and returns an error if any are
// invalid. Call it after viper has loaded the configuration.
func Validate() error {
	var errors []string

	if timeout := viper.GetDuration("timeout"); timeout <= 0 {
		errors = append(errors, fmt.Sprintf("timeout must be positive, got: %v", timeout))
	}

	if viper.GetString("viewer") == "" {
		errors = append(errors, "viewer must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, "; "))
	}
	return nil
}

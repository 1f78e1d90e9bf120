package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for ".pvespice.yaml" in the home directory, then here.
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pvespice")
	}

	viper.SetEnvPrefix("PVESPICE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Set defaults
	viper.SetDefault("viewer", "remote-viewer")
	viper.SetDefault("timeout", "30s")
	viper.SetDefault("insecure", false)
	viper.SetDefault("verbose", false)

	// The config file is optional; flags and environment cover everything.
	_ = viper.ReadInConfig()
}

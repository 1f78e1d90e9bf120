package main

import (
	"os"
	"time"

	"pvespice/internal/config"
	"pvespice/internal/telemetry"
	"pvespice/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd is the whole CLI: running the binary performs the connect flow.
var rootCmd = &cobra.Command{
	Use:   "pvespice",
	Short: "Launch a SPICE console for a Proxmox VE guest",
	Long: `pvespice authenticates against a Proxmox VE cluster, looks up a guest by
name or id, requests SPICE proxy credentials and hands them to a local
remote-viewer for the console session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConnect,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pvespice.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")

	rootCmd.Flags().StringP("cluster", "c", "", "Proxmox cluster FQDN (example: foo.example.com)")
	rootCmd.Flags().StringP("user", "u", "", "Proxmox VE username (example: johndoe@pve)")
	rootCmd.Flags().StringP("password", "p", "", "User password (prompted when omitted)")
	rootCmd.Flags().StringP("name", "n", "", "Guest name in the PVE cluster")
	rootCmd.Flags().StringP("id", "i", "", "Guest ID in the PVE cluster")
	rootCmd.Flags().String("viewer", "remote-viewer", "Viewer executable to launch")
	rootCmd.Flags().Bool("insecure", false, "Skip TLS certificate verification")
	rootCmd.Flags().Duration("timeout", 30*time.Second, "HTTP timeout for API calls")

	rootCmd.MarkFlagsMutuallyExclusive("name", "id")
	rootCmd.MarkFlagsOneRequired("name", "id")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("cluster", rootCmd.Flags().Lookup("cluster"))
	viper.BindPFlag("user", rootCmd.Flags().Lookup("user"))
	viper.BindPFlag("password", rootCmd.Flags().Lookup("password"))
	viper.BindPFlag("viewer", rootCmd.Flags().Lookup("viewer"))
	viper.BindPFlag("insecure", rootCmd.Flags().Lookup("insecure"))
	viper.BindPFlag("timeout", rootCmd.Flags().Lookup("timeout"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	if err := config.Validate(); err != nil {
		ui.Error("%v", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"))
}

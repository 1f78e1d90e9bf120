package main

import (
	"errors"
	"fmt"
	"log/slog"

	"pvespice/internal/pve"
	"pvespice/internal/ui"
	"pvespice/internal/viewer"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Wrapper for survey functions to allow mocking in tests
var askOneFunc = survey.AskOne

// runConnect is the whole flow: probe the API port, authenticate, locate
// the guest, request SPICE credentials, write the connection file and hand
// it to the viewer. Every step up to the launch is fatal on error; a
// failing viewer only produces a warning. Connection files already written
// are not cleaned up on abort.
func runConnect(cmd *cobra.Command, args []string) error {
	cluster := viper.GetString("cluster")
	username := viper.GetString("user")
	if cluster == "" {
		return fmt.Errorf("no cluster given: use --cluster or set PVESPICE_CLUSTER")
	}
	if username == "" {
		return fmt.Errorf("no user given: use --user or set PVESPICE_USER")
	}

	name, _ := cmd.Flags().GetString("name")
	vmid, _ := cmd.Flags().GetString("id")
	// cobra enforces this already; the guard keeps the contract independent
	// of flag wiring and ahead of any network access.
	if name == "" && vmid == "" {
		return pve.ErrNoSelector
	}

	password := viper.GetString("password")
	if password == "" {
		if err := askOneFunc(&survey.Password{Message: "Password:"}, &password); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	timeout := viper.GetDuration("timeout")
	insecure := viper.GetBool("insecure")

	port := pve.ProbePort(pve.NewHTTPClient(timeout, insecure), cluster)
	slog.Debug("resolved management API port", "cluster", cluster, "port", port)

	client := pve.NewClient(pve.APIBaseURL(cluster, port), timeout, insecure)

	if _, err := client.Login(ctx, username, password); err != nil {
		return err
	}

	resources, err := client.ClusterResources(ctx)
	if err != nil {
		return err
	}

	guest, err := pve.Locate(resources, name, vmid)
	if err != nil {
		return err
	}
	slog.Debug("located guest",
		"name", guest.Name, "kind", guest.Kind, "id", guest.ID, "node", guest.Node)

	spice, err := client.SpiceProxy(ctx, guest.Node, guest.Kind, guest.ID)
	if err != nil {
		return err
	}

	if n := viewer.SweepStale(); n > 0 {
		slog.Debug("removed stale connection files", "count", n)
	}

	path, err := viewer.WriteDescriptor(spice)
	if err != nil {
		return err
	}

	ui.Info("Connecting to %s (%s/%s) on node %s ...", guest.Name, guest.Kind, guest.ID, guest.Node)

	if err := viewer.Launch(ctx, viper.GetString("viewer"), path); err != nil {
		var warn *viewer.ExitWarning
		if errors.As(err, &warn) {
			ui.Warn("%v", warn)
			return nil
		}
		return err
	}

	ui.Success("Viewer session finished.")
	return nil
}

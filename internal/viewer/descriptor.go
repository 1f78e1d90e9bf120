// Package viewer writes virt-viewer connection files and drives the
// external remote-viewer process.
package viewer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pvespice/internal/pve"
)

// Descriptor files are created in the user's home directory, where the
// original shell workflow kept them, so the viewer can always read them.
const (
	descriptorPattern = "pvespice-*.conf"
	staleAfter        = time.Hour
)

// WriteDescriptor serializes the SPICE connection parameters into a
// virt-viewer connection file and returns its path. The file is readable
// only by the invoking user and contains the one-time password in plain
// text; it embeds delete-this-file=1, so removing it after the connection
// is the viewer's job.
func WriteDescriptor(cfg *pve.SpiceConfig) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return writeDescriptorIn(home, cfg)
}

func writeDescriptorIn(dir string, cfg *pve.SpiceConfig) (string, error) {
	// os.CreateTemp creates the file 0600.
	f, err := os.CreateTemp(dir, descriptorPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create connection file: %w", err)
	}
	defer f.Close()

	// The exact line set is dictated by remote-viewer; the section header
	// must come first.
	body := fmt.Sprintf(`[virt-viewer]
type=spice
toggle-fullscreen=Shift+F11
title=%s
tls-port=%s
host=%s
ca=%s
host-subject=%s
password=%s
proxy=%s
release-cursor=Ctrl+Alt+R
delete-this-file=1
`, cfg.Title, cfg.TLSPort, cfg.Host, cfg.CA, cfg.HostSubject, cfg.Password, cfg.Proxy)

	if _, err := f.WriteString(body); err != nil {
		return "", fmt.Errorf("failed to write connection file: %w", err)
	}

	return f.Name(), nil
}

// SweepStale removes descriptors left behind by earlier runs, e.g. when a
// viewer crashed before honoring delete-this-file. Best effort: a file
// that cannot be inspected or removed is left in place. Returns how many
// files were removed.
func SweepStale() int {
	home, err := os.UserHomeDir()
	if err != nil {
		return 0
	}
	return sweepStaleIn(home, time.Now())
}

func sweepStaleIn(dir string, now time.Time) int {
	matches, err := filepath.Glob(filepath.Join(dir, descriptorPattern))
	if err != nil {
		return 0
	}

	removed := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || now.Sub(info.ModTime()) < staleAfter {
			continue
		}
		if os.Remove(path) == nil {
			removed++
		}
	}
	return removed
}

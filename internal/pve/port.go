package pve

import "net/http"

// Ports the PVE web API may listen on. The management API normally binds
// 8006; some clusters front it on the standard HTTPS port instead.
const (
	StandardPort = "443"
	FallbackPort = "8006"
)

// ProbePort reports which port the management API should be reached on.
// It probes the standard HTTPS port; any connection failure is a signal to
// use the PVE default port, never an error. Any HTTP response at all,
// whatever its status, means the standard port is in use.
func ProbePort(client *http.Client, host string) string {
	resp, err := client.Get("https://" + host + ":" + StandardPort + "/")
	if err != nil {
		return FallbackPort
	}
	resp.Body.Close()
	return StandardPort
}

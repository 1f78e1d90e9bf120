package pve

import (
	"errors"
	"fmt"
)

// ErrNoSelector is returned when neither a guest name nor a guest id was
// supplied. It is a caller error, detected before any network call.
var ErrNoSelector = errors.New("neither guest name nor guest id provided")

// AuthError represents a non-success response from the ticket endpoint.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: PVE proxy returned HTTP %d", e.StatusCode)
}

// NotFoundError means no inventory entry matched the requested selector.
type NotFoundError struct {
	Name string
	VMID string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("no guest named %q found in cluster", e.Name)
	}
	return fmt.Sprintf("no guest with id %q found in cluster", e.VMID)
}

// ProxyError represents a non-success response from the spiceproxy endpoint.
type ProxyError struct {
	StatusCode int
}

func (e *ProxyError) Error() string {
	return fmt.Sprintf("could not get SPICE params: PVE returned HTTP %d", e.StatusCode)
}

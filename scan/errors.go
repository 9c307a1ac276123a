package scan

import (
	"errors"
	"fmt"
)

// ErrPrivilegeRequired is returned when discovery is attempted without the
// elevated privilege the discovery tool needs to report MAC addresses.
// Whether to terminate the process is the caller's decision.
var ErrPrivilegeRequired = errors.New("root privilege is required for LAN discovery")

// ErrInvalidRange is returned when a port scan is requested with bounds
// outside 0-65535 or with min greater than max.
var ErrInvalidRange = errors.New("invalid port range")

// HostResolutionError means the scan target could not be resolved to an
// address. No ports were probed.
type HostResolutionError struct {
	Host string
	Err  error
}

func (e *HostResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve host %q: %s", e.Host, e.Err)
}

func (e *HostResolutionError) Unwrap() error {
	return e.Err
}

// HostConnectionError means the socket layer reported a host-level failure
// (not a per-port refusal) and the scan was aborted.
type HostConnectionError struct {
	Host string
	Err  error
}

func (e *HostConnectionError) Error() string {
	return fmt.Sprintf("unable to connect to host %q: %s", e.Host, e.Err)
}

func (e *HostConnectionError) Unwrap() error {
	return e.Err
}

package scan

// TCP port number boundaries.
const (
	PortMin           = 1
	WellKnownPortMax  = 1023
	RegisteredPortMin = 1024
	RegisteredPortMax = 49151
	PortMax           = 65535
)

// PortInfo holds the registry entry for an assigned TCP port.
type PortInfo struct {
	Keyword     string
	Description string
}

// LookupPort returns the registry entry for a port, if one is assigned.
// The table is built once at init and never mutated, so lookups are safe
// from any number of concurrent scans.
func LookupPort(port int) (PortInfo, bool) {
	info, ok := knownPorts[port]
	return info, ok
}

// DescribePort returns the service keyword for a port, or "" if the port
// has no registry entry.
func DescribePort(port int) string {
	if info, ok := knownPorts[port]; ok {
		return info.Keyword
	}

	return ""
}

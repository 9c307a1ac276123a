package scan

// HostRecord describes a single host found during a subnet sweep.
type HostRecord struct {
	IP      string `json:"ip"`
	MAC     string `json:"mac"`
	Comment string `json:"comment"`
}

// LocalHost identifies the scanning machine itself. The discovery tool
// cannot report link-layer data for the interface it scans from, so the
// caller supplies it and it overrides anything parsed for that IP.
type LocalHost struct {
	IP      string
	MAC     string
	Comment string
}

// DiscoveryResult holds the hosts found during a sweep, in the order the
// discovery tool reported them. Truncated is set when the tool's output
// was malformed and parsing stopped early; the hosts collected up to that
// point are still valid.
type DiscoveryResult struct {
	Hosts     []HostRecord
	Truncated bool
}

// PortStatusOpen is the only status a PortRecord ever carries; closed and
// filtered ports produce no record at all.
const PortStatusOpen = "open"

// PortRecord describes a TCP port with a live listener.
type PortRecord struct {
	Port        int    `json:"port"`
	Status      string `json:"status"`
	Known       bool   `json:"known"`
	Keyword     string `json:"keyword"`
	Description string `json:"description"`
}

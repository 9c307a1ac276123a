package scan

import (
	"context"
	"net"
	"strings"

	"github.com/google/gopacket/macs"
	"github.com/mostlygeek/arp"
	"github.com/sirupsen/logrus"
)

// Discoverer ties a DiscoveryProvider to the host-block parser.
type Discoverer struct {
	provider DiscoveryProvider
	local    LocalHost

	// ARPFallback fills in missing MAC addresses from the OS ARP cache,
	// with the manufacturer looked up from the MAC's OUI prefix. Useful
	// when the provider ran without link-layer visibility.
	ARPFallback bool
}

func NewDiscoverer(provider DiscoveryProvider, local LocalHost) *Discoverer {
	return &Discoverer{
		provider: provider,
		local:    local,
	}
}

// Discover sweeps the given subnet and returns a record per responsive
// host, in the order the provider reported them.
func (d *Discoverer) Discover(ctx context.Context, cidr string) (*DiscoveryResult, error) {

	stream, err := d.provider.Discover(ctx, cidr)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	hosts, truncated := ParseHosts(stream, d.local)
	if truncated {
		logrus.Debugf("Discovery stream for %s was truncated after %d hosts", cidr, len(hosts))
	}

	if d.ARPFallback {
		for i := range hosts {
			d.enrichFromARP(&hosts[i])
		}
	}

	return &DiscoveryResult{Hosts: hosts, Truncated: truncated}, nil
}

// enrichFromARP backfills a record's MAC from the ARP cache and, when the
// comment is empty, the manufacturer from the OUI registry. The local
// host's record is never touched; the caller-supplied identity wins.
func (d *Discoverer) enrichFromARP(h *HostRecord) {

	if h.MAC != "" || h.IP == d.local.IP {
		return
	}

	macStr := arp.Search(h.IP)
	if macStr == "" || macStr == "00:00:00:00:00:00" {
		return
	}

	mac, err := net.ParseMAC(macStr)
	if err != nil || len(mac) != 6 {
		return
	}

	h.MAC = strings.ToUpper(mac.String())

	if h.Comment == "" {
		prefix := [3]byte{mac[0], mac[1], mac[2]}
		if manufacturer, ok := macs.ValidMACPrefixMap[prefix]; ok {
			h.Comment = manufacturer
		}
	}
}

package scan

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct {
	output string
	err    error
}

func (p *staticProvider) Discover(ctx context.Context, cidr string) (io.ReadCloser, error) {
	if p.err != nil {
		return nil, p.err
	}
	return io.NopCloser(strings.NewReader(p.output)), nil
}

func TestDiscovererParsesProviderStream(t *testing.T) {

	discoverer := NewDiscoverer(&staticProvider{output: sweepOutput}, sweepLocal)

	result, err := discoverer.Discover(context.Background(), "192.168.123.0/24")
	require.NoError(t, err)

	assert.False(t, result.Truncated)
	require.Len(t, result.Hosts, 4)
	assert.Equal(t, "192.168.123.1", result.Hosts[0].IP)
	assert.Equal(t, sweepLocal.MAC, result.Hosts[3].MAC)
}

func TestDiscovererPropagatesProviderError(t *testing.T) {

	discoverer := NewDiscoverer(&staticProvider{err: ErrPrivilegeRequired}, sweepLocal)

	result, err := discoverer.Discover(context.Background(), "192.168.123.0/24")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrPrivilegeRequired)
}

func TestDiscovererReportsTruncation(t *testing.T) {

	truncatedOutput := `Nmap scan report for 192.168.123.1
Host is up (0.0031s latency).
MAC Address: 3C:37:86:5E:EC:37 (Unknown)
Nmap scan report for 192.168.123.9
`
	discoverer := NewDiscoverer(&staticProvider{output: truncatedOutput}, sweepLocal)

	result, err := discoverer.Discover(context.Background(), "192.168.123.0/24")
	require.NoError(t, err)

	assert.True(t, result.Truncated)
	require.Len(t, result.Hosts, 1)
}

func TestEnrichFromARPLeavesKnownRecordsAlone(t *testing.T) {

	discoverer := NewDiscoverer(&staticProvider{}, sweepLocal)
	discoverer.ARPFallback = true

	parsed := HostRecord{IP: "192.168.123.1", MAC: "3C:37:86:5E:EC:37", Comment: "Unknown"}
	record := parsed
	discoverer.enrichFromARP(&record)
	assert.Equal(t, parsed, record)

	local := HostRecord{IP: sweepLocal.IP, MAC: sweepLocal.MAC, Comment: sweepLocal.Comment}
	record = local
	discoverer.enrichFromARP(&record)
	assert.Equal(t, local, record)
}

func TestEnrichFromARPUnknownAddress(t *testing.T) {

	// TEST-NET addresses never appear in the ARP cache, so the record
	// stays as parsed.
	discoverer := NewDiscoverer(&staticProvider{}, sweepLocal)
	discoverer.ARPFallback = true

	record := HostRecord{IP: "203.0.113.77"}
	discoverer.enrichFromARP(&record)

	assert.Empty(t, record.MAC)
	assert.Empty(t, record.Comment)
}

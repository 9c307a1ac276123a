package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepLine(t *testing.T) {

	assert.False(t, keepLine("Starting Nmap 7.40 ( https://nmap.org ) at 2019-06-01 14:07 PDT"))
	assert.False(t, keepLine("Nmap done: 256 IP addresses (4 hosts up) scanned in 2.31 seconds"))
	assert.False(t, keepLine(""))
	assert.False(t, keepLine("   "))

	assert.True(t, keepLine("Nmap scan report for 192.168.123.1"))
	assert.True(t, keepLine("Host is up (0.0031s latency)."))
	assert.True(t, keepLine("MAC Address: 3C:37:86:5E:EC:37 (Unknown)"))
}

func TestNmapProviderRequiresPrivilege(t *testing.T) {

	provider := NewNmapProvider()
	provider.euid = func() int { return 1000 }

	stream, err := provider.Discover(context.Background(), "192.168.123.0/24")
	assert.Nil(t, stream)
	assert.ErrorIs(t, err, ErrPrivilegeRequired)
}

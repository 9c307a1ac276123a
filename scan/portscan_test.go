package scan

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"testing"
	"time"

	"github.com/phayes/freeport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSingleOpenPort(t *testing.T) {

	port, err := freeport.GetFreePort()
	require.NoError(t, err)

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	require.NoError(t, err)
	defer listener.Close()

	scanner := NewPortScanner(time.Second, 4)

	records, err := scanner.Scan(context.Background(), "127.0.0.1", port, port)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, port, record.Port)
	assert.Equal(t, PortStatusOpen, record.Status)

	info, known := LookupPort(port)
	assert.Equal(t, known, record.Known)
	if known {
		assert.Equal(t, info.Keyword, record.Keyword)
		assert.Equal(t, info.Description, record.Description)
	} else {
		assert.Empty(t, record.Keyword)
		assert.Empty(t, record.Description)
	}
}

func TestScanNoOpenPorts(t *testing.T) {

	port, err := freeport.GetFreePort()
	require.NoError(t, err)

	scanner := NewPortScanner(time.Second, 4)

	records, err := scanner.Scan(context.Background(), "127.0.0.1", port, port)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestScanAscendingOrder(t *testing.T) {

	ports, err := freeport.GetFreePorts(2)
	require.NoError(t, err)
	sort.Ints(ports)
	require.NotEqual(t, ports[0], ports[1])

	var listeners []net.Listener
	for _, port := range ports {
		listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		require.NoError(t, err)
		listeners = append(listeners, listener)
	}
	defer func() {
		for _, listener := range listeners {
			listener.Close()
		}
	}()

	scanner := NewPortScanner(time.Second, 256)

	records, err := scanner.Scan(context.Background(), "127.0.0.1", ports[0], ports[1])
	require.NoError(t, err)

	found := map[int]bool{}
	for i, record := range records {
		assert.Equal(t, PortStatusOpen, record.Status)
		if i > 0 {
			assert.Greater(t, record.Port, records[i-1].Port)
		}
		found[record.Port] = true
	}

	assert.True(t, found[ports[0]])
	assert.True(t, found[ports[1]])
}

func TestScanInvalidRange(t *testing.T) {

	scanner := NewPortScanner(time.Second, 4)

	for _, bounds := range [][2]int{
		{-1, 80},
		{10, 5},
		{0, PortMax + 1},
	} {
		records, err := scanner.Scan(context.Background(), "127.0.0.1", bounds[0], bounds[1])
		assert.Nil(t, records)
		assert.True(t, errors.Is(err, ErrInvalidRange), "expected ErrInvalidRange for %v, got %v", bounds, err)
	}
}

func TestScanUnresolvableHost(t *testing.T) {

	scanner := NewPortScanner(time.Second, 4)

	records, err := scanner.Scan(context.Background(), "no-such-host.invalid", 1, 10)
	assert.Nil(t, records)

	var resolutionErr *HostResolutionError
	require.True(t, errors.As(err, &resolutionErr))
	assert.Equal(t, "no-such-host.invalid", resolutionErr.Host)
}

func TestScanCancelledContext(t *testing.T) {

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := NewPortScanner(time.Second, 4)

	records, err := scanner.Scan(ctx, "127.0.0.1", 1, 100)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenPortRecordEnrichment(t *testing.T) {

	record := openPortRecord(80)
	assert.True(t, record.Known)
	assert.Equal(t, "http", record.Keyword)
	assert.Equal(t, "World Wide Web HTTP", record.Description)

	record = openPortRecord(64999)
	assert.False(t, record.Known)
	assert.Empty(t, record.Keyword)
	assert.Empty(t, record.Description)
}

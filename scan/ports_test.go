package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPortKnown(t *testing.T) {

	for port, keyword := range map[int]string{
		7:   "echo",
		21:  "ftp",
		23:  "telnet",
		25:  "smtp",
		80:  "http",
		443: "https",
	} {
		info, ok := LookupPort(port)
		require.True(t, ok, "port %d should be known", port)
		assert.Equal(t, keyword, info.Keyword)
		assert.NotEmpty(t, info.Description)
	}
}

func TestLookupPortUnknown(t *testing.T) {

	info, ok := LookupPort(64999)
	assert.False(t, ok)
	assert.Empty(t, info.Keyword)
	assert.Empty(t, info.Description)
}

func TestDescribePort(t *testing.T) {

	assert.Equal(t, "http", DescribePort(80))
	assert.Equal(t, "", DescribePort(64999))
}

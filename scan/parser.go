package scan

import (
	"bufio"
	"io"
	"net"
	"strings"

	"github.com/sirupsen/logrus"
)

// Line prefixes emitted by nmap. Don't change these.
const (
	hostPrefix = "Nmap scan report for "
	macPrefix  = "MAC Address: "
)

type parseState uint8

const (
	expectHeader parseState = iota
	expectLatency
	expectMacOrHeader
)

// ParseHosts consumes the filtered text stream of a subnet sweep and
// returns one HostRecord per host block, in stream order.
//
// Each block is a header line, a latency line, and usually a MAC line.
// The block for the scanning host itself has no MAC line, so a line that
// doesn't carry the MAC prefix where one could appear is treated as the
// next block's header. The record whose IP matches local.IP always gets
// local's MAC and comment, regardless of what was parsed.
//
// The second return value reports truncation: true means a malformed line
// or an incomplete block stopped parsing early. The records collected
// before that point are returned either way, since a partial sweep is
// still useful.
func ParseHosts(r io.Reader, local LocalHost) ([]HostRecord, bool) {

	hosts := []HostRecord{}
	state := expectHeader

	var current HostRecord

	flush := func() {
		if current.IP == local.IP {
			current.MAC = local.MAC
			current.Comment = local.Comment
		}
		hosts = append(hosts, current)
	}

	header := func(line string) bool {
		ip, ok := parseHeaderLine(line)
		if !ok {
			logrus.Debugf("Unparseable header line %q, truncating", line)
			return false
		}
		current = HostRecord{IP: ip}
		state = expectLatency
		return true
	}

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())

		switch state {
		case expectHeader:
			if line == "" {
				return hosts, false
			}
			if !header(line) {
				return hosts, true
			}
		case expectLatency:
			// Informational only, not retained.
			state = expectMacOrHeader
		case expectMacOrHeader:
			if strings.HasPrefix(line, macPrefix) {
				mac, comment, ok := parseMACLine(line)
				if !ok {
					logrus.Debugf("Unparseable MAC line %q, truncating", line)
					return hosts, true
				}
				current.MAC = mac
				current.Comment = comment
				flush()
				state = expectHeader
				continue
			}
			// No MAC line for this block, so the line we're holding
			// belongs to the next block.
			flush()
			if line == "" {
				return hosts, false
			}
			if !header(line) {
				return hosts, true
			}
		}
	}

	// End of stream. A block that got as far as its latency line is a
	// complete MAC-less entry; one cut off after its header is not.
	switch state {
	case expectLatency:
		return hosts, true
	case expectMacOrHeader:
		flush()
	}

	return hosts, false
}

// parseHeaderLine extracts the IP from a header line. The IP is always
// the last whitespace-delimited token, with any parentheses removed
// (covers both "1.2.3.4" and "hostname (1.2.3.4)" forms).
func parseHeaderLine(line string) (string, bool) {
	if !strings.HasPrefix(line, hostPrefix) {
		return "", false
	}

	fields := strings.Fields(line[len(hostPrefix):])
	if len(fields) == 0 {
		return "", false
	}

	ip := strings.NewReplacer("(", "", ")", "").Replace(fields[len(fields)-1])
	if ip == "" {
		return "", false
	}

	return ip, true
}

// parseMACLine splits a MAC line into its 17-character colon-delimited
// address and the manufacturer comment that follows it. The comment's
// surrounding parentheses, if present, are dropped.
func parseMACLine(line string) (string, string, bool) {
	rest := strings.TrimPrefix(line, macPrefix)
	if len(rest) < 17 {
		return "", "", false
	}

	mac := rest[:17]
	if _, err := net.ParseMAC(mac); err != nil {
		return "", "", false
	}

	comment := strings.TrimSpace(rest[17:])
	comment = strings.TrimPrefix(comment, "(")
	comment = strings.TrimSuffix(comment, ")")

	return mac, comment, true
}

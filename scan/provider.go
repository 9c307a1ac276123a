package scan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// DiscoveryProvider produces the raw per-host text stream for a subnet
// sweep. The stream contains only header, latency and MAC lines; banner,
// footer and blank lines are already filtered out. Implementations other
// than nmap (or a canned stream in tests) just need to honour that shape.
type DiscoveryProvider interface {
	Discover(ctx context.Context, cidr string) (io.ReadCloser, error)
}

// NmapProvider sweeps a subnet by running "nmap -sn" as a subprocess and
// filtering its standard output down to the per-host lines.
type NmapProvider struct {
	// euid is swappable so the privilege check can be tested.
	euid func() int
}

func NewNmapProvider() *NmapProvider {
	return &NmapProvider{euid: os.Geteuid}
}

func (p *NmapProvider) Discover(ctx context.Context, cidr string) (io.ReadCloser, error) {

	// nmap runs fine without root but silently omits MAC data, which
	// would make every record look like the local host's. Refuse early
	// and let the caller decide what to do about it.
	if p.euid() != 0 {
		return nil, ErrPrivilegeRequired
	}

	cmd := exec.CommandContext(ctx, "nmap", "-sn", "-T5", cidr)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open nmap stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start nmap: %w", err)
	}

	logrus.Debugf("Started nmap sweep of %s (pid %d)", cidr, cmd.Process.Pid)

	pr, pw := io.Pipe()

	go func() {
		lines := bufio.NewScanner(stdout)
		for lines.Scan() {
			line := lines.Text()
			if !keepLine(line) {
				continue
			}
			if _, err := fmt.Fprintln(pw, line); err != nil {
				// The reader is gone. Drain nmap so Wait can't block
				// on a full pipe.
				io.Copy(io.Discard, stdout)
				break
			}
		}
		cmd.Wait()
		pw.CloseWithError(lines.Err())
	}()

	return pr, nil
}

// keepLine reports whether a raw nmap output line is part of a host block,
// as opposed to the banner, footer or padding.
func keepLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "Starting Nmap") || strings.HasPrefix(trimmed, "Nmap done") {
		return false
	}
	return true
}

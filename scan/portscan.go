package scan

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type PortState uint8

const (
	PortUnknown PortState = iota
	PortOpen
	PortClosed
	PortFiltered
)

// PortScanner probes a port range for live TCP listeners. Probes run on a
// bounded pool of goroutines with a per-attempt connect timeout, and the
// results are sorted so the ascending-port contract holds regardless of
// completion order.
type PortScanner struct {
	timeout     time.Duration
	maxRoutines int
}

func NewPortScanner(timeout time.Duration, parallelism int) *PortScanner {
	if parallelism < 1 {
		parallelism = 1
	}
	return &PortScanner{
		timeout:     timeout,
		maxRoutines: parallelism,
	}
}

// Scan probes every port in [minPort, maxPort] on host and returns a
// record for each open port, ascending by port number, enriched from the
// port registry. Closed and filtered ports produce no record; an empty
// result is not an error.
//
// The bounds are validated before anything is dialled. A host that cannot
// be resolved yields a *HostResolutionError; a host-level socket failure
// (anything other than a refusal, reset or timeout on an individual port)
// aborts the scan with a *HostConnectionError.
func (s *PortScanner) Scan(ctx context.Context, host string, minPort, maxPort int) ([]PortRecord, error) {

	if minPort < 0 || maxPort > PortMax || minPort > maxPort {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidRange, minPort, maxPort)
	}

	addr, err := net.ResolveIPAddr("ip4", host)
	if err != nil {
		return nil, &HostResolutionError{Host: host, Err: err}
	}
	target := addr.IP.String()

	logrus.Debugf("Scanning ports %d-%d on %s (%s)...", minPort, maxPort, host, target)

	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	records := []PortRecord{}
	recordChan := make(chan PortRecord)
	doneChan := make(chan struct{})

	go func() {
		for record := range recordChan {
			records = append(records, record)
		}
		close(doneChan)
	}()

	jobChan := make(chan int)

	go func() {
		defer close(jobChan)
		for port := minPort; port <= maxPort; port++ {
			select {
			case <-scanCtx.Done():
				return
			case jobChan <- port:
			}
		}
	}()

	wg := &sync.WaitGroup{}

	var scanErr error
	var errOnce sync.Once

	for i := 0; i < s.maxRoutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for port := range jobChan {

				select {
				case <-scanCtx.Done():
					return
				default:
				}

				state, err := s.probe(target, port)
				if err != nil {
					errOnce.Do(func() {
						scanErr = &HostConnectionError{Host: host, Err: err}
						cancel()
					})
					return
				}
				if state == PortOpen {
					recordChan <- openPortRecord(port)
				}
			}
		}()
	}

	wg.Wait()
	close(recordChan)
	<-doneChan

	if scanErr != nil {
		return nil, scanErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Port < records[j].Port
	})

	return records, nil
}

// probe makes a single connect attempt. The connection is closed as soon
// as the port is classified.
func (s *PortScanner) probe(target string, port int) (PortState, error) {

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(target, strconv.Itoa(port)), s.timeout)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return PortFiltered, nil
		}
		if strings.Contains(err.Error(), "refused") || strings.Contains(err.Error(), "reset") {
			return PortClosed, nil
		}
		return PortUnknown, err
	}
	conn.Close()

	return PortOpen, nil
}

func openPortRecord(port int) PortRecord {
	record := PortRecord{
		Port:   port,
		Status: PortStatusOpen,
	}
	if info, ok := LookupPort(port); ok {
		record.Known = true
		record.Keyword = info.Keyword
		record.Description = info.Description
	}
	return record
}

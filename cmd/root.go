package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"lanscan/scan"
	"lanscan/version"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool
var versionRequested bool

var localIP string
var localMAC string
var localComment string
var arpFallback bool

var minPort = scan.PortMin
var maxPort = scan.WellKnownPortMax
var timeoutMS = 1000
var parallelism = 1000

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "verbose", "v", debug, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&versionRequested, "version", "", versionRequested, "Output version information and exit")

	discoverCmd.Flags().StringVarP(&localIP, "local-ip", "i", localIP, "IPv4 address of this host on the target subnet")
	discoverCmd.Flags().StringVarP(&localMAC, "local-mac", "m", localMAC, "MAC address of this host")
	discoverCmd.Flags().StringVarP(&localComment, "local-comment", "c", localComment, "Comment to attach to this host's record")
	discoverCmd.Flags().BoolVarP(&arpFallback, "arp-fallback", "a", arpFallback, "Fill in missing MAC addresses from the OS ARP cache")

	portscanCmd.Flags().IntVarP(&minPort, "min", "", minPort, "Lowest port to scan")
	portscanCmd.Flags().IntVarP(&maxPort, "max", "", maxPort, "Highest port to scan")
	portscanCmd.Flags().IntVarP(&timeoutMS, "timeout-ms", "t", timeoutMS, "Connect timeout in MS")
	portscanCmd.Flags().IntVarP(&parallelism, "workers", "w", parallelism, "Parallel routines to scan on")

	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(portscanCmd)
}

var rootCmd = &cobra.Command{
	Use:   "lanscan",
	Short: "lanscan reports LAN hosts and open TCP ports as JSON",
	Long:  `A LAN scanning tool that discovers hosts on a subnet and enumerates open TCP ports on a host, emitting machine-readable JSON records.`,
	Run: func(cmd *cobra.Command, args []string) {

		if versionRequested {
			v := version.Version
			if v == "" {
				v = "development version"
			}
			fmt.Printf("lanscan %s\n", v)
			return
		}

		cmd.Help()
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover [subnet-cidr]",
	Short: "Discover hosts on a subnet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		if debug {
			log.SetLevel(log.DebugLevel)
		}

		local := scan.LocalHost{IP: localIP, MAC: localMAC, Comment: localComment}
		discoverer := scan.NewDiscoverer(scan.NewNmapProvider(), local)
		discoverer.ARPFallback = arpFallback

		log.Debugf("Sweeping subnet %s...", args[0])

		result, err := discoverer.Discover(context.Background(), args[0])
		if err != nil {
			if errors.Is(err, scan.ErrPrivilegeRequired) {
				fmt.Fprintln(os.Stderr, "Error: root privilege is required for discovery. Try again with sudo.")
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if result.Truncated {
			log.Warnf("Discovery output was malformed; results may be incomplete")
		}

		emit(result.Hosts)
	},
}

var portscanCmd = &cobra.Command{
	Use:   "portscan [host]",
	Short: "Find open TCP ports on a host",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		if debug {
			log.SetLevel(log.DebugLevel)
		}

		scanner := scan.NewPortScanner(time.Millisecond*time.Duration(timeoutMS), parallelism)

		records, err := scanner.Scan(context.Background(), args[0], minPort, maxPort)
		if err != nil {
			emit(map[string]string{"error": err.Error()})
			os.Exit(1)
		}

		emit(records)
	},
}

func emit(v interface{}) {
	out, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

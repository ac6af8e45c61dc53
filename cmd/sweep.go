package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/netscan-dev/netscan/netutil"
	"github.com/netscan-dev/netscan/scan"
)

var sweepTimeoutMS = int(scan.DefaultSweepTimeout / time.Millisecond)
var sweepWorkers = scan.DefaultSweepWorkers
var noResolve bool

func init() {
	sweepCmd.Flags().IntVar(&sweepTimeoutMS, "host-timeout-ms", sweepTimeoutMS, "Per-probe timeout in MS for each host check")
	sweepCmd.Flags().IntVar(&sweepWorkers, "hosts", sweepWorkers, "Maximum hosts investigated at once")
	sweepCmd.Flags().BoolVar(&noResolve, "no-resolve", noResolve, "Skip reverse DNS and ARP lookups on discovered hosts")
	rootCmd.AddCommand(sweepCmd)
}

var sweepCmd = &cobra.Command{
	Use:     "sweep [prefix]",
	Aliases: []string{"scan"},
	Short:   "Sweep a network range for live hosts",
	Long: `Probes every address in the range against a handful of commonly open TCP
ports and lists the hosts that answered. Accepts a bare three-octet prefix
like 192.168.1 or CIDR notation.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		prefix := args[0]

		sweeper, err := scan.NewHostSweeper(scan.Config{
			Timeout: time.Millisecond * time.Duration(sweepTimeoutMS),
			Workers: sweepWorkers,
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Printf("\nSweeping %s...\n\n", prefix)

		startTime := time.Now()

		result, err := sweeper.Sweep(cmd.Context(), prefix)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if !noResolve {
			result.EnrichNames(netutil.ReverseLookup)
			result.EnrichDevices()
		}

		fmt.Println(result.String())
		fmt.Printf("Sweep complete in %s.\n", time.Since(startTime).String())
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netscan-dev/netscan/netutil"
)

var maxHops = 30

func init() {
	traceCmd.Flags().IntVarP(&maxHops, "max-hops", "m", maxHops, "Maximum number of hops to trace")
	rootCmd.AddCommand(traceCmd)
}

var traceCmd = &cobra.Command{
	Use:   "trace [host]",
	Short: "Trace the route to a host using the system traceroute binary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		host := args[0]

		fmt.Printf("\nTracing route to %s...\n\n", host)

		output, err := netutil.Traceroute(cmd.Context(), host, maxHops)
		if output != "" {
			fmt.Println(output)
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

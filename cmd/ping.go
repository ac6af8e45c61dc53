package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netscan-dev/netscan/netutil"
)

var pingCount = 4

func init() {
	pingCmd.Flags().IntVarP(&pingCount, "count", "c", pingCount, "Number of echo requests to send")
	rootCmd.AddCommand(pingCmd)
}

var pingCmd = &cobra.Command{
	Use:   "ping [host]",
	Short: "Ping a host using the system ping binary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		host := args[0]

		fmt.Printf("\nPinging %s...\n\n", host)

		reachable, output, err := netutil.Ping(cmd.Context(), host, pingCount)
		if output != "" {
			fmt.Println(output)
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if reachable {
			fmt.Printf("%s is reachable\n", host)
		} else {
			fmt.Printf("%s is unreachable\n", host)
		}
	},
}

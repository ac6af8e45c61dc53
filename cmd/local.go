package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netscan-dev/netscan/netutil"
)

func init() {
	rootCmd.AddCommand(localCmd)
}

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Show the local hostname and IP address",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Hostname: %s\n", netutil.Hostname())
		fmt.Printf("Local IP: %s\n", netutil.LocalIP())
	},
}

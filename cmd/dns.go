package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netscan-dev/netscan/netutil"
)

func init() {
	rootCmd.AddCommand(dnsCmd)
	rootCmd.AddCommand(rdnsCmd)
}

var dnsCmd = &cobra.Command{
	Use:   "dns [host]",
	Short: "Resolve a hostname to an IPv4 address",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		ip, err := netutil.ResolveIPv4(args[0])
		if err != nil {
			fmt.Printf("Could not resolve %s: %s\n", args[0], err)
			os.Exit(1)
		}

		fmt.Printf("%s resolves to %s\n", args[0], ip)
	},
}

var rdnsCmd = &cobra.Command{
	Use:   "rdns [ip]",
	Short: "Reverse-resolve an IP address to a hostname",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		name, err := netutil.ReverseLookup(args[0])
		if err != nil {
			fmt.Printf("Could not reverse resolve %s: %s\n", args[0], err)
			os.Exit(1)
		}

		fmt.Printf("%s resolves to %s\n", args[0], name)
	},
}

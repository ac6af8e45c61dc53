package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/netscan-dev/netscan/scan"
)

func init() {
	rootCmd.AddCommand(portCmd)
}

var portCmd = &cobra.Command{
	Use:   "port [host] [port]",
	Short: "Check whether a single TCP port is open",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {

		host := args[0]

		port, err := strconv.Atoi(args[1])
		if err != nil || port < 0 || port > 65535 {
			fmt.Printf("Invalid port number: '%s'\n", args[1])
			os.Exit(1)
		}

		fmt.Printf("\nChecking %s:%d...\n", host, port)

		state := scan.Probe(cmd.Context(), host, port, time.Millisecond*time.Duration(timeoutMS))

		if state == scan.PortOpen {
			service := scan.DescribePort(port)
			if service == "" {
				service = "unknown"
			}
			fmt.Printf("Port %d is OPEN (%s)\n", port, service)
		} else {
			fmt.Printf("Port %d is CLOSED or FILTERED\n", port)
		}
	},
}

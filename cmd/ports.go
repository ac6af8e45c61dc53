package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/netscan-dev/netscan/scan"
)

var portSelection string

func init() {
	portsCmd.Flags().StringVarP(&portSelection, "ports", "p", portSelection, "Ports to scan. Comma separated, can use hyphens e.g. 22,80,443,8080-8090. Defaults to well-known ports.")
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports [host]",
	Short: "Scan multiple TCP ports on a host",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		target := args[0]

		ports, err := getPorts(portSelection)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		scanner, err := scan.NewPortScanner(scanConfig())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Printf("\nScanning %d port(s) on %s...\n\n", len(ports), target)

		startTime := time.Now()

		result, err := scanner.Scan(cmd.Context(), target, ports)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Println(result.String())
		fmt.Printf("Scan complete in %s.\n", time.Since(startTime).String())
	},
}

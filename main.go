package main

import "github.com/netscan-dev/netscan/cmd"

func main() {
	cmd.Execute()
}

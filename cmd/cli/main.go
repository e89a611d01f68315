package main

import "github.com/bytwise/mitte-amd64/cmd/cli/cmd"

func main() {
	cmd.Execute()
}

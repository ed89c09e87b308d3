// Command conncomp-bench-cli runs the connected-components benchmark
// harness from the command line.
package main

import "github.com/conncomp-bench/cmd/cli/cmd"

func main() {
	cmd.Execute()
}

// Command pcsched is a thin CLI front-end over the branch-and-bound solver:
// it parses a Patterson activity network, runs the search, and prints the
// makespan. It carries no retry logic, no progress reporting, and no
// persistence beyond what cobra/viper give it for free.
package main

import "github.com/arvonhall/pcsched/cmd/pcsched/cmd"

func main() {
	cmd.Execute()
}

// Command routecheck runs the routing heuristics offline and prints their
// verdicts as JSON, for auditing lexicons and thresholds without a server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

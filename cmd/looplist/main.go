// Command looplist hosts a looping list in the terminal and simulates
// gestures against it headlessly.
package main

import (
	"os"

	"github.com/go-drift/looplist/cmd/looplist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command reflow is the Reflow project tool.
package main

import (
	"os"

	"github.com/go-reflow/reflow/cmd/reflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

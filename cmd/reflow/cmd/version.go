package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  `Show the Reflow CLI version and build time.`,
		Usage: "reflow version",
		Run:   runVersion,
	})
}

func runVersion(args []string) error {
	fmt.Printf("Reflow CLI version %s (built %s)\n", Version, BuildTime)
	return nil
}

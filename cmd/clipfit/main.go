package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/clipfit/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clipfit",
	Short: "Enlarge the male clip tabs of 3D printable tiles",
	Long: `clipfit finds the male clip tabs of binary STL tiles by their wall thickness
and enlarges the geometry around them, so that printed tabs fit snugly.
The fixed copy is written next to the input with the changed facets colored red.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

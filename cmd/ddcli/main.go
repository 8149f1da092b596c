package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "ddcli",
	Short:   "Delta debugging command-line reducer",
	Long:    `ddcli drives a reduction algorithm against a file and an external oracle command, shrinking the file to the smallest input that still reproduces a failure.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: none, built-in defaults apply)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(reduceCmd)
}

// Commands are defined in separate files:
// - reduceCmd in reduce.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

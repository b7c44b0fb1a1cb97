package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/securebyte/securebyte/internal/analyzer"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("SecureByte Analyzer\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Detected Provider: %s\n", analyzer.DetectProvider())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

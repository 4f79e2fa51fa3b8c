package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the build version, set via -ldflags at build time.
var Version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display zewif-migrate version",
	Long:  `Display zewif-migrate version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("zewif-migrate version", Version)
	},
}

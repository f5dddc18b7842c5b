package cmd

import (
	"fmt"

	maquina "github.com/RPRicardo/maquina-refrescos"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("maquina %s (built %s)\n", maquina.Version, maquina.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"fmt"

	maquina "github.com/RPRicardo/maquina-refrescos"
	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the canned example strings",
	Run: func(_ *cobra.Command, _ []string) {
		printExamples()
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

func printExamples() {
	for i, ex := range maquina.Examples {
		fmt.Printf("%d. %-30s %s\n", i+1, ex.Input, ex.Note)
	}
}

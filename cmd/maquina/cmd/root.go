package cmd

import (
	"fmt"

	maquina "github.com/RPRicardo/maquina-refrescos"
	"github.com/spf13/cobra"
)

var format string

var rootCmd = &cobra.Command{
	Use:   "maquina",
	Short: "Semantic analyzer for the vending-machine string language",
	Long: `maquina validates strings of the vending-machine token language and
prints the decorated derivation tree: running balance, validity, nesting
depth and purchase count for every node.

Tokens:
  $    insert a coin
  R    buy a drink (costs 3 coins, at most 3 per block)
  <    return a coin
  { }  nested block with its own isolated balance (3 levels max)`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "visual",
		"tree format: visual or indented")
}

// renderTree applies the selected format to a decorated tree.
func renderTree(tree *maquina.Node, format string) (string, error) {
	switch format {
	case "visual":
		return maquina.RenderVisual(tree), nil
	case "indented":
		return maquina.RenderIndented(tree), nil
	default:
		return "", fmt.Errorf("unknown format %q (want visual or indented)", format)
	}
}

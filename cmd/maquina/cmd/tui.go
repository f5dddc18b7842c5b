package cmd

import (
	"fmt"
	"os"

	"github.com/RPRicardo/maquina-refrescos/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal UI",
	Long: `Starts the interactive terminal interface: type a string, get the
decorated derivation tree and verdict.

Keys:
  Enter    Analyze the input
  Tab      Toggle visual/indented tree format
  Ctrl+E   Cycle through the canned examples
  Ctrl+C   Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		return err
	}
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	maquina "github.com/RPRicardo/maquina-refrescos"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verdictOK  = color.New(color.FgGreen, color.Bold)
	verdictBad = color.New(color.FgRed, color.Bold)
)

var checkCmd = &cobra.Command{
	Use:   "check <string> [<string> ...]",
	Short: "Analyze strings and print their decorated derivation trees",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	invalid := 0
	for i, input := range args {
		if i > 0 {
			fmt.Println()
		}
		if !printAnalysis(input) {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d string(s) invalid", invalid, len(args))
	}
	return nil
}

// printAnalysis analyzes one input and prints the full report. Returns
// the verdict.
func printAnalysis(input string) bool {
	fmt.Printf("ANALYSIS OF: %s\n", strings.TrimSpace(input))
	fmt.Println(strings.Repeat("=", 60))

	// A syntax failure gets the caret snippet instead of a tree.
	if serr := maquina.Validate(input); serr != nil {
		fmt.Println(maquina.WrapErrorWithSource(serr, strings.TrimSpace(input)).Error())
		verdictBad.Println("✗ INVALID STRING")
		return false
	}

	res := maquina.Analyze(input)
	out, err := renderTree(res.Tree, format)
	if err != nil {
		// Bad --format value; report once and fall back.
		fmt.Println(err)
		out = maquina.RenderVisual(res.Tree)
	}
	fmt.Println("DECORATED DERIVATION TREE:")
	fmt.Println(strings.Repeat("-", 35))
	fmt.Println(out)
	fmt.Println()

	if len(res.Errors) > 0 {
		fmt.Println("ERRORS FOUND:")
		for i, e := range res.Errors {
			fmt.Printf("%d. %s\n", i+1, e)
		}
		fmt.Println()
	}

	if res.Valid {
		verdictOK.Println("✓ VALID STRING")
	} else {
		verdictBad.Println("✗ INVALID STRING")
	}
	return res.Valid
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	maquina "github.com/RPRicardo/maquina-refrescos"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	batchConfigPath string
	batchOutput     string
	batchVerbose    bool
)

// batchConfig mirrors the optional TOML config file. Flags that were set
// explicitly win over file values.
type batchConfig struct {
	Format  string `toml:"format"`
	Output  string `toml:"output"`
	Verbose bool   `toml:"verbose"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze a file of strings, one per line, and write a report",
	Long: `Reads a text file with one input string per line (blank lines are
skipped), analyzes each, and writes the decorated trees and verdicts to
<file>_resultado.txt (or the path given with --output).`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "TOML config file")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "report path (default <file>_resultado.txt)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "log every analyzed line")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := batchConfig{Format: format, Output: batchOutput, Verbose: batchVerbose}
	if batchConfigPath != "" {
		if _, err := toml.DecodeFile(batchConfigPath, &cfg); err != nil {
			return fmt.Errorf("cannot read config %s: %w", batchConfigPath, err)
		}
		// Explicit flags override the file.
		if cmd.Flags().Changed("format") {
			cfg.Format = format
		}
		if cmd.Flags().Changed("output") {
			cfg.Output = batchOutput
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = batchVerbose
		}
	}

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	inPath := args[0]
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", inPath, err)
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, ".txt") + "_resultado.txt"
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", outPath, err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	defer w.Flush()

	fmt.Fprintln(w, "=== SEMANTIC ANALYSIS — VENDING MACHINE ===")
	fmt.Fprintf(w, "Format: %s\n\n", cfg.Format)

	total, validCount := 0, 0
	for _, line := range strings.Split(string(data), "\n") {
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		total++

		fmt.Fprintf(w, "STRING %d: %s\n", total, input)
		fmt.Fprintln(w, strings.Repeat("=", 60))

		res := maquina.Analyze(input)
		if res.Tree != nil {
			tree, rerr := renderTree(res.Tree, cfg.Format)
			if rerr != nil {
				return rerr
			}
			fmt.Fprintln(w, "DECORATED DERIVATION TREE:")
			fmt.Fprintln(w, strings.Repeat("-", 35))
			fmt.Fprintln(w, tree)
			fmt.Fprintln(w)
			if len(res.Errors) > 0 {
				fmt.Fprintln(w, "ERRORS FOUND:")
				for i, e := range res.Errors {
					fmt.Fprintf(w, "%d. %s\n", i+1, e)
				}
				fmt.Fprintln(w)
			}
		} else {
			fmt.Fprintln(w, "ERROR: derivation tree could not be built")
			for _, e := range res.Errors {
				fmt.Fprintf(w, "- %s\n", e)
			}
		}

		verdict := "INVALID"
		if res.Valid {
			verdict = "VALID"
			validCount++
		}
		fmt.Fprintf(w, "RESULT: %s\n", verdict)
		fmt.Fprintln(w, "\n"+strings.Repeat("=", 60))
		fmt.Fprintln(w)

		log.WithFields(logrus.Fields{
			"line":  total,
			"valid": res.Valid,
		}).Debug("analyzed")
	}

	log.WithFields(logrus.Fields{
		"strings": total,
		"valid":   validCount,
		"invalid": total - validCount,
		"report":  outPath,
	}).Info("batch analysis finished")
	return nil
}

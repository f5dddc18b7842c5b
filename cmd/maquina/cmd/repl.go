package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	maquina "github.com/RPRicardo/maquina-refrescos"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".maquina_history"
	prompt      = "maquina> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt: one string per line, decorated tree per string",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func replBanner() string {
	return fmt.Sprintf("maquina %s — vending-machine string analyzer\n"+
		"Type a string like { $ $ $ R }. Ctrl+D or :quit exits, :help lists commands.",
		maquina.Version)
}

const replHelp = `REPL commands:
  :help              Show this help
  :format <name>     Switch tree format (visual or indented)
  :examples          List the canned example strings
  :quit              Exit the REPL`

func runRepl(_ *cobra.Command, _ []string) error {
	fmt.Println(replBanner())

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, ":") {
			if quit := replCommand(input); quit {
				return nil
			}
			continue
		}

		printAnalysis(input)
		ln.AppendHistory(input)
	}
}

// replCommand handles one ":" command; reports whether to exit.
func replCommand(input string) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Println(replHelp)
	case ":format":
		if len(fields) != 2 || (fields[1] != "visual" && fields[1] != "indented") {
			fmt.Println("usage: :format visual|indented")
			break
		}
		format = fields[1]
		fmt.Printf("format set to %s\n", format)
	case ":examples":
		printExamples()
	default:
		fmt.Println("unknown command. Type :help for the list.")
	}
	return false
}

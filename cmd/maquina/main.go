package main

import (
	"os"

	"github.com/RPRicardo/maquina-refrescos/cmd/maquina/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

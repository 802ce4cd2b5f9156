package main

import (
	"github.com/joho/godotenv"

	"github.com/andortizg/QSL-Generator/cmd"
)

func main() {
	// An optional .env next to the binary can set QSLGEN_PDFLATEX
	// without touching the shell environment
	_ = godotenv.Load()

	cmd.Execute()
}

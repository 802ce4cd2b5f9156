package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andortizg/QSL-Generator/internal/latex"
	"github.com/andortizg/QSL-Generator/internal/model"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the generated LaTeX source",
	Long: `Generate the card source from the saved station settings and an empty
contact, and print it without running pdflatex. Useful for checking the
layout or compiling by hand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd.OutOrStdout())
	},
}

func runPreview(w io.Writer) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	station, err := loadStation(store)
	if err != nil {
		return err
	}

	source, err := latex.Render(model.NewCard(station))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(w, source)

	return nil
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

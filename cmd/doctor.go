package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andortizg/QSL-Generator/internal/encoding"
	"github.com/andortizg/QSL-Generator/internal/render"
)

var doctorAssetDir string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that everything needed to render cards is in place",
	Long: `Verify the rendering environment: pdflatex on PATH, the settings file
readable, and the card images present. Exits non-zero when something
needs fixing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.OutOrStdout())
	},
}

func runDoctor(w io.Writer) error {
	healthy := true

	client := newRenderClient()
	if path, err := client.LookPath(); err != nil {
		healthy = false
		_, _ = fmt.Fprintf(w, "✗ pdflatex: %v\n", err)
		_, _ = fmt.Fprintln(w, render.InstallHint)
	} else {
		_, _ = fmt.Fprintf(w, "✓ pdflatex: %s\n", path)
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	station, loadErr := store.Load()
	switch {
	case !store.Exists():
		_, _ = fmt.Fprintf(w, "- settings: no file at %s, the defaults apply\n", store.Path)
	case loadErr != nil:
		healthy = false
		_, _ = fmt.Fprintf(w, "✗ settings: %v\n", loadErr)
	default:
		_, _ = fmt.Fprintf(w, "✓ settings: %s\n", store.Path)
	}

	if doctorAssetDir != "" && !encoding.DirExists(doctorAssetDir) {
		healthy = false
		_, _ = fmt.Fprintf(w, "✗ assets: directory %s not found\n", doctorAssetDir)
	}

	for _, img := range station.Images() {
		path := img
		if doctorAssetDir != "" {
			path = filepath.Join(doctorAssetDir, img)
		}

		if encoding.FileExists(path) {
			_, _ = fmt.Fprintf(w, "✓ image: %s\n", path)
		} else {
			healthy = false
			_, _ = fmt.Fprintf(w, "✗ image: %s not found\n", path)
		}
	}

	if !healthy {
		return fmt.Errorf("environment is not ready")
	}

	_, _ = fmt.Fprintln(w, "All checks passed.")

	return nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&doctorAssetDir, "assets-dir", "", "Directory holding the card images (default current directory)")
}

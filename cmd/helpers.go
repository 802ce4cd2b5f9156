package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andortizg/QSL-Generator/internal/model"
	"github.com/andortizg/QSL-Generator/internal/render"
	"github.com/andortizg/QSL-Generator/internal/settings"
)

// openStore honors --settings and falls back to the fixed path in the
// user's home directory.
func openStore() (*settings.Store, error) {
	if settingsFlag == "" {
		store, err := settings.DefaultStore()
		if err != nil {
			return nil, err
		}

		store.Log = log

		return store, nil
	}

	path, err := expandPath(settingsFlag)
	if err != nil {
		return nil, err
	}

	store := settings.NewStore(path)
	store.Log = log

	return store, nil
}

// loadStation reads the saved station. A corrupt settings file is
// reported as a warning and the defaults are used; the generator keeps
// working either way.
func loadStation(store *settings.Store) (model.Station, error) {
	station, err := store.Load()
	if err != nil {
		if errors.Is(err, settings.ErrCorrupt) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: %v; continuing with defaults\n", err)
			return station, nil
		}

		return model.Station{}, err
	}

	return station, nil
}

// newRenderClient honors --pdflatex ahead of the environment override.
func newRenderClient() *render.Client {
	client := render.NewClient()
	if pdflatexFlag != "" {
		client.Tool = pdflatexFlag
	}

	client.Log = log

	return client
}

// reportRenderError prints the useful parts of a failed render before
// the error itself goes back to cobra.
func reportRenderError(err error) {
	var toolErr *render.ToolMissingError
	if errors.As(err, &toolErr) {
		_, _ = fmt.Fprintln(os.Stderr, render.InstallHint)
		return
	}

	var compileErr *render.CompileError
	if errors.As(err, &compileErr) {
		for _, line := range compileErr.Diagnostics {
			_, _ = fmt.Fprintln(os.Stderr, line)
		}

		if compileErr.Workdir != "" {
			_, _ = fmt.Fprintf(os.Stderr, "Build directory kept at %s\n", compileErr.Workdir)
		}

		return
	}

	var assetErr *render.MissingAssetError
	if errors.As(err, &assetErr) {
		for _, line := range assetErr.Diagnostics {
			_, _ = fmt.Fprintln(os.Stderr, line)
		}

		_, _ = fmt.Fprintln(os.Stderr, "Place the image files in the directory you run from, or pass --assets-dir.")
	}
}

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Reset settings? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	// Make path absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// printEmptyResult prints a "no results" message with a create hint
func printEmptyResult(resourceType, createCmd string) {
	_, _ = fmt.Fprintf(os.Stdout, "No %s configured.\n", resourceType)
	_, _ = fmt.Fprintf(os.Stdout, "Create one with: %s\n", createCmd)
}

// centerString centers a string in a field of given width
func centerString(s string, width int) string {
	if len(s) >= width {
		return s
	}

	padding := (width - len(s)) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-len(s)-padding, "")
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

// printBoxHeader prints the top border of an info box with a title
func printBoxHeader(title string) {
	_, _ = fmt.Fprintln(os.Stdout, "╔══════════════════════════════════════════════════════════════╗")
	_, _ = fmt.Fprintf(os.Stdout, "║%s║\n", centerString(title, boxWidth-2))
	_, _ = fmt.Fprintln(os.Stdout, "╠══════════════════════════════════════════════════════════════╣")
}

// printBoxLine prints a line inside an info box with label and value
func printBoxLine(label, value string) {
	content := fmt.Sprintf("  %s: %s", label, value)

	padding := boxWidth - 2 - len(content)
	if padding < 0 {
		padding = 0
		content = content[:boxWidth-2]
	}

	_, _ = fmt.Fprintf(os.Stdout, "║%s%*s║\n", content, padding, "")
}

// printBoxFooter prints the bottom border of an info box
func printBoxFooter() {
	_, _ = fmt.Fprintln(os.Stdout, "╚══════════════════════════════════════════════════════════════╝")
}

package render

import (
	"fmt"
	"strings"
)

// InstallHint is printed when pdflatex cannot be found so the user
// knows how to get a working LaTeX toolchain.
const InstallHint = `pdflatex was not found on this system.

Install a LaTeX distribution, for example:
  Debian/Ubuntu: sudo apt-get install texlive-latex-base texlive-latex-extra
  Fedora:        sudo dnf install texlive-scheme-basic texlive-collection-latexextra
  macOS:         brew install --cask mactex-no-gui
  Windows:       install MiKTeX from https://miktex.org`

// ToolMissingError reports that the pdflatex binary could not be
// resolved, either by PATH lookup or at an explicit location.
type ToolMissingError struct {
	Tool string
	err  error
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("%s not found in PATH", e.Tool)
}

func (e *ToolMissingError) Unwrap() error {
	return e.err
}

// MissingAssetError reports a failed compile where one or more image
// files referenced by the document could not be staged into the build
// directory. The absent files are the most likely cause of the
// failure, so they are surfaced ahead of the raw compiler output.
type MissingAssetError struct {
	Files       []string
	Diagnostics []string
	Workdir     string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("pdflatex failed, image files not found: %s", strings.Join(e.Files, ", "))
}

// CompileError reports a pdflatex run that produced no PDF. Diagnostics
// holds the error lines extracted from the compiler log when one was
// written; Output holds the raw combined output otherwise. Workdir is
// set only when the build directory was retained.
type CompileError struct {
	ExitCode    int
	Diagnostics []string
	Output      string
	Workdir     string
	err         error
}

func (e *CompileError) Error() string {
	if len(e.Diagnostics) > 0 {
		return fmt.Sprintf("pdflatex failed: %s", e.Diagnostics[0])
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		return fmt.Sprintf("pdflatex failed: %s", lastLine(out))
	}
	if e.err != nil {
		return fmt.Sprintf("pdflatex failed: %v", e.err)
	}
	return "pdflatex failed"
}

func (e *CompileError) Unwrap() error {
	return e.err
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

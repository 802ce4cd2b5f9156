package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/andortizg/QSL-Generator/internal/encoding"
	"github.com/andortizg/QSL-Generator/internal/logging"
)

const (
	defaultTool    = "pdflatex"
	defaultTimeout = 30 * time.Second

	texFileName = "qsl_card.tex"
	pdfFileName = "qsl_card.pdf"
	logFileName = "qsl_card.log"

	maxDiagnostics = 10
)

// EnvTool names the environment variable that overrides the pdflatex
// binary used for compilation.
const EnvTool = "QSLGEN_PDFLATEX"

// Client invokes pdflatex to compile a LaTeX source into a PDF. Each
// render runs inside a fresh temporary build directory which is
// removed when the run finishes, unless the request asks to keep it.
type Client struct {
	// Tool is the pdflatex binary, either a bare name resolved via
	// PATH or an explicit path.
	Tool string

	// Timeout bounds a single compiler run. Zero means 30 seconds.
	Timeout time.Duration

	// OnStatus, when set, receives lifecycle transitions. Calls
	// happen on the goroutine executing RenderPDF.
	OnStatus func(Status)

	Log zerolog.Logger
}

// NewClient returns a Client using the binary named by the
// QSLGEN_PDFLATEX environment variable or, when unset, pdflatex from
// PATH.
func NewClient() *Client {
	tool := defaultTool
	if env := os.Getenv(EnvTool); env != "" {
		tool = env
	}
	return &Client{
		Tool:    tool,
		Timeout: defaultTimeout,
		Log:     logging.Nop(),
	}
}

// LookPath resolves the configured tool to an executable path.
// Absolute paths are checked directly; bare names go through PATH.
func (c *Client) LookPath() (string, error) {
	tool := c.Tool
	if tool == "" {
		tool = defaultTool
	}
	if filepath.IsAbs(tool) {
		if _, err := os.Stat(tool); err != nil {
			return "", &ToolMissingError{Tool: tool, err: err}
		}
		return tool, nil
	}
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", &ToolMissingError{Tool: tool, err: err}
	}
	return path, nil
}

// Request describes one card to compile.
type Request struct {
	// Source is the complete LaTeX document.
	Source string

	// Assets lists image filenames the document references. Each is
	// copied from AssetDir into the build directory before the
	// compiler runs. Absent files are recorded and the run proceeds,
	// since pdflatex may still manage without them.
	Assets []string

	// AssetDir is the directory holding the assets. Empty means the
	// current directory.
	AssetDir string

	// OutputPath is where the finished PDF is placed. Empty means
	// qsl_card.pdf in the current directory.
	OutputPath string

	// KeepWorkdir retains the build directory for debugging.
	KeepWorkdir bool

	// Timeout overrides the client timeout for this request.
	Timeout time.Duration
}

// Result reports a completed render.
type Result struct {
	Status        Status
	JobID         string
	PDFPath       string
	Workdir       string
	MissingAssets []string
	Duration      time.Duration
}

// RenderPDF compiles the request source and places the PDF at the
// requested output path. Success is judged solely by the presence of
// the output PDF: pdflatex in nonstopmode can exit non-zero for
// complaints it recovered from.
func (c *Client) RenderPDF(ctx context.Context, req Request) (*Result, error) {
	c.setStatus(StatusRendering)
	res, err := c.render(ctx, req)
	if err != nil {
		c.setStatus(StatusFailed)
		return nil, err
	}
	c.setStatus(StatusSucceeded)
	return res, nil
}

func (c *Client) render(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	tool, err := c.LookPath()
	if err != nil {
		return nil, err
	}

	jobID := shortID()
	workdir, err := os.MkdirTemp("", "qslgen-"+jobID+"-")
	if err != nil {
		return nil, fmt.Errorf("failed to create build directory: %w", err)
	}
	keep := req.KeepWorkdir
	defer func() {
		if !keep {
			_ = os.RemoveAll(workdir)
		}
	}()

	log := c.Log.With().Str("job", jobID).Logger()
	log.Debug().Str("workdir", workdir).Str("tool", tool).Msg("starting render")

	if err := encoding.WriteFile(filepath.Join(workdir, texFileName), []byte(req.Source), 0644); err != nil {
		return nil, err
	}

	missing := stageAssets(log, workdir, req)

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.Timeout
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, tool, "-interaction=nonstopmode", texFileName)
	cmd.Dir = workdir
	output, runErr := cmd.CombinedOutput()

	if !encoding.FileExists(filepath.Join(workdir, pdfFileName)) {
		keptDir := ""
		if keep {
			keptDir = workdir
		}
		return nil, classifyFailure(runCtx, workdir, keptDir, timeout, output, runErr, missing)
	}
	if runErr != nil {
		log.Warn().Err(runErr).Msg("pdflatex exited non-zero but produced a PDF")
	}

	outPath := req.OutputPath
	if outPath == "" {
		outPath = pdfFileName
	}
	if err := encoding.CopyFile(filepath.Join(workdir, pdfFileName), outPath); err != nil {
		return nil, err
	}

	res := &Result{
		Status:        StatusSucceeded,
		JobID:         jobID,
		PDFPath:       outPath,
		MissingAssets: missing,
		Duration:      time.Since(start),
	}
	if keep {
		res.Workdir = workdir
	}
	log.Debug().Dur("took", res.Duration).Str("pdf", outPath).Msg("render finished")
	return res, nil
}

func (c *Client) setStatus(s Status) {
	if c.OnStatus != nil {
		c.OnStatus(s)
	}
}

// stageAssets copies the request's image files into the build
// directory. Missing files are not fatal here; they are returned so a
// failed compile can name them.
func stageAssets(log zerolog.Logger, workdir string, req Request) []string {
	var missing []string
	seen := make(map[string]struct{})
	for _, name := range req.Assets {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		src := name
		if req.AssetDir != "" {
			src = filepath.Join(req.AssetDir, name)
		}
		if !encoding.FileExists(src) {
			log.Warn().Str("image", name).Msg("image file not found, card may not compile")
			missing = append(missing, name)
			continue
		}
		if err := encoding.CopyFile(src, filepath.Join(workdir, name)); err != nil {
			log.Warn().Err(err).Str("image", name).Msg("failed to stage image")
			missing = append(missing, name)
		}
	}
	return missing
}

func classifyFailure(ctx context.Context, workdir, keptDir string, timeout time.Duration, output []byte, runErr error, missing []string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("pdflatex timed out after %s: %w", timeout, context.DeadlineExceeded)
	}
	diags := readDiagnostics(filepath.Join(workdir, logFileName))
	if len(missing) > 0 {
		return &MissingAssetError{Files: missing, Diagnostics: diags, Workdir: keptDir}
	}
	out := ""
	if len(diags) == 0 {
		out = string(output)
	}
	return &CompileError{
		ExitCode:    exitCode(runErr),
		Diagnostics: diags,
		Output:      out,
		Workdir:     keptDir,
		err:         runErr,
	}
}

// readDiagnostics pulls the error lines out of a pdflatex log: lines
// flagged with ! plus anything mentioning an error, capped so a
// run-away log cannot flood the report.
func readDiagnostics(logPath string) []string {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return nil
	}
	var diags []string
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.Contains(line, "!") && !strings.Contains(line, "Error") && !strings.Contains(line, "error") {
			continue
		}
		diags = append(diags, strings.TrimRight(line, "\r"))
		if len(diags) >= maxDiagnostics {
			break
		}
	}
	return diags
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func shortID() string {
	return uuid.NewString()[:8]
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andortizg/QSL-Generator/internal/application"
	"github.com/andortizg/QSL-Generator/internal/logging"
	"github.com/andortizg/QSL-Generator/internal/render"
)

var (
	verbose      bool
	settingsFlag string
	pdflatexFlag string

	log = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Generate printable amateur radio QSL cards",
	Long: `qslgen turns your saved station details and a QSO contact into a
printable QSL card: it fills a LaTeX card layout and compiles it to PDF
with pdflatex.

Station details (callsign, QTH, equipment, card images) persist in
~/.qsl_generator_settings.json and print on every card. Contact details
are entered per card and never stored.

Run 'qslgen' without arguments on a terminal to use the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.Console(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Interactive menu on a terminal, help otherwise
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return cmd.Help()
		}

		return runMenu()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "Settings file path (default ~/"+application.SettingsFileName+")")
	rootCmd.PersistentFlags().StringVar(&pdflatexFlag, "pdflatex", "", "pdflatex binary to use (overrides PATH and "+render.EnvTool+")")
}

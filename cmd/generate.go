package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/andortizg/QSL-Generator/internal/latex"
	"github.com/andortizg/QSL-Generator/internal/model"
	"github.com/andortizg/QSL-Generator/internal/render"
)

var (
	genContact = model.DefaultContact()

	genOutput      string
	genAssetDir    string
	genKeepWorkdir bool
	genTimeout     time.Duration
	genTexOnly     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a QSL card PDF from flags",
	Long: `Render one QSL card without the interactive forms. The saved station
settings fill the card; the contact comes entirely from flags.

The card images (background and logos) are looked up in the current
directory unless --assets-dir points elsewhere. Missing images are
reported but the compile is still attempted.

Without --output the PDF lands in the current directory as
qsl_<their-call>_<date>.pdf.`,
	Example: `  qslgen generate --their-call DL1ABC --date 28/11/2024 --time 18:30 \
      --band 20m --mode SSB --report 59
  qslgen generate --their-call DL1ABC --qth portable --portable-location "EA7/MA-001"
  qslgen generate --their-call DL1ABC --tex-only > card.tex`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		station, err := loadStation(store)
		if err != nil {
			return err
		}

		card := model.Card{Station: station, Contact: genContact}

		source, err := latex.Render(card)
		if err != nil {
			return err
		}

		if genTexOnly {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), source)
			return nil
		}

		out := genOutput
		if out == "" {
			out = render.OutputName(genContact)
		}

		client := newRenderClient()
		res, err := client.RenderPDF(cmd.Context(), render.Request{
			Source:      source,
			Assets:      station.Images(),
			AssetDir:    genAssetDir,
			OutputPath:  out,
			KeepWorkdir: genKeepWorkdir,
			Timeout:     genTimeout,
		})
		if err != nil {
			reportRenderError(err)
			return err
		}

		if len(res.MissingAssets) > 0 {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: image files not found: %s\n", strings.Join(res.MissingAssets, ", "))
		}

		fmt.Printf("PDF saved to %s\n", res.PDFPath)

		if res.Workdir != "" {
			fmt.Printf("Build directory kept at %s\n", res.Workdir)
		}

		return nil
	},
}

// addContactFlags binds every Contact field to a flag so the whole QSO
// can be described on the command line.
func addContactFlags(f *pflag.FlagSet, c *model.Contact) {
	f.StringVar(&c.Via, "via", "", "QSL route (manager callsign or bureau)")
	f.StringVar(&c.ToStation, "to-station", "", "Station the card is addressed to")
	f.StringVar(&c.TheirCall, "their-call", "", "Worked station callsign")
	f.StringVar(&c.Date, "date", "", "QSO date (DD/MM/YYYY)")
	f.StringVar(&c.Time, "time", "", "QSO time (UTC)")
	f.StringVar(&c.Band, "band", "", "Band, e.g. 20m")
	f.StringVar(&c.Mode, "mode", "", "Mode, e.g. SSB")
	f.StringVar(&c.Report, "report", "", "Signal report, e.g. 59")
	f.Var(&c.QTH, "qth", "QTH type: home or portable")
	f.StringVar(&c.PortableLocation, "portable-location", "", "Location when operating portable")
	f.Var(&c.QSL, "qsl-type", "Card type: qso or swl")
	f.Var(&c.Request, "qsl-request", "Return card: pse or tnx")
}

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	addContactFlags(f, &genContact)

	f.StringVarP(&genOutput, "output", "o", "", "Output PDF path (default qsl_<their-call>_<date>.pdf)")
	f.StringVar(&genAssetDir, "assets-dir", "", "Directory holding the card images (default current directory)")
	f.BoolVar(&genKeepWorkdir, "keep-workdir", false, "Keep the LaTeX build directory for debugging")
	f.DurationVar(&genTimeout, "timeout", 0, "pdflatex timeout (default 30s)")
	f.BoolVar(&genTexOnly, "tex-only", false, "Print the LaTeX source instead of compiling")
}

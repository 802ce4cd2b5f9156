package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andortizg/QSL-Generator/internal/cli"
	"github.com/andortizg/QSL-Generator/internal/latex"
	"github.com/andortizg/QSL-Generator/internal/model"
	"github.com/andortizg/QSL-Generator/internal/render"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill in a contact interactively and render a card",
	Long: `Open the contact form, then compile the card to PDF. The saved station
settings fill the rest of the card. Contact details apply to this card
only and are never stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runContactForm()
	},
}

func runContactForm() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the contact form needs an interactive terminal; use 'qslgen generate' with flags instead")
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	station, err := loadStation(store)
	if err != nil {
		return err
	}

	m := cli.NewContactModel()
	p := tea.NewProgram(&m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	contactModel := finalModel.(*cli.ContactModel)
	if !contactModel.Submitted {
		fmt.Println("Cancelled.")
		return nil
	}

	contact := contactModel.Contact()
	card := model.Card{Station: station, Contact: contact}

	source, err := latex.Render(card)
	if err != nil {
		return err
	}

	label := contact.TheirCall
	if label == "" {
		label = "your QSO"
	}

	req := render.Request{
		Source:     source,
		Assets:     station.Images(),
		OutputPath: render.OutputName(contact),
	}

	rm := cli.NewRenderModel(newRenderClient(), req, label)
	rp := tea.NewProgram(rm)

	finalRender, err := rp.Run()
	if err != nil {
		return err
	}

	renderModel := finalRender.(cli.RenderModel)
	if renderModel.Error() != nil {
		reportRenderError(renderModel.Error())
		return renderModel.Error()
	}

	if res := renderModel.Result(); res != nil && len(res.MissingAssets) > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: image files not found: %s\n", strings.Join(res.MissingAssets, ", "))
	}

	return nil
}

func init() {
	rootCmd.AddCommand(formCmd)
}

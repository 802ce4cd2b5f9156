package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andortizg/QSL-Generator/internal/cli"
)

// runMenu loops the interactive main menu until the user exits. Each
// choice reuses the matching command implementation, so the menu and
// the subcommands never drift apart.
func runMenu() error {
	for {
		m := cli.NewMainMenu()
		p := tea.NewProgram(m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		menuModel := finalModel.(cli.MainMenuModel)
		choice := menuModel.GetChoice()

		if choice == "" || choice == "exit" {
			fmt.Println("73!")
			return nil
		}

		if err := runMenuChoice(choice); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		fmt.Println("\nPress Enter to continue...")
		_, _ = fmt.Scanln()
	}
}

func runMenuChoice(choice string) error {
	switch choice {
	case "form":
		return runContactForm()
	case "station":
		return runStationForm()
	case "preview":
		return runPreview(os.Stdout)
	case "doctor":
		return runDoctor(os.Stdout)
	default:
		return fmt.Errorf("unknown menu action: %s", choice)
	}
}

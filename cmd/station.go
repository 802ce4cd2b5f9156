package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andortizg/QSL-Generator/internal/cli"
	"github.com/andortizg/QSL-Generator/internal/encoding"
	"github.com/andortizg/QSL-Generator/internal/model"
	"github.com/andortizg/QSL-Generator/internal/settings"
)

var (
	stationJSON  bool
	stationReset bool
)

var stationCmd = &cobra.Command{
	Use:   "station",
	Short: "Show the saved station settings",
	Long: `Show the station details printed on every card. Use 'station edit' to
change them interactively, --reset to restore the built-in defaults, or
--json for the effective settings as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		if stationReset {
			if !promptConfirm("Reset station settings to the built-in defaults? [y/N]: ") {
				fmt.Println("Cancelled.")
				return nil
			}

			if err := store.Save(model.DefaultStation()); err != nil {
				return err
			}

			fmt.Printf("Settings reset, saved to %s\n", store.Path)

			return nil
		}

		station, err := loadStation(store)
		if err != nil {
			return err
		}

		if stationJSON {
			data, err := encoding.ToJSONIndent(station)
			if err != nil {
				return err
			}

			fmt.Println(string(data))

			return nil
		}

		if !store.Exists() {
			printEmptyResult("station settings", "qslgen station edit")
			fmt.Println("\nShowing the built-in defaults:")
		}

		printStation(station)

		return nil
	},
}

var stationEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the station settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStationForm()
	},
}

func runStationForm() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("editing station settings needs an interactive terminal")
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	m, err := cli.NewStationModel(store)
	if err != nil {
		if !errors.Is(err, settings.ErrCorrupt) {
			return err
		}

		// A corrupt file is recoverable: the form starts from defaults
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v; starting from defaults\n", err)
	}

	p := tea.NewProgram(&m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	stationModel := finalModel.(*cli.StationModel)
	if stationModel.Err != nil {
		return stationModel.Err
	}

	if stationModel.Saved {
		log.Debug().Str("path", store.Path).Msg("station settings updated")
	}

	return nil
}

func printStation(station model.Station) {
	printBoxHeader("Station Settings")
	printBoxLine("Callsign", station.Callsign)
	printBoxLine("Operator", station.OperatorName)
	printBoxLine("QTH", station.QTHCity)
	printBoxLine("State/Province", station.QTHState)
	printBoxLine("Country", station.Country)
	printBoxLine("Grid", station.Grid)
	printBoxLine("CQ Zone", station.CQZone)
	printBoxLine("ITU Zone", station.ITUZone)
	printBoxLine("Email", station.Email)
	printBoxLine("QRZ", station.QRZURL)
	printBoxLine("Transceiver", station.Transceiver)
	printBoxLine("Power", station.Power)
	printBoxLine("Antenna", station.Antenna)
	printBoxLine("Satellite", station.Satellite)
	printBoxLine("Background", station.BackgroundImage)
	printBoxLine("Logo 1", fmt.Sprintf("%s (scale %s)", station.Logo1, station.Logo1Scale))
	printBoxLine("Logo 2", fmt.Sprintf("%s (scale %s)", station.Logo2, station.Logo2Scale))
	printBoxLine("Logo 3", fmt.Sprintf("%s (scale %s)", station.Logo3, station.Logo3Scale))
	printBoxFooter()
}

func init() {
	rootCmd.AddCommand(stationCmd)
	stationCmd.AddCommand(stationEditCmd)
	stationCmd.Flags().BoolVar(&stationJSON, "json", false, "Print the settings as JSON")
	stationCmd.Flags().BoolVarP(&stationReset, "reset", "r", false, "Reset settings to the built-in defaults")
}

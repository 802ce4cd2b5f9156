package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andortizg/QSL-Generator/internal/model"
	"github.com/andortizg/QSL-Generator/internal/settings"
)

const fmtField = " %s %s\n"

var (
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle   = focusedStyle
	noStyle       = lipgloss.NewStyle()
	helpStyleForm = blurredStyle
	labelStyle    = blurredStyle.Width(24)

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Submit"))
)

// stationField binds one form row to a Station struct field.
type stationField struct {
	label       string
	placeholder string
	limit       int
	value       func(*model.Station) *string
}

var stationFields = []stationField{
	{"Callsign:", "EA7HQL", 16, func(s *model.Station) *string { return &s.Callsign }},
	{"Operator Name:", "", 64, func(s *model.Station) *string { return &s.OperatorName }},
	{"QTH (City):", "", 64, func(s *model.Station) *string { return &s.QTHCity }},
	{"QTH (State/Province):", "", 64, func(s *model.Station) *string { return &s.QTHState }},
	{"Country:", "", 64, func(s *model.Station) *string { return &s.Country }},
	{"Grid Locator:", "IM76SP", 10, func(s *model.Station) *string { return &s.Grid }},
	{"CQ Zone:", "14", 4, func(s *model.Station) *string { return &s.CQZone }},
	{"ITU Zone:", "37", 4, func(s *model.Station) *string { return &s.ITUZone }},
	{"Email:", "", 64, func(s *model.Station) *string { return &s.Email }},
	{"QRZ URL:", "https://www.qrz.com", 128, func(s *model.Station) *string { return &s.QRZURL }},
	{"Transceiver:", "e.g. IC-7300", 64, func(s *model.Station) *string { return &s.Transceiver }},
	{"Power (Watts):", "e.g. 100W", 16, func(s *model.Station) *string { return &s.Power }},
	{"Antenna:", "e.g. dipole", 64, func(s *model.Station) *string { return &s.Antenna }},
	{"Via Satellite:", "optional", 32, func(s *model.Station) *string { return &s.Satellite }},
	{"Background Image:", "foto_antenas.jpg", 128, func(s *model.Station) *string { return &s.BackgroundImage }},
	{"Logo 1 (URE):", "logo_ure_negro.png", 128, func(s *model.Station) *string { return &s.Logo1 }},
	{"Logo 1 Scale:", "0.07", 8, func(s *model.Station) *string { return &s.Logo1Scale }},
	{"Logo 2 (QRZ):", "qrz_com.png", 128, func(s *model.Station) *string { return &s.Logo2 }},
	{"Logo 2 Scale:", "0.2", 8, func(s *model.Station) *string { return &s.Logo2Scale }},
	{"Logo 3 (LoTW):", "lotw.png", 128, func(s *model.Station) *string { return &s.Logo3 }},
	{"Logo 3 Scale:", "0.1", 8, func(s *model.Station) *string { return &s.Logo3Scale }},
}

// StationModel is the interactive editor for the saved station
// settings. Submitting writes the settings file through the store.
type StationModel struct {
	focusIndex int
	inputs     []textinput.Model
	store      *settings.Store
	Saved      bool
	Err        error
}

// NewStationModel loads the saved station into a fresh form. A corrupt
// settings file is not fatal: the returned model starts from defaults
// and err is settings.ErrCorrupt so the caller can warn about it.
func NewStationModel(store *settings.Store) (StationModel, error) {
	station, err := store.Load()
	if err != nil && !errors.Is(err, settings.ErrCorrupt) {
		return StationModel{}, err
	}

	m := StationModel{
		inputs: make([]textinput.Model, len(stationFields)),
		store:  store,
	}

	for i, f := range stationFields {
		t := textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = f.limit
		t.Placeholder = f.placeholder
		t.SetValue(*f.value(&station))

		if i == 0 {
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		}

		m.inputs[i] = t
	}

	return m, err
}

func (m *StationModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *StationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case successMsg:
		m.Saved = true
		return m, tea.Quit
	case errMsg:
		m.Err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Submit on enter when on the button
			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveStation
			}

			// Cycle indexes
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					// Set focused state
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle

					continue
				}
				// Remove the focused state
				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	// Handle character input and blinking
	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *StationModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only text inputs with Focus() set will respond, so it's safe to simply
	// update all of them here without any further logic.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *StationModel) View() string {
	if m.Saved {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Render("\n  ✓ Station settings saved!\n\n")
	}

	if m.Err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("\n  ✗ Error: %v\n\n", m.Err))
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	s := headerStyle.Render("Station Settings") + "\n"
	s += blurredStyle.Render("These details persist and print on every card") + "\n\n"
	for i, f := range stationFields {
		s += fmt.Sprintf(fmtField, labelStyle.Render(f.label), m.inputs[i].View())
	}

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)
	s += helpStyleForm.Render(" tab/shift+tab: navigate • enter: submit • esc: quit")

	return s
}

// Station rebuilds a Station from the current input values.
func (m *StationModel) Station() model.Station {
	var station model.Station
	for i, f := range stationFields {
		*f.value(&station) = m.inputs[i].Value()
	}

	return station
}

func (m *StationModel) saveStation() tea.Msg {
	if err := m.store.Save(m.Station()); err != nil {
		return errMsg{err}
	}

	return successMsg{}
}

type successMsg struct{}
type errMsg struct{ err error }

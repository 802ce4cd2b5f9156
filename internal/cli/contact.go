package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andortizg/QSL-Generator/internal/model"
)

// Input order, mirrored by contactFields.
const (
	fieldVia = iota
	fieldToStation
	fieldTheirCall
	fieldDate
	fieldTime
	fieldBand
	fieldMode
	fieldReport
	fieldQTHType
	fieldPortableLocation
	fieldQSLType
	fieldQSLRequest
)

type contactField struct {
	label       string
	placeholder string
	limit       int
}

var contactFields = []contactField{
	{"VIA (Bureau/Manager):", "optional", 64},
	{"TO STATION:", "optional", 64},
	{"Their Callsign:", "DL1ABC", 16},
	{"Date (DD/MM/YYYY):", "28/11/2024", 10},
	{"Time (UTC):", "18:30", 5},
	{"Band:", "20m", 16},
	{"Mode:", "SSB", 16},
	{"Signal Report:", "59", 16},
	{"My QTH Type:", "home or portable", 16},
	{"Portable Location:", "used when portable", 64},
	{"QSL Type:", "qso or swl", 8},
	{"QSL Request:", "pse or tnx", 8},
}

// ContactModel collects the per-QSO fields for one card. Contacts are
// never persisted; every form starts blank with the checkboxes at
// their defaults.
type ContactModel struct {
	focusIndex int
	inputs     []textinput.Model
	Submitted  bool
}

func NewContactModel() ContactModel {
	defaults := model.DefaultContact()

	m := ContactModel{
		inputs: make([]textinput.Model, len(contactFields)),
	}

	for i, f := range contactFields {
		t := textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = f.limit
		t.Placeholder = f.placeholder

		// The choice fields show their current value, like the radio
		// buttons they replace
		switch i {
		case fieldQTHType:
			t.SetValue(defaults.QTH.String())
		case fieldQSLType:
			t.SetValue(defaults.QSL.String())
		case fieldQSLRequest:
			t.SetValue(defaults.Request.String())
		}

		if i == 0 {
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		}

		m.inputs[i] = t
	}

	return m
}

func (m *ContactModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ContactModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+r":
			m.clear()
			return m, nil

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Submit on enter when on the button
			if s == "enter" && m.focusIndex == len(m.inputs) {
				m.Submitted = true
				return m, tea.Quit
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

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *ContactModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

// clear wipes the text fields and resets the checkboxes to their
// defaults, like starting a fresh card.
func (m *ContactModel) clear() {
	defaults := model.DefaultContact()

	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}

	m.inputs[fieldQTHType].SetValue(defaults.QTH.String())
	m.inputs[fieldQSLType].SetValue(defaults.QSL.String())
	m.inputs[fieldQSLRequest].SetValue(defaults.Request.String())
}

func (m *ContactModel) View() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	s := headerStyle.Render("New QSL Card") + "\n"
	s += blurredStyle.Render("Contact details for this card only") + "\n\n"
	for i, f := range contactFields {
		s += fmt.Sprintf(fmtField, labelStyle.Render(f.label), m.inputs[i].View())
	}

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)
	s += helpStyleForm.Render(" tab/shift+tab: navigate • enter: submit • ctrl+r: clear • esc: quit")

	return s
}

// Contact rebuilds a Contact from the current input values. The choice
// fields tolerate case and whitespace; anything unrecognized falls back
// to the defaults.
func (m *ContactModel) Contact() model.Contact {
	c := model.DefaultContact()
	c.Via = m.inputs[fieldVia].Value()
	c.ToStation = m.inputs[fieldToStation].Value()
	c.TheirCall = m.inputs[fieldTheirCall].Value()
	c.Date = m.inputs[fieldDate].Value()
	c.Time = m.inputs[fieldTime].Value()
	c.Band = m.inputs[fieldBand].Value()
	c.Mode = m.inputs[fieldMode].Value()
	c.Report = m.inputs[fieldReport].Value()
	c.PortableLocation = m.inputs[fieldPortableLocation].Value()

	if v, err := model.ParseQTHType(normalizeChoice(m.inputs[fieldQTHType].Value())); err == nil {
		c.QTH = v
	}
	if v, err := model.ParseQSLType(normalizeChoice(m.inputs[fieldQSLType].Value())); err == nil {
		c.QSL = v
	}
	if v, err := model.ParseQSLRequest(normalizeChoice(m.inputs[fieldQSLRequest].Value())); err == nil {
		c.Request = v
	}

	return c
}

func normalizeChoice(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

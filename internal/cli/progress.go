package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andortizg/QSL-Generator/internal/render"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	callStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// RenderModel shows a spinner while pdflatex compiles a card and then
// reports where the PDF landed.
type RenderModel struct {
	spinner   spinner.Model
	client    *render.Client
	req       render.Request
	label     string
	rendering bool
	done      bool
	result    *render.Result
	err       error
}

type renderCompleteMsg struct {
	result *render.Result
	err    error
}

func NewRenderModel(client *render.Client, req render.Request, label string) RenderModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return RenderModel{
		spinner:   s,
		client:    client,
		req:       req,
		label:     label,
		rendering: true,
	}
}

func (m RenderModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.renderCard)
}

func (m RenderModel) renderCard() tea.Msg {
	res, err := m.client.RenderPDF(context.Background(), m.req)
	if err != nil {
		return renderCompleteMsg{err: err}
	}

	return renderCompleteMsg{result: res}
}

func (m RenderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch keyMsg := msg.(type) {
	case tea.KeyMsg:
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.done {
			return m, tea.Quit
		}

	case renderCompleteMsg:
		m.rendering = false
		m.done = true
		m.result = keyMsg.result
		m.err = keyMsg.err

		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(keyMsg)

		return m, cmd
	}

	return m, nil
}

func (m RenderModel) View() string {
	if m.done {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("\n  ✗ Render failed: %v\n\n", m.err))
		}

		return successStyle.Render(fmt.Sprintf("\n  ✓ PDF saved to %s\n\n", m.result.PDFPath))
	}

	if m.rendering {
		return fmt.Sprintf("\n  %s Rendering card for %s\n  %s\n\n", m.spinner.View(), callStyle.Render(m.label), pathStyle.Render("→ "+m.req.OutputPath))
	}

	return ""
}

func (m RenderModel) Error() error {
	return m.err
}

func (m RenderModel) Result() *render.Result {
	return m.result
}

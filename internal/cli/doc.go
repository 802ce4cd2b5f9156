// Package cli provides the terminal user interface for the generator.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - Menu: main interactive menu for selecting operations
//   - Station: form editing the persisted station settings
//   - Contact: form collecting the per-QSO fields for one card
//   - Render: spinner shown while pdflatex compiles a card
//
// # Styling
//
// Use Lipgloss for consistent styling across components. Common styles
// are defined as package-level variables for reuse.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/textframe/pkg/frame"
)

var (
	previewStyle = lipgloss.NewStyle().Foreground(colorWhite).MarginTop(1)
	helpStyle    = lipgloss.NewStyle().Foreground(colorDim)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
)

// tuiCommand creates the tui command: an editor with a live framed preview.
// On ctrl+d the final frame is printed to stdout.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [initial-text]",
		Short: "Edit text with a live framed preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}

			p := tea.NewProgram(newPreviewModel(initial),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.ErrOrStderr()),
				tea.WithAltScreen(),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(PreviewModel); ok && m.Accepted {
				fmt.Fprintln(cmd.OutOrStdout(), frame.Render(m.Value()))
			}
			return nil
		},
	}
}

// =============================================================================
// PreviewModel - Live frame preview
// =============================================================================

// PreviewModel is the bubbletea model for the tui command.
type PreviewModel struct {
	Input    textarea.Model
	Width    int
	Accepted bool
}

func newPreviewModel(initial string) PreviewModel {
	ta := textarea.New()
	ta.Placeholder = "Type something… (あいう works too)"
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.SetValue(initial)
	ta.Focus()
	return PreviewModel{Input: ta, Width: 60}
}

// Value returns the text being edited.
func (m PreviewModel) Value() string {
	return m.Input.Value()
}

func (m PreviewModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "ctrl+d":
			m.Accepted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Width = max(msg.Width-2, 20)
		m.Input.SetWidth(m.Width)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("textframe"))
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	b.WriteString("\n")
	b.WriteString(previewStyle.Render(frame.Render(m.Value())))
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+d print & quit  esc quit"))

	return b.String()
}

func (m PreviewModel) statusLine() string {
	s := frame.Measure(m.Value())
	line := StyleDim.Render(fmt.Sprintf("%d lines · border %d glyphs / %d cols · %d wide",
		s.Lines, s.BorderLength, s.LongestWidth, s.WideRunes))
	if s.Misaligned() {
		line += " " + warnStyle.Render(fmt.Sprintf("widest row %d cols", s.MaxWidth))
	}
	return line
}

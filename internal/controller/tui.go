package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "github.com/mason-dev/mason/internal/model"
)

// pagerThreshold is the diff height above which the TUI switches from
// inline output to a scrollable pager.
const pagerThreshold = 20

// TUI implements UI for interactive terminals. Small results print
// inline through the embedded SimpleUI; large diffs open a Bubble Tea
// viewport pager.
type TUI struct {
	*SimpleUI

	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), cmd: cmd}
}

// DisplayDiff pages the diff when it exceeds the inline threshold.
func (t *TUI) DisplayDiff(target m.Path, diff *m.Diff) {
	if diff == nil || diffHeight(diff) <= pagerThreshold {
		t.SimpleUI.DisplayDiff(target, diff)
		return
	}

	model := newPagerModel(string(target), renderDiff(target, diff))

	p := tea.NewProgram(
		model,
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		// Fall back to plain output rather than swallowing the preview.
		t.SimpleUI.DisplayDiff(target, diff)
	}
}

func diffHeight(diff *m.Diff) int {
	return len(diff.Before) + len(diff.Removed) + len(diff.Added) + len(diff.After)
}

// pagerModel is a scrollable read-only view over rendered diff text.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 1
		footerHeight := 1

		if !p.ready {
			p.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd

	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "loading preview..."
	}

	header := headerStyle.Render(fmt.Sprintf("preview: %s", p.title))
	footer := contextStyle.Render(fmt.Sprintf("%3.f%%  (q to quit)", p.viewport.ScrollPercent()*100))

	return fmt.Sprintf("%s\n%s\n%s", header, p.viewport.View(), footer)
}

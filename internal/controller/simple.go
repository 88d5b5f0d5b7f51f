package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mason-dev/mason/internal/model"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	contextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// SimpleUI implements UI using the cobra command's writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDiff renders the contextual diff, or "no changes" when nil.
func (s *SimpleUI) DisplayDiff(target m.Path, diff *m.Diff) {
	if diff == nil {
		s.printf("%s: no changes\n", target)
		return
	}

	s.printf("%s\n", renderDiff(target, diff))
}

// DisplayNoChanges reports an idempotent no-op.
func (s *SimpleUI) DisplayNoChanges(target m.Path, present []string) {
	s.printf("%s: no changes needed\n", target)
	s.printSummary(nil, present)
}

// DisplayApplied reports a persisted mutation and its backup path.
func (s *SimpleUI) DisplayApplied(target m.Path, backup m.Path, inserted, present []string) {
	s.printf("%s: wired %d dependenc%s (backup at %s)\n",
		target, len(inserted), pluralY(len(inserted)), backup)
	s.printSummary(inserted, present)
}

// DisplayPatchSuggestion renders the snippet for a preview invocation.
func (s *SimpleUI) DisplayPatchSuggestion(target m.Path, snippet string) {
	s.printf("%s: no rule block found, suggested change:\n\n%s", target, snippet)
}

// DisplayPatchWritten reports the patch artifact path.
func (s *SimpleUI) DisplayPatchWritten(target, patch m.Path) {
	s.printf("%s: no rule block found, patch written to %s\n", target, patch)
}

// DisplayModulePlan lists the files a scaffold would create.
func (s *SimpleUI) DisplayModulePlan(dir m.Path, files []m.Path) {
	s.printf("would create module in %s:\n", dir)

	for _, f := range files {
		s.printf("  %s\n", f)
	}
}

// DisplayModuleCreated reports a scaffolded module.
func (s *SimpleUI) DisplayModuleCreated(label string, files []m.Path) {
	s.printf("created %s\n", label)

	for _, f := range files {
		s.printf("  %s\n", f)
	}
}

// printSummary renders a per-label status table.
func (s *SimpleUI) printSummary(inserted, present []string) {
	if len(inserted) == 0 && len(present) == 0 {
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Label", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, label := range inserted {
		table.Append([]string{label, "added"})
	}

	for _, label := range present {
		table.Append([]string{label, "present"})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderDiff formats a contextual diff with one hunk header, removed
// and added lines marked distinctly, and dimmed context.
func renderDiff(target m.Path, diff *m.Diff) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("--- %s", target)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("@@ line %d @@", diff.Start+1)))
	b.WriteString("\n")

	for _, line := range diff.Before {
		b.WriteString(contextStyle.Render("  " + line))
		b.WriteString("\n")
	}

	for _, line := range diff.Removed {
		b.WriteString(removedStyle.Render("- " + line))
		b.WriteString("\n")
	}

	for _, line := range diff.Added {
		b.WriteString(addedStyle.Render("+ " + line))
		b.WriteString("\n")
	}

	for _, line := range diff.After {
		b.WriteString(contextStyle.Render("  " + line))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}

	return "ies"
}

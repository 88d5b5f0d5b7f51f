package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mason-dev/mason/internal/domain"
	m "github.com/mason-dev/mason/internal/model"
)

const newLongDescription = `Create a new module directory with boilerplate files (header, source,
BUILD) and wire its label into the workspace's top-level BUILD file.

The directory is resolved against the workspace root, which is located
by walking up from the current directory until a WORKSPACE,
WORKSPACE.bazel or MODULE.bazel file is found. With --dry-run the
planned files are listed and the BUILD change is shown as a diff,
without creating or writing anything.`

var newNameFlag string
var newTargetFlag string
var newDryRunFlag bool
var newRuleFlag string
var newFieldFlag string

// newCmd represents the new command.
var newCmd = newNewCmd()

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Scaffold a new module and wire it into the top-level BUILD file",
		Long:  newLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			root, err := fsAdapter.FindWorkspaceRoot(m.Path(cwd))
			if err != nil {
				return fmt.Errorf("mason new must run inside a workspace: %w", err)
			}

			cfg, err := loadConfigFor(root)
			if err != nil {
				return err
			}

			dir := args[0]
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(cwd, dir)
			}

			rel, err := filepath.Rel(string(root), dir)
			if err != nil {
				return fmt.Errorf("resolve %s against workspace root %s: %w", args[0], root, err)
			}

			mod, err := scaffolder.Plan(root, rel, newNameFlag, cfg.Scaffold.Copyright)
			if err != nil {
				return err
			}

			if newDryRunFlag {
				ui.DisplayModulePlan(mod.Dir, mod.Files)
			} else {
				if err := scaffolder.Create(mod); err != nil {
					return err
				}

				ui.DisplayModuleCreated(mod.Label, mod.Files)
			}

			target := m.Path(newTargetFlag)
			if target == "" {
				target = fsAdapter.JoinPath(string(root), "BUILD")
			}

			rule := newRuleFlag
			if rule == "" {
				rule = cfg.Rule
			}

			field := newFieldFlag
			if field == "" {
				field = cfg.Field
			}

			sink := newSink(newDryRunFlag)

			// A preview must always complete. When the target BUILD file
			// does not exist yet, show the snippet that a real run would
			// need instead of failing on the read.
			if newDryRunFlag {
				if _, err := fsAdapter.FileInfo(target); err != nil {
					return sink.Unlocatable(target, domain.SuggestedSnippet(rule, field, []m.Entry{m.Entry(mod.Label)}))
				}
			}

			return workflow.Wire(domain.WireArgs{
				Target: target,
				Rule:   rule,
				Field:  field,
				Labels: []string{mod.Label},
				Sink:   sink,
			})
		},
	}
	cmd.Flags().StringVar(&newNameFlag, "name", "", "module name (default: directory base name)")
	cmd.Flags().StringVar(&newTargetFlag, "target", "", "BUILD file to wire the new label into (default: <root>/BUILD)")
	cmd.Flags().BoolVarP(&newDryRunFlag, "dry-run", "n", false, "show planned files and BUILD diff without writing anything")
	cmd.Flags().StringVar(&newRuleFlag, "rule", "", "rule kind to wire into (default from .mason.yaml, else cc_binary)")
	cmd.Flags().StringVar(&newFieldFlag, "field", "", "list field holding dependencies (default from .mason.yaml, else deps)")

	return cmd
}

func init() {
	rootCmd.AddCommand(newCmd)
}

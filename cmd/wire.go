package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mason-dev/mason/internal/domain"
	m "github.com/mason-dev/mason/internal/model"
)

const wireLongDescription = `Ensure the given dependency labels are present in the topmost rule
block of a BUILD file.

Labels already present are left alone; missing ones are inserted before
the dependency list's closing bracket, matching the file's indentation.
A rule block without a dependency field gets a complete field
synthesized. If no rule block can be located at all, mason writes a
.mason.patch file describing the intended change and leaves the BUILD
file untouched.

Apply mode backs the file up to <file>.mason.bak.<timestamp> before
writing. With --dry-run nothing is written and a contextual diff is
shown instead.`

var wireDryRunFlag bool
var wireRuleFlag string
var wireFieldFlag string

// wireCmd represents the wire command.
var wireCmd = newWireCmd()

func newWireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wire <build-file> <label>...",
		Short: "Ensure dependency labels are present in a BUILD rule",
		Long:  wireLongDescription,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			target := m.Path(args[0])

			cfg, err := loadConfigFor(target)
			if err != nil {
				return err
			}

			rule := wireRuleFlag
			if rule == "" {
				rule = cfg.Rule
			}

			field := wireFieldFlag
			if field == "" {
				field = cfg.Field
			}

			return workflow.Wire(domain.WireArgs{
				Target: target,
				Rule:   rule,
				Field:  field,
				Labels: args[1:],
				Sink:   newSink(wireDryRunFlag),
			})
		},
	}
	cmd.Flags().BoolVarP(&wireDryRunFlag, "dry-run", "n", false, "preview the change without writing anything")
	cmd.Flags().StringVar(&wireRuleFlag, "rule", "", "rule kind to wire into (default from .mason.yaml, else cc_binary)")
	cmd.Flags().StringVar(&wireFieldFlag, "field", "", "list field holding dependencies (default from .mason.yaml, else deps)")

	return cmd
}

func init() {
	rootCmd.AddCommand(wireCmd)
}

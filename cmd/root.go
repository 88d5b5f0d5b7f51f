// Package cmd provides the root command and CLI setup for mason.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mason-dev/mason/internal/adapter"
	"github.com/mason-dev/mason/internal/config"
	"github.com/mason-dev/mason/internal/controller"
	"github.com/mason-dev/mason/internal/domain"
	m "github.com/mason-dev/mason/internal/model"
	"github.com/mason-dev/mason/internal/scaffold"
)

var fsAdapter adapter.BuildFSAdapter
var backupWriter adapter.BackupWriter
var ui controller.UI
var workflow domain.Workflow
var scaffolder *scaffold.Scaffolder

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalBuildFSAdapter()
	backupWriter = adapter.NewTimestampBackupWriter(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter)
	scaffolder = scaffold.NewScaffolder(fsAdapter)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mason",
		Short: "Scaffold modules and wire them into BUILD files",
		Long: `Mason creates new module directories in a build-graph-managed source
tree and wires their labels into an existing BUILD rule's dependency
list. Edits are idempotent, previewable with --dry-run, and always
preceded by a timestamped backup. When a BUILD file cannot be parsed
confidently, mason degrades to a patch suggestion instead of touching
the file.`,
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfigFor resolves the workspace configuration governing a target
// file. Outside any workspace the built-in defaults apply; a malformed
// config file is an error.
func loadConfigFor(target m.Path) (config.Config, error) {
	root, err := fsAdapter.FindWorkspaceRoot(target)
	if err != nil {
		return config.Default(), nil
	}

	return config.Load(string(root))
}

// newSink selects the invocation's side-effect boundary once: persist
// for apply mode, render for preview.
func newSink(dryRun bool) adapter.MutationSink {
	if dryRun {
		return adapter.NewPreviewSink(ui)
	}

	return adapter.NewApplySink(fsAdapter, backupWriter, ui)
}

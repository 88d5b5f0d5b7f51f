package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mason-dev/mason/internal/controller"
	"github.com/mason-dev/mason/internal/domain"
)

// mockWorkflow stands in for the domain workflow in flag-resolution
// tests.
type mockWorkflow struct {
	mock.Mock
}

func (m *mockWorkflow) Wire(args domain.WireArgs) error {
	return m.Called(args).Error(0)
}

func newTestRoot(t *testing.T) (*bytes.Buffer, func(args ...string) error) {
	t.Helper()

	buf := &bytes.Buffer{}
	root := newRootCmd()
	root.AddCommand(newWireCmd())
	root.AddCommand(newNewCmd())
	root.SetOut(buf)
	root.SetErr(buf)

	originalUI := ui
	ui = controller.NewSimpleUI(root)

	t.Cleanup(func() {
		ui = originalUI
		wireDryRunFlag = false
		wireRuleFlag = ""
		wireFieldFlag = ""
		newDryRunFlag = false
		newNameFlag = ""
		newTargetFlag = ""
		newRuleFlag = ""
		newFieldFlag = ""
	})

	return buf, func(args ...string) error {
		root.SetArgs(args)
		return root.Execute()
	}
}

func writeWorkspace(t *testing.T, buildContent string) (string, string) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "WORKSPACE"), nil, 0o644))

	build := filepath.Join(root, "BUILD")
	require.NoError(t, os.WriteFile(build, []byte(buildContent), 0o644))

	return root, build
}

const appBuild = `cc_binary(
    name = "app",
    deps = [
        "//base:base",
    ],
)
`

func TestWireCmd_AppliesMutation(t *testing.T) {
	_, run := newTestRoot(t)
	_, build := writeWorkspace(t, appBuild)

	require.NoError(t, run("wire", build, "//lib:lib"))

	content, err := os.ReadFile(build)
	require.NoError(t, err)
	assert.Contains(t, string(content), `        "//lib:lib",`)

	backups, err := filepath.Glob(build + ".mason.bak.*")
	require.NoError(t, err)
	require.Len(t, backups, 1)

	backupContent, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, appBuild, string(backupContent))
}

func TestWireCmd_SecondRunIsNoOp(t *testing.T) {
	buf, run := newTestRoot(t)
	_, build := writeWorkspace(t, appBuild)

	require.NoError(t, run("wire", build, "//lib:lib"))

	after, err := os.ReadFile(build)
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, run("wire", build, "//lib:lib"))

	again, err := os.ReadFile(build)
	require.NoError(t, err)
	assert.Equal(t, string(after), string(again))
	assert.Contains(t, buf.String(), "no changes needed")
}

func TestWireCmd_DryRunHasZeroSideEffects(t *testing.T) {
	buf, run := newTestRoot(t)
	_, build := writeWorkspace(t, appBuild)

	require.NoError(t, run("wire", "--dry-run", build, "//lib:lib"))

	content, err := os.ReadFile(build)
	require.NoError(t, err)
	assert.Equal(t, appBuild, string(content))

	siblings, err := filepath.Glob(build + ".mason.*")
	require.NoError(t, err)
	assert.Empty(t, siblings)

	assert.Contains(t, buf.String(), `+         "//lib:lib",`)
}

func TestWireCmd_UnlocatableWritesPatch(t *testing.T) {
	before := "py_library(\n    name = \"lib\",\n)\n"

	_, run := newTestRoot(t)
	_, build := writeWorkspace(t, before)

	require.NoError(t, run("wire", build, "//lib:lib"))

	content, err := os.ReadFile(build)
	require.NoError(t, err)
	assert.Equal(t, before, string(content), "target stays byte-identical")

	patch, err := os.ReadFile(build + ".mason.patch")
	require.NoError(t, err)
	assert.Contains(t, string(patch), `"//lib:lib",`)
}

func TestWireCmd_RuleFromWorkspaceConfig(t *testing.T) {
	_, run := newTestRoot(t)
	root, build := writeWorkspace(t, appBuild)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".mason.yaml"), []byte("rule: go_binary\n"), 0o644))

	mockWf := &mockWorkflow{}
	originalWorkflow := workflow
	workflow = mockWf

	defer func() { workflow = originalWorkflow }()

	mockWf.On("Wire", mock.MatchedBy(func(args domain.WireArgs) bool {
		return args.Rule == "go_binary" && args.Field == "deps"
	})).Return(nil)

	require.NoError(t, run("wire", build, "//lib:lib"))
	mockWf.AssertExpectations(t)
}

func TestWireCmd_FlagOverridesConfig(t *testing.T) {
	_, run := newTestRoot(t)
	root, build := writeWorkspace(t, appBuild)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".mason.yaml"), []byte("rule: go_binary\n"), 0o644))

	mockWf := &mockWorkflow{}
	originalWorkflow := workflow
	workflow = mockWf

	defer func() { workflow = originalWorkflow }()

	mockWf.On("Wire", mock.MatchedBy(func(args domain.WireArgs) bool {
		return args.Rule == "cc_library" && args.Field == "runtime_deps"
	})).Return(nil)

	require.NoError(t, run("wire", "--rule", "cc_library", "--field", "runtime_deps", build, "//lib:lib"))
	mockWf.AssertExpectations(t)
}

func TestWireCmd_RequiresLabels(t *testing.T) {
	_, run := newTestRoot(t)

	assert.Error(t, run("wire", "BUILD"))
}

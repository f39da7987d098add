package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eric-downes/nosey-pytest/internal/controller"
	"github.com/eric-downes/nosey-pytest/internal/domain"
	domainmocks "github.com/eric-downes/nosey-pytest/internal/domain/mocks"
	m "github.com/eric-downes/nosey-pytest/internal/model"
)

func TestMigrateCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newMigrateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Migrate", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		_, keep := args.Review.(controller.KeepPolicy)

		return len(args.Files) == 0 &&
			!args.DryRun &&
			args.UseConverter &&
			args.Verify &&
			args.Parallel == 1 &&
			args.BackupDir == m.Path(".migration_backups") &&
			keep
	})).Return(nil)

	cmd.SetArgs([]string{"migrate"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestMigrateCmd_DryRunWithFiles(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newMigrateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Migrate", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		return args.DryRun &&
			len(args.Files) == 2 &&
			args.Files[0] == m.Path("tests/test_a.py") &&
			args.Files[1] == m.Path("tests/test_b.py")
	})).Return(nil)

	cmd.SetArgs([]string{"migrate", "--dry-run", "tests/test_a.py", "tests/test_b.py"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestMigrateCmd_ConverterAndVerifyToggles(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newMigrateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Migrate", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		return !args.UseConverter && !args.Verify && args.Parallel == 4
	})).Return(nil)

	cmd.SetArgs([]string{"migrate", "--no-convert", "--skip-verify", "-p", "4"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestMigrateCmd_ReviewDiscard(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newMigrateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Migrate", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		_, discard := args.Review.(controller.DiscardPolicy)

		return discard && args.Parallel == 2
	})).Return(nil)

	cmd.SetArgs([]string{"migrate", "--review", "discard", "-p", "2"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestMigrateCmd_ReviewPromptForcesSingleWorker(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newMigrateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Migrate", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		_, prompt := args.Review.(controller.PromptPolicy)

		return prompt && args.Parallel == 1
	})).Return(nil)

	cmd.SetArgs([]string{"migrate", "--review", "prompt", "-p", "3"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestMigrateCmd_ScanFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newMigrateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	// Point the shared config keys back at the pristine root flags afterwards,
	// so later tests see the defaults again.
	defer func() {
		bindFlagToConfig(rootCmd.PersistentFlags().Lookup(testDirFlagName), testDirsConfigKey)
		bindFlagToConfig(rootCmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)
	}()

	mockWorkflow.On("Migrate", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		return len(args.Scan.Paths) == 1 &&
			args.Scan.Paths[0] == "custom_tests" &&
			len(args.Scan.Exclude) == 1 &&
			args.Scan.Exclude[0] == "fixtures"
	})).Return(nil)

	cmd.SetArgs([]string{"-t", "custom_tests", "-x", "fixtures", "migrate"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestMigrateCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newMigrateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Migrate", mock.Anything, mock.Anything).
		Return(fmt.Errorf("migrate batch: spool full"))

	cmd.SetArgs([]string{"migrate"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate batch")

	mockWorkflow.AssertExpectations(t)
}

func TestNewMigrateCmd(t *testing.T) {
	cmd := newMigrateCmd()

	assert.Equal(t, "migrate [files...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, migrateLongDescription, cmd.Long)

	for _, name := range []string{dryRunFlagName, parallelFlagName, noConvertFlagName, skipVerifyFlagName, reviewFlagName, backupDirFlagName} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestReviewPolicy(t *testing.T) {
	cmd := newMigrateCmd()
	cmd.SetOut(&bytes.Buffer{})

	policy, parallel := reviewPolicy(cmd, "keep", 4)
	assert.IsType(t, controller.KeepPolicy{}, policy)
	assert.Equal(t, 4, parallel)

	policy, parallel = reviewPolicy(cmd, "discard", 4)
	assert.IsType(t, controller.DiscardPolicy{}, policy)
	assert.Equal(t, 4, parallel)

	policy, parallel = reviewPolicy(cmd, "prompt", 4)
	assert.IsType(t, controller.PromptPolicy{}, policy)
	assert.Equal(t, 1, parallel)

	// Unknown modes fall back to keeping every change.
	policy, parallel = reviewPolicy(cmd, "bogus", 4)
	assert.IsType(t, controller.KeepPolicy{}, policy)
	assert.Equal(t, 4, parallel)
}

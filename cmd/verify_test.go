package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eric-downes/nosey-pytest/internal/domain"
	domainmocks "github.com/eric-downes/nosey-pytest/internal/domain/mocks"
	m "github.com/eric-downes/nosey-pytest/internal/model"
)

func TestVerifyCmd_TrackedFiles(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newVerifyCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Verify", mock.Anything, mock.MatchedBy(func(args domain.VerifyArgs) bool {
		return len(args.Files) == 0
	})).Return(nil)

	cmd.SetArgs([]string{"verify"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestVerifyCmd_ExplicitFiles(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newVerifyCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Verify", mock.Anything, mock.MatchedBy(func(args domain.VerifyArgs) bool {
		return len(args.Files) == 2 &&
			args.Files[0] == m.Path("tests/test_a.py") &&
			args.Files[1] == m.Path("tests/test_b.py")
	})).Return(nil)

	cmd.SetArgs([]string{"verify", "tests/test_a.py", "tests/test_b.py"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestNewVerifyCmd(t *testing.T) {
	cmd := newVerifyCmd()

	assert.Equal(t, "verify [files...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, verifyLongDescription, cmd.Long)
}

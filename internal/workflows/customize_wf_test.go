package workflows_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/metadata"
	"github.com/feral-file/ff-forge/internal/mocks"
	"github.com/feral-file/ff-forge/internal/workflows"
)

// CustomizeWorkflowTestSuite is the test suite for customize workflow tests
type CustomizeWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env         *testsuite.TestWorkflowEnvironment
	ctrl        *gomock.Controller
	executor    *mocks.MockForgeExecutor
	workerForge workflows.WorkerForge
}

// SetupTest is called before each test
func (s *CustomizeWorkflowTestSuite) SetupTest() {
	// Initialize logger for tests
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockForgeExecutor(s.ctrl)
	s.workerForge = workflows.NewWorkerForge(s.executor, workflows.WorkerForgeConfig{
		RevealMaxAttempts: 3,
	})
}

// TearDownTest is called after each test
func (s *CustomizeWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestCustomizeWorkflowTestSuite runs the test suite
func TestCustomizeWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(CustomizeWorkflowTestSuite))
}

func customizeRequest() *domain.CustomizeRequest {
	return &domain.CustomizeRequest{
		TokenAddress: "7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2",
		TokenID:      "1042",
		TokenName:    "Aldric",
		MetadataURI:  "ipfs://QmRevealedHash",
		Skills: domain.Skills{
			Constitution: 10,
			Strength:     8,
			Dexterity:    7,
			Wisdom:       9,
			Intelligence: 6,
			Charisma:     10,
		},
		Traits: domain.CosmeticTraits{
			Race:      "Elf",
			Sex:       "Female",
			HairStyle: "Braided",
		},
	}
}

func (s *CustomizeWorkflowTestSuite) TestCustomizeWorkflow_Success() {
	request := customizeRequest()
	prior := metadata.Document{"name": "Hero #42"}
	built := metadata.Document{"name": "Hero #42", "token_name": "Aldric"}

	s.env.OnActivity(s.executor.CheckCustomizable, mock.Anything, request.TokenAddress).Return(nil)
	s.env.OnActivity(s.executor.FetchPriorMetadata, mock.Anything, request.MetadataURI).Return(prior, nil)
	s.env.OnActivity(s.executor.RenderCustomizeImage, mock.Anything, request.TokenAddress, request.Skills, request.Traits).
		Return("https://renders.example.com/custom.png", nil)
	s.env.OnActivity(s.executor.PublishArtifact, mock.Anything, mock.Anything, "https://renders.example.com/custom.png").
		Return(&workflows.PublishedObject{CID: "QmImage", URL: "https://gateway.pinata.cloud/ipfs/QmImage"}, nil)
	s.env.OnActivity(s.executor.BuildCustomizeMetadata, mock.Anything, mock.MatchedBy(func(input *workflows.CustomizeMetadataInput) bool {
		return input.TokenName == "Aldric" && input.ImageURL == "https://gateway.pinata.cloud/ipfs/QmImage"
	})).Return(built, nil)
	s.env.OnActivity(s.executor.PublishMetadata, mock.Anything, mock.Anything, built).
		Return(&workflows.PublishedObject{CID: "QmMeta", URL: "https://gateway.pinata.cloud/ipfs/QmMeta"}, nil)
	s.env.OnActivity(s.executor.AnchorMetadata, mock.Anything, request.TokenAddress, "https://gateway.pinata.cloud/ipfs/QmMeta").
		Return("5TxSignature", nil)
	s.env.OnActivity(s.executor.CommitCustomize, mock.Anything, mock.MatchedBy(func(input *workflows.CustomizeCommitInput) bool {
		return input.TokenAddress == request.TokenAddress &&
			input.CharacterTokenID == "1042" &&
			input.TokenName == "Aldric"
	})).Return(nil)

	s.env.ExecuteWorkflow(s.workerForge.CustomizeWorkflow, request)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result *domain.CustomizeResult
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Equal(request.TokenAddress, result.TokenAddress)
	s.Equal("https://gateway.pinata.cloud/ipfs/QmMeta", result.MetadataURL)
	s.Equal("https://gateway.pinata.cloud/ipfs/QmImage", result.ImageURL)
}

func (s *CustomizeWorkflowTestSuite) TestCustomizeWorkflow_NotRevealed() {
	request := customizeRequest()

	s.env.OnActivity(s.executor.CheckCustomizable, mock.Anything, request.TokenAddress).Return(
		temporal.NewNonRetryableApplicationError("token is not revealed yet", workflows.ErrTypeNotRevealed, domain.ErrNotRevealed),
	)

	s.env.ExecuteWorkflow(s.workerForge.CustomizeWorkflow, request)

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)

	var appErr *temporal.ApplicationError
	s.True(errors.As(err, &appErr))
	s.Equal(workflows.ErrTypeNotRevealed, appErr.Type())
}

func (s *CustomizeWorkflowTestSuite) TestCustomizeWorkflow_TokenNameTaken() {
	request := customizeRequest()
	prior := metadata.Document{"name": "Hero #42"}
	built := metadata.Document{"name": "Hero #42", "token_name": "Aldric"}

	s.env.OnActivity(s.executor.CheckCustomizable, mock.Anything, request.TokenAddress).Return(nil)
	s.env.OnActivity(s.executor.FetchPriorMetadata, mock.Anything, request.MetadataURI).Return(prior, nil)
	s.env.OnActivity(s.executor.RenderCustomizeImage, mock.Anything, request.TokenAddress, request.Skills, request.Traits).
		Return("https://renders.example.com/custom.png", nil)
	s.env.OnActivity(s.executor.PublishArtifact, mock.Anything, mock.Anything, mock.Anything).
		Return(&workflows.PublishedObject{CID: "QmImage", URL: "https://gateway.pinata.cloud/ipfs/QmImage"}, nil)
	s.env.OnActivity(s.executor.BuildCustomizeMetadata, mock.Anything, mock.Anything).Return(built, nil)
	s.env.OnActivity(s.executor.PublishMetadata, mock.Anything, mock.Anything, mock.Anything).
		Return(&workflows.PublishedObject{CID: "QmMeta", URL: "https://gateway.pinata.cloud/ipfs/QmMeta"}, nil)
	s.env.OnActivity(s.executor.AnchorMetadata, mock.Anything, request.TokenAddress, mock.Anything).
		Return("5TxSignature", nil)
	s.env.OnActivity(s.executor.CommitCustomize, mock.Anything, mock.Anything).Return(
		temporal.NewNonRetryableApplicationError("token name is already taken", workflows.ErrTypeTokenNameTaken, domain.ErrTokenNameTaken),
	)

	s.env.ExecuteWorkflow(s.workerForge.CustomizeWorkflow, request)

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)

	var appErr *temporal.ApplicationError
	s.True(errors.As(err, &appErr))
	s.Equal(workflows.ErrTypeTokenNameTaken, appErr.Type())
}

func (s *CustomizeWorkflowTestSuite) TestCustomizeWorkflow_RenderFailureFailsWorkflow() {
	request := customizeRequest()
	prior := metadata.Document{"name": "Hero #42"}

	s.env.OnActivity(s.executor.CheckCustomizable, mock.Anything, request.TokenAddress).Return(nil)
	s.env.OnActivity(s.executor.FetchPriorMetadata, mock.Anything, request.MetadataURI).Return(prior, nil)
	s.env.OnActivity(s.executor.RenderCustomizeImage, mock.Anything, request.TokenAddress, request.Skills, request.Traits).
		Return("", errors.New("failed to render customize image: render job timed out"))

	s.env.ExecuteWorkflow(s.workerForge.CustomizeWorkflow, request)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

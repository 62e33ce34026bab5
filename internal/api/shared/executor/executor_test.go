package executor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/feral-file/ff-forge/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-forge/internal/api/shared/errors"
	"github.com/feral-file/ff-forge/internal/api/shared/executor"
	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/mocks"
	"github.com/feral-file/ff-forge/internal/workflows"
)

// fakeWorkflowRun satisfies client.WorkflowRun without a Temporal server.
// get fills the caller's result pointer or fails the run.
type fakeWorkflowRun struct {
	get func(valuePtr interface{}) error
}

func (f *fakeWorkflowRun) GetID() string {
	return "test-workflow-id"
}

func (f *fakeWorkflowRun) GetRunID() string {
	return "test-run-id"
}

func (f *fakeWorkflowRun) Get(ctx context.Context, valuePtr interface{}) error {
	return f.get(valuePtr)
}

func (f *fakeWorkflowRun) GetWithOptions(ctx context.Context, valuePtr interface{}, options client.WorkflowRunGetOptions) error {
	return f.get(valuePtr)
}

// ExecutorTestSuite is the test suite for the shared API executor
type ExecutorTestSuite struct {
	suite.Suite

	ctrl         *gomock.Controller
	store        *mocks.MockStore
	orchestrator *mocks.MockTemporalOrchestrator
	executor     executor.Executor
}

// SetupTest is called before each test
func (s *ExecutorTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.orchestrator = mocks.NewMockTemporalOrchestrator(s.ctrl)
	s.executor = executor.NewExecutor(s.store, s.orchestrator, "nft-forge")
}

// TearDownTest is called after each test
func (s *ExecutorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestExecutorTestSuite runs the test suite
func TestExecutorTestSuite(t *testing.T) {
	suite.Run(t, new(ExecutorTestSuite))
}

func (s *ExecutorTestSuite) expectWorkflow(run client.WorkflowRun, err error) {
	s.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			s.Equal("nft-forge", options.TaskQueue)
			s.NotEmpty(options.ID)
			return run, err
		})
}

func (s *ExecutorTestSuite) TestRevealSuccess() {
	request := &domain.RevealRequest{
		TokenAddress: "7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2",
		MetadataURI:  "https://arweave.net/abc123",
		MintName:     "Crypto Raider #1042",
		MintNumber:   1042,
		Pool:         domain.PoolWoodlandRespite,
	}

	run := &fakeWorkflowRun{
		get: func(valuePtr interface{}) error {
			result := valuePtr.(*domain.RevealResult)
			*result = domain.RevealResult{
				TokenAddress:   request.TokenAddress,
				StatPoints:     55,
				CosmeticPoints: 30,
				StatTier:       domain.TierRare,
				CosmeticTier:   domain.TierUncommon,
				HeroTier:       "Rare",
				MetadataURL:    "https://arweave.net/updated",
			}
			return nil
		},
	}
	s.expectWorkflow(run, nil)

	response, err := s.executor.Reveal(context.Background(), request)
	s.Require().NoError(err)
	s.Equal(request.TokenAddress, response.TokenAddress)
	s.Equal(55, response.StatPoints)
	s.Equal(domain.TierRare, response.StatTier)
	s.Equal("https://arweave.net/updated", response.MetadataURL)
}

func (s *ExecutorTestSuite) TestRevealStartFailure() {
	s.expectWorkflow(nil, errors.New("namespace not found"))

	_, err := s.executor.Reveal(context.Background(), &domain.RevealRequest{
		TokenAddress: "7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2",
		Pool:         domain.PoolWoodlandRespite,
	})
	s.Require().Error(err)

	var apiErr *apierrors.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(apierrors.ErrCodeServiceError, apiErr.Code)
}

func (s *ExecutorTestSuite) TestRevealAlreadyRevealed() {
	run := &fakeWorkflowRun{
		get: func(valuePtr interface{}) error {
			return temporal.NewApplicationError("token already revealed", workflows.ErrTypeAlreadyRevealed)
		},
	}
	s.expectWorkflow(run, nil)

	_, err := s.executor.Reveal(context.Background(), &domain.RevealRequest{
		TokenAddress: "7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2",
		Pool:         domain.PoolWoodlandRespite,
	})
	s.Require().Error(err)

	var apiErr *apierrors.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(apierrors.ErrCodeConflict, apiErr.Code)
}

func (s *ExecutorTestSuite) TestRevealPoolExhausted() {
	run := &fakeWorkflowRun{
		get: func(valuePtr interface{}) error {
			return temporal.NewApplicationError("no slots left", workflows.ErrTypePoolExhausted)
		},
	}
	s.expectWorkflow(run, nil)

	_, err := s.executor.Reveal(context.Background(), &domain.RevealRequest{
		TokenAddress: "7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2",
		Pool:         domain.PoolDawnOfMan,
	})

	var apiErr *apierrors.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(apierrors.ErrCodeConflict, apiErr.Code)
}

func (s *ExecutorTestSuite) TestRevealUnknownPool() {
	run := &fakeWorkflowRun{
		get: func(valuePtr interface{}) error {
			return temporal.NewApplicationError("unknown pool", workflows.ErrTypeUnknownRecipePool)
		},
	}
	s.expectWorkflow(run, nil)

	_, err := s.executor.Reveal(context.Background(), &domain.RevealRequest{
		TokenAddress: "7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2",
		Pool:         domain.RecipePool("Lost Valley"),
	})

	var apiErr *apierrors.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(apierrors.ErrCodeBadRequest, apiErr.Code)
}

func (s *ExecutorTestSuite) TestCustomizeSuccess() {
	request := &domain.CustomizeRequest{
		TokenAddress: "7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2",
		TokenID:      "1042",
		TokenName:    "Ragnar",
		MetadataURI:  "https://arweave.net/abc123",
	}

	run := &fakeWorkflowRun{
		get: func(valuePtr interface{}) error {
			result := valuePtr.(*domain.CustomizeResult)
			*result = domain.CustomizeResult{
				TokenAddress: request.TokenAddress,
				MetadataURL:  "https://arweave.net/customized",
				ImageURL:     "ipfs://QmCustomizedImage",
			}
			return nil
		},
	}
	s.expectWorkflow(run, nil)

	response, err := s.executor.Customize(context.Background(), request)
	s.Require().NoError(err)
	s.True(response.Success)
	s.Equal("https://arweave.net/customized", response.MetadataURL)
	s.Equal("ipfs://QmCustomizedImage", response.ImageURL)
}

func (s *ExecutorTestSuite) TestCustomizeNoPriorMetadata() {
	run := &fakeWorkflowRun{
		get: func(valuePtr interface{}) error {
			return temporal.NewApplicationError("metadata not found", workflows.ErrTypeNoPriorMetadata)
		},
	}
	s.expectWorkflow(run, nil)

	_, err := s.executor.Customize(context.Background(), &domain.CustomizeRequest{
		TokenAddress: "7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2",
	})

	var apiErr *apierrors.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(apierrors.ErrCodeNotFound, apiErr.Code)
}

func (s *ExecutorTestSuite) TestCheckTokenID() {
	s.store.EXPECT().
		IsCharacterTokenIDTaken(gomock.Any(), "1042").
		Return(true, nil)

	response, err := s.executor.CheckTokenID(context.Background(), "1042")
	s.Require().NoError(err)
	s.True(response.TokenIDExists)
}

func (s *ExecutorTestSuite) TestCheckTokenIDStoreError() {
	s.store.EXPECT().
		IsCharacterTokenIDTaken(gomock.Any(), "1042").
		Return(false, errors.New("connection refused"))

	_, err := s.executor.CheckTokenID(context.Background(), "1042")

	var apiErr *apierrors.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(apierrors.ErrCodeDatabaseError, apiErr.Code)
}

func (s *ExecutorTestSuite) TestRecipeAvailability() {
	s.store.EXPECT().
		CountRecipeSlots(gomock.Any(), domain.PoolWoodlandRespite).
		Return(int64(5000), nil)
	s.store.EXPECT().
		CountClaimedSlots(gomock.Any(), domain.PoolWoodlandRespite).
		Return(int64(3766), nil)
	s.store.EXPECT().
		CountRecipeSlots(gomock.Any(), domain.PoolDawnOfMan).
		Return(int64(5000), nil)
	s.store.EXPECT().
		CountClaimedSlots(gomock.Any(), domain.PoolDawnOfMan).
		Return(int64(679), nil)

	response, err := s.executor.RecipeAvailability(context.Background())
	s.Require().NoError(err)
	s.Require().Len(response.Pools, 2)

	byPool := make(map[domain.RecipePool]dto.PoolAvailability)
	for _, p := range response.Pools {
		byPool[p.Pool] = p
	}
	s.Equal(int64(1234), byPool[domain.PoolWoodlandRespite].Remaining)
	s.Equal(int64(5000), byPool[domain.PoolWoodlandRespite].Total)
	s.Equal(int64(4321), byPool[domain.PoolDawnOfMan].Remaining)
}

func (s *ExecutorTestSuite) TestRecipeAvailabilityCountError() {
	s.store.EXPECT().
		CountRecipeSlots(gomock.Any(), domain.PoolWoodlandRespite).
		Return(int64(0), errors.New("connection refused"))
	s.store.EXPECT().
		CountRecipeSlots(gomock.Any(), domain.PoolDawnOfMan).
		Return(int64(5000), nil).
		AnyTimes()
	s.store.EXPECT().
		CountClaimedSlots(gomock.Any(), domain.PoolDawnOfMan).
		Return(int64(679), nil).
		AnyTimes()

	_, err := s.executor.RecipeAvailability(context.Background())

	var apiErr *apierrors.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(apierrors.ErrCodeDatabaseError, apiErr.Code)
}

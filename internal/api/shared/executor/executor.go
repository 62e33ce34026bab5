package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/feral-file/ff-forge/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-forge/internal/api/shared/errors"
	"github.com/feral-file/ff-forge/internal/domain"
	temporalprovider "github.com/feral-file/ff-forge/internal/providers/temporal"
	"github.com/feral-file/ff-forge/internal/store"
	"github.com/feral-file/ff-forge/internal/workflows"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Reveal runs the reveal pipeline for a minted token and waits for
	// the drawn recipe
	Reveal(ctx context.Context, request *domain.RevealRequest) (*dto.RevealResponse, error)

	// Customize runs the customization pipeline for a revealed token and
	// waits for the published metadata
	Customize(ctx context.Context, request *domain.CustomizeRequest) (*dto.CustomizeResponse, error)

	// CheckTokenID reports whether a character token id is already taken
	CheckTokenID(ctx context.Context, tokenID string) (*dto.CheckTokenIDResponse, error)

	// RecipeAvailability reports the remaining slots of every recipe pool
	RecipeAvailability(ctx context.Context) (*dto.RecipeAvailabilityResponse, error)
}

// poolCount carries one pool's slot counts out of the worker pool
type poolCount struct {
	availability *dto.PoolAvailability
	err          error
}

type executor struct {
	store                 store.Store
	orchestrator          temporalprovider.TemporalOrchestrator
	orchestratorTaskQueue string
	pool                  pond.ResultPool[*poolCount]
}

func NewExecutor(s store.Store, orchestrator temporalprovider.TemporalOrchestrator, orchestratorTaskQueue string) Executor {
	return &executor{
		store:                 s,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
		pool:                  pond.NewResultPool[*poolCount](len(domain.RecipePools())),
	}
}

func (e *executor) Reveal(ctx context.Context, request *domain.RevealRequest) (*dto.RevealResponse, error) {
	w := workflows.NewWorkerForge(nil, workflows.WorkerForgeConfig{})

	// A token reveals once, so a completed workflow ID must never rerun
	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("reveal-%s", request.TokenAddress),
		TaskQueue:                e.orchestratorTaskQueue,
		WorkflowExecutionTimeout: 30 * time.Minute,
		WorkflowIDReusePolicy:    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
	}
	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.RevealWorkflow, request)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start reveal: %v", err))
	}

	var result domain.RevealResult
	if err := wfRun.Get(ctx, &result); err != nil {
		return nil, mapWorkflowError(err)
	}

	return dto.MapRevealResultToDTO(&result), nil
}

func (e *executor) Customize(ctx context.Context, request *domain.CustomizeRequest) (*dto.CustomizeResponse, error) {
	w := workflows.NewWorkerForge(nil, workflows.WorkerForgeConfig{})

	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("customize-%s", request.TokenAddress),
		TaskQueue:                e.orchestratorTaskQueue,
		WorkflowExecutionTimeout: 30 * time.Minute,
		WorkflowIDReusePolicy:    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
	}
	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.CustomizeWorkflow, request)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start customization: %v", err))
	}

	var result domain.CustomizeResult
	if err := wfRun.Get(ctx, &result); err != nil {
		return nil, mapWorkflowError(err)
	}

	return dto.MapCustomizeResultToDTO(&result), nil
}

func (e *executor) CheckTokenID(ctx context.Context, tokenID string) (*dto.CheckTokenIDResponse, error) {
	taken, err := e.store.IsCharacterTokenIDTaken(ctx, tokenID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to check token id: %v", err))
	}

	return &dto.CheckTokenIDResponse{TokenIDExists: taken}, nil
}

func (e *executor) RecipeAvailability(ctx context.Context) (*dto.RecipeAvailabilityResponse, error) {
	pools := domain.RecipePools()

	// One count query pair per pool, fanned out
	tasks := make([]pond.Result[*poolCount], len(pools))
	for i, p := range pools {
		tasks[i] = e.pool.Submit(func() *poolCount {
			total, err := e.store.CountRecipeSlots(ctx, p)
			if err != nil {
				return &poolCount{err: err}
			}
			claimed, err := e.store.CountClaimedSlots(ctx, p)
			if err != nil {
				return &poolCount{err: err}
			}
			return &poolCount{availability: &dto.PoolAvailability{
				Pool:      p,
				Total:     total,
				Remaining: total - claimed,
			}}
		})
	}

	availability := make([]dto.PoolAvailability, 0, len(pools))
	for i, task := range tasks {
		result, err := task.Wait()
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to count slots for pool %s: %v", pools[i], err))
		}
		if result.err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to count slots for pool %s: %v", pools[i], result.err))
		}
		availability = append(availability, *result.availability)
	}

	return &dto.RecipeAvailabilityResponse{Pools: availability}, nil
}

// mapWorkflowError translates the pipeline's failure taxonomy into API errors
func mapWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return apierrors.NewServiceError(fmt.Sprintf("Pipeline failed: %v", err))
	}

	switch appErr.Type() {
	case workflows.ErrTypeAlreadyRevealed:
		return apierrors.NewConflictError("Token has already been revealed")
	case workflows.ErrTypeAlreadyCustomized:
		return apierrors.NewConflictError("Token has already been customized")
	case workflows.ErrTypeNotRevealed:
		return apierrors.NewConflictError("Token has not been revealed yet")
	case workflows.ErrTypeTokenNameTaken:
		return apierrors.NewConflictError("Token name is already taken")
	case workflows.ErrTypeAllocationCollision:
		return apierrors.NewConflictError("Token lost every slot race, retry the reveal")
	case workflows.ErrTypePoolExhausted:
		return apierrors.NewConflictError("All recipes of this pool have been revealed")
	case workflows.ErrTypeUnknownRecipePool:
		return apierrors.NewBadRequestError("Unknown recipe pool")
	case workflows.ErrTypeNoPriorMetadata:
		return apierrors.NewNotFoundError("No metadata found for token")
	default:
		return apierrors.NewServiceError(fmt.Sprintf("Pipeline failed: %v", err))
	}
}

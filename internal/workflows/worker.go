package workflows

import (
	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/ff-forge/internal/domain"
)

// WorkerForge defines the interface for the reveal and customize pipelines
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_forge.go -package=mocks -mock_names=WorkerForge=MockForgeWorker
type WorkerForge interface {
	// RevealWorkflow runs the reveal pipeline for a minted token
	RevealWorkflow(ctx workflow.Context, request *domain.RevealRequest) (*domain.RevealResult, error)

	// CustomizeWorkflow runs the customization pipeline for a revealed token
	CustomizeWorkflow(ctx workflow.Context, request *domain.CustomizeRequest) (*domain.CustomizeResult, error)
}

type WorkerForgeConfig struct {
	// RevealMaxAttempts bounds how often a reveal re-draws its allocation
	// after losing a slot race
	RevealMaxAttempts int
}

// workerForge is the concrete implementation of WorkerForge
type workerForge struct {
	config   WorkerForgeConfig
	executor Executor
}

// NewWorkerForge creates a new forge worker instance
func NewWorkerForge(executor Executor, config WorkerForgeConfig) WorkerForge {
	if config.RevealMaxAttempts <= 0 {
		config.RevealMaxAttempts = domain.DEFAULT_REVEAL_MAX_ATTEMPTS
	}
	return &workerForge{
		executor: executor,
		config:   config,
	}
}

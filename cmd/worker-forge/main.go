package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-forge/internal/adapter"
	"github.com/feral-file/ff-forge/internal/allocator"
	"github.com/feral-file/ff-forge/internal/config"
	"github.com/feral-file/ff-forge/internal/lifecycle"
	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/metadata"
	"github.com/feral-file/ff-forge/internal/providers/pinata"
	"github.com/feral-file/ff-forge/internal/providers/solana"
	temporal "github.com/feral-file/ff-forge/internal/providers/temporal"
	"github.com/feral-file/ff-forge/internal/render"
	"github.com/feral-file/ff-forge/internal/store"
	"github.com/feral-file/ff-forge/internal/uri"
	"github.com/feral-file/ff-forge/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerForgeConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker-forge",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Worker Forge")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(30 * time.Second)
	jsonAdapter := adapter.NewJSON()

	// Initialize URI resolver
	uriResolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways:    cfg.URI.IPFSGateways,
		ArweaveGateways: cfg.URI.ArweaveGateways,
	})

	// Initialize metadata fetcher
	metadataFetcher := metadata.NewFetcher(httpClient, jsonAdapter, uriResolver)

	// Connect to the render queue
	renderQueue, err := render.NewQueue(render.Config{
		URL:            cfg.Render.URL,
		StreamName:     cfg.Render.StreamName,
		SubjectPrefix:  cfg.Render.SubjectPrefix,
		MaxReconnects:  cfg.Render.MaxReconnects,
		ReconnectWait:  cfg.Render.ReconnectWait,
		ConnectionName: cfg.Render.ConnectionName,
		JobTimeout:     cfg.Render.JobTimeout,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to render queue", zap.Error(err), zap.String("url", cfg.Render.URL))
	}
	defer renderQueue.Close()
	logger.InfoCtx(ctx, "Connected to render queue", zap.String("stream", cfg.Render.StreamName))

	// Initialize Pinata client
	pinataClient := pinata.NewClient(
		httpClient,
		jsonAdapter,
		cfg.Pinata.APIURL,
		cfg.Pinata.GatewayURL,
		cfg.Pinata.APIKey,
		cfg.Pinata.APISecret)

	// Load the Solana update authority keypair
	keypair, err := solana.LoadKeypair(cfg.Solana.KeypairPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load Solana keypair", zap.Error(err), zap.String("path", cfg.Solana.KeypairPath))
	}
	solanaClient := solana.NewClient(httpClient, jsonAdapter, cfg.Solana.SignerGatewayURL, keypair)
	logger.InfoCtx(ctx, "Loaded Solana signer", zap.String("gateway", cfg.Solana.SignerGatewayURL))

	// Initialize pipeline components
	guard := lifecycle.NewGuard(dataStore)
	slotAllocator := allocator.NewAllocator(dataStore)

	// Initialize executor for activities
	executor := workflows.NewExecutor(
		workflows.ExecutorConfig{
			SiteURL:    cfg.Forge.SiteURL,
			HeroImages: cfg.Forge.HeroImages,
		},
		dataStore,
		guard,
		slotAllocator,
		metadataFetcher,
		renderQueue,
		pinataClient,
		solanaClient,
		httpClient,
		jsonAdapter)

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger, // Use zap logger adapter for Temporal client
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()

	logger.InfoCtx(ctx, "Connected to Temporal",
		zap.String("host_port", cfg.Temporal.HostPort),
		zap.String("namespace", cfg.Temporal.Namespace),
	)

	// Create Temporal worker with logger and Sentry interceptor
	sentryInterceptor := temporal.NewSentryActivityInterceptor()
	temporalWorker := worker.New(temporalClient,
		cfg.Temporal.ForgeTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				sentryInterceptor,
			},
		})

	// Create forge worker instance
	workerForge := workflows.NewWorkerForge(executor,
		workflows.WorkerForgeConfig{
			RevealMaxAttempts: cfg.Forge.RevealMaxAttempts,
		})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerForge.RevealWorkflow)
	temporalWorker.RegisterWorkflow(workerForge.CustomizeWorkflow)
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	// Activities will be called by workflows
	temporalWorker.RegisterActivity(executor.CheckRevealable)
	temporalWorker.RegisterActivity(executor.CheckCustomizable)
	temporalWorker.RegisterActivity(executor.FetchPriorMetadata)
	temporalWorker.RegisterActivity(executor.AllocateSlot)
	temporalWorker.RegisterActivity(executor.ResolveHeroImage)
	temporalWorker.RegisterActivity(executor.RenderCustomizeImage)
	temporalWorker.RegisterActivity(executor.PublishArtifact)
	temporalWorker.RegisterActivity(executor.BuildRevealMetadata)
	temporalWorker.RegisterActivity(executor.BuildCustomizeMetadata)
	temporalWorker.RegisterActivity(executor.PublishMetadata)
	temporalWorker.RegisterActivity(executor.AnchorMetadata)
	temporalWorker.RegisterActivity(executor.CommitReveal)
	temporalWorker.RegisterActivity(executor.CommitCustomize)
	logger.InfoCtx(ctx, "Registered activities")

	// Start the worker
	err = temporalWorker.Start()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to start Temporal worker", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Worker Forge started successfully",
		zap.String("task_queue", cfg.Temporal.ForgeTaskQueue),
	)

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.InfoCtx(ctx, "Shutting down Worker Forge...")

	// Stop the worker
	temporalWorker.Stop()

	logger.InfoCtx(ctx, "Worker Forge stopped")
}

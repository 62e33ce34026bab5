package render

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-forge/internal/adapter"
	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/logger"
)

// Job kinds understood by the render farm. Reveal images are pre-pinned
// per pool and tier, only customizations need a render.
const (
	JobKindCustomize = "customize"
)

// Config holds the configuration for the NATS JetStream render queue
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	JobTimeout     time.Duration
}

// JobSpec describes a character image to render
type JobSpec struct {
	// Kind selects the render pipeline on the farm
	Kind string

	// TokenAddress is the mint address of the token being rendered
	TokenAddress string

	// Skills are the character skills for customize jobs
	Skills *domain.Skills

	// Traits are the cosmetic traits for customize jobs
	Traits *domain.CosmeticTraits
}

// Result holds the outcome of a completed render job
type Result struct {
	// ImageURL points at the rendered image, ready for download
	ImageURL string
}

// jobMessage is the wire format of a render job
type jobMessage struct {
	JobID         string                 `json:"job_id"`
	Kind          string                 `json:"kind"`
	TokenAddress  string                 `json:"token_address"`
	Skills        *domain.Skills         `json:"skills,omitempty"`
	Traits        *domain.CosmeticTraits `json:"traits,omitempty"`
	ResultSubject string                 `json:"result_subject"`
}

// resultMessage is the wire format of a render result
type resultMessage struct {
	JobID    string `json:"job_id"`
	ImageURL string `json:"image_url"`
	Error    string `json:"error,omitempty"`
}

// Job is a handle to a submitted render job
//
//go:generate mockgen -source=queue.go -destination=../mocks/render_queue.go -package=mocks -mock_names=Job=MockRenderJob,Queue=MockRenderQueue
type Job interface {
	// Await blocks until the render farm reports a result, the job
	// times out, or the context is canceled
	Await(ctx context.Context) (*Result, error)
}

// Queue defines the interface for dispatching render jobs to the render farm
type Queue interface {
	// Submit publishes a render job and returns a handle to await its result
	Submit(ctx context.Context, spec JobSpec) (Job, error)

	// Close stops the result consumer and closes the connection
	Close()
}

type queue struct {
	nc           adapter.NatsConn
	js           adapter.JetStream
	json         adapter.JSON
	streamName   string
	jobPrefix    string
	resultPrefix string
	jobTimeout   time.Duration
	consumeCtx   adapter.ConsumeContext

	mu      sync.Mutex
	pending map[string]chan *resultMessage
}

// NewQueue creates a new render queue backed by NATS JetStream. Each queue
// listens on its own result subject tree so concurrent workers never see
// each other's results.
func NewQueue(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (Queue, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	queueID := uuid.NewString()
	q := &queue{
		nc:           nc,
		js:           js,
		json:         jsonAdapter,
		streamName:   cfg.StreamName,
		jobPrefix:    fmt.Sprintf("%s.jobs", cfg.SubjectPrefix),
		resultPrefix: fmt.Sprintf("%s.results.%s", cfg.SubjectPrefix, queueID),
		jobTimeout:   cfg.JobTimeout,
		pending:      make(map[string]chan *resultMessage),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	consumer, err := js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
		Name:              fmt.Sprintf("render-results-%s", queueID),
		FilterSubject:     fmt.Sprintf("%s.>", q.resultPrefix),
		AckPolicy:         jetstream.AckExplicitPolicy,
		InactiveThreshold: 5 * time.Minute,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create result consumer: %w", err)
	}

	consumeCtx, err := consumer.Consume(q.handleResult)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to start result consumer: %w", err)
	}
	q.consumeCtx = consumeCtx

	return q, nil
}

// Submit publishes a render job and returns a handle to await its result
func (q *queue) Submit(ctx context.Context, spec JobSpec) (Job, error) {
	jobID := uuid.NewString()

	msg := jobMessage{
		JobID:         jobID,
		Kind:          spec.Kind,
		TokenAddress:  spec.TokenAddress,
		Skills:        spec.Skills,
		Traits:        spec.Traits,
		ResultSubject: fmt.Sprintf("%s.%s", q.resultPrefix, jobID),
	}

	data, err := q.json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal render job: %w", err)
	}

	results := make(chan *resultMessage, 1)
	q.mu.Lock()
	q.pending[jobID] = results
	q.mu.Unlock()

	subject := fmt.Sprintf("%s.%s", q.jobPrefix, spec.Kind)
	if _, err := q.js.Publish(ctx, subject, data); err != nil {
		q.forget(jobID)
		return nil, fmt.Errorf("failed to publish render job: %w", err)
	}

	logger.DebugCtx(ctx, "Submitted render job",
		zap.String("job_id", jobID),
		zap.String("kind", spec.Kind),
		zap.String("token_address", spec.TokenAddress))

	return &job{queue: q, jobID: jobID, results: results}, nil
}

// handleResult dispatches a render farm result to the job waiting on it
func (q *queue) handleResult(msg adapter.Message) {
	var result resultMessage
	if err := q.json.Unmarshal(msg.Data(), &result); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal render result"))
		// Malformed message, no point in redelivery
		_ = msg.Term()
		return
	}

	q.mu.Lock()
	results, ok := q.pending[result.JobID]
	q.mu.Unlock()

	if !ok {
		// The job already timed out or was canceled
		logger.Warn("Received result for unknown render job", zap.String("job_id", result.JobID))
		_ = msg.Ack()
		return
	}

	results <- &result
	_ = msg.Ack()
}

// forget removes a job from the pending map
func (q *queue) forget(jobID string) {
	q.mu.Lock()
	delete(q.pending, jobID)
	q.mu.Unlock()
}

// Close stops the result consumer and closes the connection
func (q *queue) Close() {
	if q.consumeCtx != nil {
		q.consumeCtx.Stop()
	}
	if q.nc != nil {
		q.nc.Close()
	}
}

type job struct {
	queue   *queue
	jobID   string
	results chan *resultMessage
}

// Await blocks until the render farm reports a result, the job times out,
// or the context is canceled
func (j *job) Await(ctx context.Context) (*Result, error) {
	defer j.queue.forget(j.jobID)

	timer := time.NewTimer(j.queue.jobTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, fmt.Errorf("%w: render job %s timed out after %s", domain.ErrRenderFailed, j.jobID, j.queue.jobTimeout)
	case result := <-j.results:
		if result.Error != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrRenderFailed, result.Error)
		}
		return &Result{ImageURL: result.ImageURL}, nil
	}
}

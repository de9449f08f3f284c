// Package job runs background work on asynq, backed by the same Redis
// the API uses for caching.
package job

import (
	"github.com/deppfellow/loan-backoffice/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the asynq client (enqueue) and server (worker execution).
type JobService struct {
	// Client enqueues tasks into Redis.
	Client *asynq.Client

	// server pulls tasks from Redis and runs their handlers.
	server *asynq.Server
	logger *zerolog.Logger

	// emailClient and recipient are set by InitHandlers.
	emailClient noticeSender
	recipient   string
}

// NewJobService creates a JobService using the Redis address from cfg.
//
// Concurrency is 10 workers, shared across queues by weight
// (critical 6, default 3, low 1).
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		logger: logger,
	}
}

// Mux routes every task type to its handler.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskFinalApprovalNotice, j.handleFinalApprovalNoticeTask)
	return mux
}

// Start runs the worker server in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(j.Mux())
}

// Stop waits for in-flight tasks, then closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("closing job client")
	}
}

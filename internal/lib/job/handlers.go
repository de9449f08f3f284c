package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/loan-backoffice/internal/config"
	"github.com/deppfellow/loan-backoffice/internal/lib/email"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// noticeSender is the part of email.Client the handlers need.
type noticeSender interface {
	SendFinalApprovalNotice(to string, notice model.FinalApprovalNotice) error
}

// InitHandlers builds the email client and reads the notice recipient.
// It must run before Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emailClient = email.NewClient(cfg, logger)
	j.recipient = cfg.Notification.FinalApprovalRecipient
}

func (j *JobService) handleFinalApprovalNoticeTask(ctx context.Context, t *asynq.Task) error {
	var notice model.FinalApprovalNotice
	if err := json.Unmarshal(t.Payload(), &notice); err != nil {
		return fmt.Errorf("failed to unmarshal final approval notice payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", "final_approval_notice").
		Int64("application_container_id", notice.ApplicationContainerID).
		Int64("history_id", notice.HistoryID).
		Logger()

	logger.Info().Msg("Processing final approval notice task")

	if err := j.emailClient.SendFinalApprovalNotice(j.recipient, notice); err != nil {
		logger.Error().Err(err).Msg("Failed to send final approval notice")
		return err
	}

	logger.Info().Msg("Successfully sent final approval notice")
	return nil
}

// EnqueueFinalApprovalNotice queues the notice email. It is a no-op when
// no recipient is configured.
func (j *JobService) EnqueueFinalApprovalNotice(ctx context.Context, notice model.FinalApprovalNotice) error {
	if j.recipient == "" {
		j.logger.Debug().Msg("no final approval recipient configured, skipping notice")
		return nil
	}

	task, err := NewFinalApprovalNoticeTask(notice)
	if err != nil {
		return fmt.Errorf("building final approval notice task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueueing final approval notice: %w", err)
	}

	j.logger.Debug().Str("task_id", info.ID).Str("queue", info.Queue).Msg("final approval notice enqueued")
	return nil
}

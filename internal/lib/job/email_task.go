package job

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/hibiken/asynq"
)

const (
	// TaskFinalApprovalNotice is the job type name stored in Redis.
	// Asynq routes tasks to handlers by this string.
	TaskFinalApprovalNotice = "email:final_approval_notice"
)

// NewFinalApprovalNoticeTask constructs an Asynq task telling underwriting
// about a saved final approval step.
//
// The notice is serialized to JSON and the task is configured with:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("default"): send into the "default" queue
//   - Timeout(30s): kill the task if the handler runs longer than 30 seconds
func NewFinalApprovalNoticeTask(notice model.FinalApprovalNotice) (*asynq.Task, error) {
	payload, err := json.Marshal(notice)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskFinalApprovalNotice,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

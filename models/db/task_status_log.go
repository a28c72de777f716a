package dbmodels

import (
	"github.com/pkg/errors"
	"store-ops-backend/models"
)

// TaskStatusLog is an append-only audit row for execution status transitions.
type TaskStatusLog struct {
	BaseModel
	TaskExecutionID string            `gorm:"type:varchar(36);not null;index" json:"task_execution_id"`
	UserID          string            `gorm:"type:varchar(36);not null" json:"user_id"`
	OldStatus       models.TaskStatus `gorm:"type:varchar(20)" json:"old_status"`
	NewStatus       models.TaskStatus `gorm:"type:varchar(20)" json:"new_status"`
	Notes           string            `gorm:"type:text" json:"notes"`
}

func (l *TaskStatusLog) Validate() error {
	if l.TaskExecutionID == "" {
		return errors.New("status log execution reference is required")
	}
	if l.UserID == "" {
		return errors.New("status log user reference is required")
	}
	return nil
}

package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"store-ops-backend/models"
)

// TaskExecution is the per-day instance of a task template.
// The composite unique index backs the one-execution-per-(template, day, user)
// invariant; UserID stays "" for unassigned rows so the index covers them too.
type TaskExecution struct {
	BaseModel
	ExecutionDate time.Time         `gorm:"type:date;uniqueIndex:uniq_execution_per_day" json:"execution_date"`
	TaskID        string            `gorm:"type:varchar(36);not null;uniqueIndex:uniq_execution_per_day" json:"task_id"`
	Task          *Task             `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	UserID        string            `gorm:"type:varchar(36);uniqueIndex:uniq_execution_per_day" json:"user_id,omitempty"`
	User          *StaffUser        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status        models.TaskStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PhotoEvidence string            `gorm:"type:text" json:"photo_evidence"`
	Notes         string            `gorm:"type:text" json:"notes"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
}

func (e *TaskExecution) Validate() error {
	if e.TaskID == "" {
		return errors.New("execution task reference is required")
	}
	if e.ExecutionDate.IsZero() {
		return errors.New("execution date is required")
	}
	if !e.Status.IsValid() {
		return errors.New("unknown execution status")
	}
	return nil
}

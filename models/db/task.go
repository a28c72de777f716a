package dbmodels

import (
	"github.com/pkg/errors"
)

// Task is a reusable template, materialized into one TaskExecution per day.
type Task struct {
	BaseModel
	Name        string      `gorm:"type:varchar(100)" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	ModuleID    string      `gorm:"type:varchar(36);index" json:"module_id"`
	Module      *TaskModule `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
}

func (t *Task) Validate() error {
	if t.Name == "" {
		return errors.New("task name is required")
	}
	if t.ModuleID == "" {
		return errors.New("task module reference is required")
	}
	return nil
}

package dbmodels

import (
	"github.com/pkg/errors"
)

// TaskModule is a named time-of-day grouping of recurring task templates
// (morning, noon, evening, closing). Start/end are "HH:mm:ss" strings,
// empty when the module is not bound to a time window.
type TaskModule struct {
	BaseModel
	Name        string `gorm:"type:varchar(50)" json:"name"`
	Description string `gorm:"type:varchar(200)" json:"description"`
	StartTime   string `gorm:"type:varchar(8)" json:"start_time"`
	EndTime     string `gorm:"type:varchar(8)" json:"end_time"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	Tasks       []Task `gorm:"foreignKey:ModuleID" json:"tasks,omitempty"`
}

func (m *TaskModule) Validate() error {
	if m.Name == "" {
		return errors.New("module name is required")
	}
	return nil
}

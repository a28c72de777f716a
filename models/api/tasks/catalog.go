package tasksapimodels

import (
	"time"

	"github.com/pkg/errors"
	"store-ops-backend/lib/utils/dateutils"
	dbmodels "store-ops-backend/models/db"
)

type TaskModuleData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (r TaskModuleData) Validate() error {
	if r.Name == "" {
		return errors.New("module name is required")
	}
	if r.StartTime != "" && !dateutils.ValidTimeOfDay(r.StartTime) {
		return errors.New("start_time must be HH:mm:ss")
	}
	if r.EndTime != "" && !dateutils.ValidTimeOfDay(r.EndTime) {
		return errors.New("end_time must be HH:mm:ss")
	}
	if r.StartTime != "" && r.EndTime != "" && r.StartTime > r.EndTime {
		return errors.New("start_time must not be after end_time")
	}
	return nil
}

type ModulesByTimeQuery struct {
	CurrentTime string `json:"current_time"`
}

func (r ModulesByTimeQuery) Validate() error {
	if r.CurrentTime != "" && !dateutils.ValidTimeOfDay(r.CurrentTime) {
		return errors.New("current_time must be HH:mm:ss")
	}
	return nil
}

type TaskData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ModuleID    string `json:"module_id"`
}

func (r TaskData) Validate() error {
	if r.Name == "" {
		return errors.New("task name is required")
	}
	if r.ModuleID == "" {
		return errors.New("module_id is required")
	}
	return nil
}

// TaskUpdateData carries optional fields; nil means "leave unchanged".
type TaskUpdateData struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ModuleID    *string `json:"module_id,omitempty"`
}

func (r TaskUpdateData) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return errors.New("task name must not be empty")
	}
	if r.ModuleID != nil && *r.ModuleID == "" {
		return errors.New("module_id must not be empty")
	}
	return nil
}

type TaskModuleView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Tasks []TaskView `json:"tasks,omitempty"`
}

type TaskView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ModuleID    string    `json:"module_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func TaskModuleConvert(rec dbmodels.TaskModule, withTasks bool) TaskModuleView {
	view := TaskModuleView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		StartTime:   rec.StartTime,
		EndTime:     rec.EndTime,
		IsActive:    rec.IsActive,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if withTasks {
		view.Tasks = make([]TaskView, 0, len(rec.Tasks))
		for _, task := range rec.Tasks {
			view.Tasks = append(view.Tasks, TaskConvert(task))
		}
	}
	return view
}

func TaskConvert(rec dbmodels.Task) TaskView {
	return TaskView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		ModuleID:    rec.ModuleID,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

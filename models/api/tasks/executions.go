package tasksapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"store-ops-backend/lib/utils/dateutils"
	"store-ops-backend/models"
	apimodels "store-ops-backend/models/api"
	dbmodels "store-ops-backend/models/db"
)

type CreateExecutionRequest struct {
	TaskID        string `json:"task_id"`
	ExecutionDate string `json:"execution_date"`
	UserID        string `json:"user_id"`
}

func (r CreateExecutionRequest) Validate() error {
	if r.TaskID == "" {
		return errors.New("task_id is required")
	}
	if _, err := dateutils.ParseDate(r.ExecutionDate); err != nil {
		return err
	}
	return nil
}

type SubmitExecutionRequest struct {
	Status    models.TaskStatus `json:"status"`
	PhotoURLs []string          `json:"photo_urls"`
	Notes     string            `json:"notes"`
}

func (r SubmitExecutionRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("unknown task status")
	}
	if len(r.PhotoURLs) > models.MaxTaskPhotoCount {
		return errors.Errorf("at most %d photos are allowed", models.MaxTaskPhotoCount)
	}
	return nil
}

// FilteredPhotoURLs drops empty entries and trims the rest.
func (r SubmitExecutionRequest) FilteredPhotoURLs() []string {
	valid := make([]string, 0, len(r.PhotoURLs))
	for _, url := range r.PhotoURLs {
		url = strings.TrimSpace(url)
		if url != "" {
			valid = append(valid, url)
		}
	}
	return valid
}

type ExecutionsQuery struct {
	apimodels.Pagination
	ExecutionDate string            `json:"execution_date"`
	ModuleID      string            `json:"module_id"`
	UserID        string            `json:"user_id"`
	Status        models.TaskStatus `json:"status"`
}

func (r ExecutionsQuery) Validate() error {
	if _, err := dateutils.ParseDate(r.ExecutionDate); err != nil {
		return err
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.New("unknown task status")
	}
	return nil
}

type DailyModulesQuery struct {
	Date string `json:"date"`
}

func (r DailyModulesQuery) Validate() error {
	if r.Date == "" {
		return nil
	}
	_, err := dateutils.ParseDate(r.Date)
	return err
}

type ExecutionView struct {
	ID            string            `json:"id"`
	ExecutionDate string            `json:"execution_date"`
	TaskID        string            `json:"task_id"`
	Task          *TaskView         `json:"task,omitempty"`
	Status        models.TaskStatus `json:"status"`
	UserID        string            `json:"user_id,omitempty"`
	User          *ExecutorView     `json:"user,omitempty"`
	PhotoEvidence string            `json:"photo_evidence"`
	Notes         string            `json:"notes"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type ExecutorView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// DailyModuleView groups a day's executions under their module for the
// mobile checklist screen.
type DailyModuleView struct {
	TaskModuleView
	Tasks []DailyTaskView `json:"tasks"`
}

type DailyTaskView struct {
	TaskView
	Execution ExecutionView `json:"execution"`
}

type DailyCompletionView struct {
	Date       string          `json:"date"`
	Summary    CompletionStat  `json:"summary"`
	Modules    []ModuleStat    `json:"module_stats"`
	Executions []ExecutionView `json:"executions"`
}

type CompletionStat struct {
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	InProgress     int    `json:"in_progress"`
	Pending        int    `json:"pending"`
	Overdue        int    `json:"overdue"`
	CompletionRate string `json:"completion_rate"`
}

type ModuleStat struct {
	ModuleID   string `json:"module_id"`
	ModuleName string `json:"module_name"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"in_progress"`
	Pending    int    `json:"pending"`
	Overdue    int    `json:"overdue"`
}

type UploadResponse struct {
	Files []string `json:"files"`
}

func ExecutionConvert(rec dbmodels.TaskExecution) ExecutionView {
	view := ExecutionView{
		ID:            rec.ID,
		ExecutionDate: dateutils.FormatDate(rec.ExecutionDate),
		TaskID:        rec.TaskID,
		Status:        rec.Status,
		UserID:        rec.UserID,
		PhotoEvidence: rec.PhotoEvidence,
		Notes:         rec.Notes,
		CompletedAt:   rec.CompletedAt,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if rec.Task != nil {
		task := TaskConvert(*rec.Task)
		view.Task = &task
	}
	if rec.User != nil {
		view.User = &ExecutorView{
			ID:    rec.User.ID,
			Name:  rec.User.Name,
			Phone: rec.User.Phone,
		}
	}
	return view
}

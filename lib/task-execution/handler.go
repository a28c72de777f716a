package taskexecutionprovider

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"store-ops-backend/db"
	modulestore "store-ops-backend/lib/task-module/store"
	"store-ops-backend/lib/task-execution/store"
	taskstore "store-ops-backend/lib/task/store"
	"store-ops-backend/lib/utils/dateutils"
	"store-ops-backend/models"
	apimodels "store-ops-backend/models/api"
	tasksapimodels "store-ops-backend/models/api/tasks"
	"store-ops-backend/models/apperrors"
	dbmodels "store-ops-backend/models/db"
)

type Provider interface {
	GenerateDaily(day string) (created []tasksapimodels.ExecutionView, err error)
	Create(request tasksapimodels.CreateExecutionRequest) (view tasksapimodels.ExecutionView, err error)
	Get(id string) (view tasksapimodels.ExecutionView, err error)
	Find(request tasksapimodels.ExecutionsQuery) (page apimodels.PagedData, err error)
	Submit(id, userID string, request tasksapimodels.SubmitExecutionRequest) (view tasksapimodels.ExecutionView, err error)
	DailyModules(request tasksapimodels.DailyModulesQuery) (list []tasksapimodels.DailyModuleView, err error)
	DailyCompletion(day string) (view tasksapimodels.DailyCompletionView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       store.NewInstance(db.DB),
		taskStore:   taskstore.NewInstance(db.DB),
		moduleStore: modulestore.NewInstance(db.DB),
	}
}

type impl struct {
	store       store.Provider
	taskStore   taskstore.Provider
	moduleStore modulestore.Provider
}

// GenerateDaily ensures every template of every active module has exactly one
// execution row for the given day and returns only the rows created by this
// call. A concurrent generator losing the insert race is treated as "already
// exists" and skipped.
func (i impl) GenerateDaily(day string) ([]tasksapimodels.ExecutionView, error) {
	date, err := dateutils.ParseDate(day)
	if err != nil {
		return nil, apperrors.NewBadRequest(err.Error())
	}
	modules, err := i.moduleStore.ListActiveWithTasks()
	if err != nil {
		return nil, err
	}
	created := []tasksapimodels.ExecutionView{}
	for _, module := range modules {
		for _, task := range module.Tasks {
			rec := dbmodels.TaskExecution{
				ExecutionDate: date,
				TaskID:        task.ID,
				Status:        models.TaskStatusPending,
			}
			id, err := i.store.Create(rec)
			if errors.Is(err, store.ErrDuplicate) {
				continue
			}
			if err != nil {
				return nil, err
			}
			full, err := i.store.GetByID(id)
			if err != nil {
				return nil, err
			}
			if full != nil {
				created = append(created, tasksapimodels.ExecutionConvert(*full))
			}
		}
	}
	log.
		WithField("day", day).
		WithField("created", len(created)).
		Info("daily executions generated")
	return created, nil
}

func (i impl) Create(request tasksapimodels.CreateExecutionRequest) (tasksapimodels.ExecutionView, error) {
	date, err := dateutils.ParseDate(request.ExecutionDate)
	if err != nil {
		return tasksapimodels.ExecutionView{}, apperrors.NewBadRequest(err.Error())
	}
	task, err := i.taskStore.GetByID(request.TaskID)
	if err != nil {
		return tasksapimodels.ExecutionView{}, err
	}
	if task == nil {
		return tasksapimodels.ExecutionView{}, apperrors.NewNotFound("task not found")
	}
	rec := dbmodels.TaskExecution{
		ExecutionDate: date,
		TaskID:        request.TaskID,
		UserID:        request.UserID,
		Status:        models.TaskStatusPending,
	}
	id, err := i.store.Create(rec)
	if errors.Is(err, store.ErrDuplicate) {
		return tasksapimodels.ExecutionView{}, apperrors.NewConflict("execution already exists for this date")
	}
	if err != nil {
		return tasksapimodels.ExecutionView{}, err
	}
	log.
		WithField("task_id", request.TaskID).
		WithField("day", request.ExecutionDate).
		WithField("rec_id", id).
		Info("execution created")
	return i.Get(id)
}

func (i impl) Get(id string) (tasksapimodels.ExecutionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return tasksapimodels.ExecutionView{}, err
	}
	if rec == nil {
		return tasksapimodels.ExecutionView{}, apperrors.NewNotFound("execution not found")
	}
	return tasksapimodels.ExecutionConvert(*rec), nil
}

func (i impl) Find(request tasksapimodels.ExecutionsQuery) (apimodels.PagedData, error) {
	page, limit := request.GetPage()
	recList, total, err := i.store.Find(store.ExecutionsFilter{
		Day:      request.ExecutionDate,
		ModuleID: request.ModuleID,
		UserID:   request.UserID,
		Status:   request.Status,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return apimodels.PagedData{}, err
	}
	list := make([]tasksapimodels.ExecutionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, tasksapimodels.ExecutionConvert(rec))
	}
	return apimodels.NewPagedData(list, total, page, limit), nil
}

// Submit records an execution result. Completed rows are immutable; the
// update and its audit log row commit atomically.
func (i impl) Submit(id, userID string, request tasksapimodels.SubmitExecutionRequest) (tasksapimodels.ExecutionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return tasksapimodels.ExecutionView{}, err
	}
	if rec == nil {
		return tasksapimodels.ExecutionView{}, apperrors.NewNotFound("execution not found")
	}
	if rec.Status == models.TaskStatusCompleted {
		return tasksapimodels.ExecutionView{}, apperrors.NewBadRequest("task is already completed")
	}

	updMap := map[string]interface{}{
		"status":  request.Status,
		"user_id": userID,
	}
	if request.Notes != "" {
		updMap["notes"] = request.Notes
	}
	if photos := request.FilteredPhotoURLs(); len(photos) > 0 {
		updMap["photo_evidence"] = strings.Join(photos, ",")
	}
	if request.Status == models.TaskStatusCompleted {
		updMap["completed_at"] = dateutils.Now()
	}

	err = i.store.UpdateWithLog(id, updMap, dbmodels.TaskStatusLog{
		TaskExecutionID: id,
		UserID:          userID,
		OldStatus:       rec.Status,
		NewStatus:       request.Status,
		Notes:           request.Notes,
	})
	if err != nil {
		return tasksapimodels.ExecutionView{}, err
	}
	log.
		WithField("rec_id", id).
		WithField("user_id", userID).
		WithField("status", request.Status).
		Info("execution submitted")
	return i.Get(id)
}

// DailyModules returns the checklist for the given day grouped by module,
// generating the day's executions first if none exist yet.
func (i impl) DailyModules(request tasksapimodels.DailyModulesQuery) ([]tasksapimodels.DailyModuleView, error) {
	day := request.Date
	if day == "" {
		day = dateutils.TodayStr()
	}
	count, err := i.store.CountByDay(day)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		_, err = i.GenerateDaily(day)
		if err != nil {
			return nil, err
		}
	}
	recList, err := i.store.FindByDay(day)
	if err != nil {
		return nil, err
	}
	return groupByModule(recList), nil
}

func (i impl) DailyCompletion(day string) (tasksapimodels.DailyCompletionView, error) {
	if day == "" {
		day = dateutils.TodayStr()
	}
	if _, err := dateutils.ParseDate(day); err != nil {
		return tasksapimodels.DailyCompletionView{}, apperrors.NewBadRequest(err.Error())
	}
	recList, err := i.store.FindByDay(day)
	if err != nil {
		return tasksapimodels.DailyCompletionView{}, err
	}

	view := tasksapimodels.DailyCompletionView{
		Date:       day,
		Modules:    []tasksapimodels.ModuleStat{},
		Executions: make([]tasksapimodels.ExecutionView, 0, len(recList)),
	}
	moduleIdx := map[string]int{}
	for _, rec := range recList {
		view.Executions = append(view.Executions, tasksapimodels.ExecutionConvert(rec))
		countStatus(&view.Summary, rec.Status)

		if rec.Task == nil || rec.Task.Module == nil {
			continue
		}
		idx, ok := moduleIdx[rec.Task.ModuleID]
		if !ok {
			idx = len(view.Modules)
			moduleIdx[rec.Task.ModuleID] = idx
			view.Modules = append(view.Modules, tasksapimodels.ModuleStat{
				ModuleID:   rec.Task.ModuleID,
				ModuleName: rec.Task.Module.Name,
			})
		}
		stat := &view.Modules[idx]
		stat.Total++
		switch rec.Status {
		case models.TaskStatusCompleted:
			stat.Completed++
		case models.TaskStatusInProgress:
			stat.InProgress++
		case models.TaskStatusOverdue:
			stat.Overdue++
		default:
			stat.Pending++
		}
	}
	view.Summary.CompletionRate = completionRate(view.Summary.Completed, view.Summary.Total)
	return view, nil
}

func countStatus(stat *tasksapimodels.CompletionStat, status models.TaskStatus) {
	stat.Total++
	switch status {
	case models.TaskStatusCompleted:
		stat.Completed++
	case models.TaskStatusInProgress:
		stat.InProgress++
	case models.TaskStatusOverdue:
		stat.Overdue++
	default:
		stat.Pending++
	}
}

func completionRate(completed, total int) string {
	if total == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(completed)/float64(total)*100)
}

// groupByModule folds a day's executions, already ordered by module window
// and template age, into per-module checklist views.
func groupByModule(recList []dbmodels.TaskExecution) []tasksapimodels.DailyModuleView {
	list := []tasksapimodels.DailyModuleView{}
	moduleIdx := map[string]int{}
	for _, rec := range recList {
		if rec.Task == nil || rec.Task.Module == nil {
			continue
		}
		idx, ok := moduleIdx[rec.Task.ModuleID]
		if !ok {
			idx = len(list)
			moduleIdx[rec.Task.ModuleID] = idx
			list = append(list, tasksapimodels.DailyModuleView{
				TaskModuleView: tasksapimodels.TaskModuleConvert(*rec.Task.Module, false),
				Tasks:          []tasksapimodels.DailyTaskView{},
			})
		}
		list[idx].Tasks = append(list[idx].Tasks, tasksapimodels.DailyTaskView{
			TaskView:  tasksapimodels.TaskConvert(*rec.Task),
			Execution: tasksapimodels.ExecutionConvert(rec),
		})
	}
	return list
}

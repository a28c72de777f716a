package taskexecutionprovider

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"store-ops-backend/lib/task-execution/store"
	"store-ops-backend/lib/utils/dateutils"
	"store-ops-backend/models"
	tasksapimodels "store-ops-backend/models/api/tasks"
	"store-ops-backend/models/apperrors"
	dbmodels "store-ops-backend/models/db"
)

type fakeModuleStore struct {
	modules []dbmodels.TaskModule
}

func (f *fakeModuleStore) Create(rec dbmodels.TaskModule) (string, error) { return rec.ID, nil }
func (f *fakeModuleStore) GetByID(id string, withTasks bool) (*dbmodels.TaskModule, error) {
	for idx := range f.modules {
		if f.modules[idx].ID == id {
			return &f.modules[idx], nil
		}
	}
	return nil, nil
}
func (f *fakeModuleStore) List() ([]dbmodels.TaskModule, error) { return f.modules, nil }
func (f *fakeModuleStore) ListActiveWithTasks() ([]dbmodels.TaskModule, error) {
	list := []dbmodels.TaskModule{}
	for _, rec := range f.modules {
		if rec.IsActive {
			list = append(list, rec)
		}
	}
	return list, nil
}
func (f *fakeModuleStore) FindByTime(timeOfDay string) ([]dbmodels.TaskModule, error) {
	return nil, nil
}
func (f *fakeModuleStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeModuleStore) Delete(id string) error                               { return nil }

type fakeTaskStore struct {
	tasks map[string]dbmodels.Task
}

func (f *fakeTaskStore) Create(rec dbmodels.Task) (string, error) { return rec.ID, nil }
func (f *fakeTaskStore) GetByID(id string) (*dbmodels.Task, error) {
	if rec, ok := f.tasks[id]; ok {
		return &rec, nil
	}
	return nil, nil
}
func (f *fakeTaskStore) Find(moduleID string) ([]dbmodels.Task, error)         { return nil, nil }
func (f *fakeTaskStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeTaskStore) Delete(id string) error                                { return nil }

type fakeExecutionStore struct {
	recs   []dbmodels.TaskExecution
	logs   []dbmodels.TaskStatusLog
	nextID int

	tasks map[string]dbmodels.Task
}

func (f *fakeExecutionStore) Create(rec dbmodels.TaskExecution) (string, error) {
	day := dateutils.FormatDate(rec.ExecutionDate)
	for _, existing := range f.recs {
		if dateutils.FormatDate(existing.ExecutionDate) == day &&
			existing.TaskID == rec.TaskID && existing.UserID == rec.UserID {
			return "", store.ErrDuplicate
		}
	}
	f.nextID++
	rec.ID = fmt.Sprintf("exec-%d", f.nextID)
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeExecutionStore) GetByID(id string) (*dbmodels.TaskExecution, error) {
	for idx := range f.recs {
		if f.recs[idx].ID == id {
			rec := f.recs[idx]
			if task, ok := f.tasks[rec.TaskID]; ok {
				rec.Task = &task
			}
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeExecutionStore) CountByDay(day string) (int64, error) {
	list, _ := f.FindByDay(day)
	return int64(len(list)), nil
}

func (f *fakeExecutionStore) FindByDay(day string) ([]dbmodels.TaskExecution, error) {
	list := []dbmodels.TaskExecution{}
	for _, rec := range f.recs {
		if dateutils.FormatDate(rec.ExecutionDate) == day {
			if task, ok := f.tasks[rec.TaskID]; ok {
				rec.Task = &task
			}
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeExecutionStore) Find(filter store.ExecutionsFilter) ([]dbmodels.TaskExecution, int64, error) {
	list, _ := f.FindByDay(filter.Day)
	return list, int64(len(list)), nil
}

func (f *fakeExecutionStore) UpdateWithLog(id string, updMap map[string]interface{}, logRec dbmodels.TaskStatusLog) error {
	for idx := range f.recs {
		if f.recs[idx].ID != id {
			continue
		}
		if v, ok := updMap["status"]; ok {
			f.recs[idx].Status = v.(models.TaskStatus)
		}
		if v, ok := updMap["user_id"]; ok {
			f.recs[idx].UserID = v.(string)
		}
		if v, ok := updMap["notes"]; ok {
			f.recs[idx].Notes = v.(string)
		}
		if v, ok := updMap["photo_evidence"]; ok {
			f.recs[idx].PhotoEvidence = v.(string)
		}
		if v, ok := updMap["completed_at"]; ok {
			t := v.(time.Time)
			f.recs[idx].CompletedAt = &t
		}
		f.logs = append(f.logs, logRec)
		return nil
	}
	return nil
}

func newFixture() (impl, *fakeExecutionStore) {
	module := dbmodels.TaskModule{
		BaseModel: dbmodels.BaseModel{ID: "mod-morning"},
		Name:      "Morning prep",
		StartTime: "08:00:00",
		EndTime:   "11:00:00",
		IsActive:  true,
	}
	closed := dbmodels.TaskModule{
		BaseModel: dbmodels.BaseModel{ID: "mod-off"},
		Name:      "Disabled",
		IsActive:  false,
	}
	tasks := map[string]dbmodels.Task{
		"task-coffee": {BaseModel: dbmodels.BaseModel{ID: "task-coffee"}, Name: "Start coffee machine", ModuleID: "mod-morning", Module: &module},
		"task-floor":  {BaseModel: dbmodels.BaseModel{ID: "task-floor"}, Name: "Mop the floor", ModuleID: "mod-morning", Module: &module},
	}
	module.Tasks = []dbmodels.Task{tasks["task-coffee"], tasks["task-floor"]}
	closed.Tasks = []dbmodels.Task{{BaseModel: dbmodels.BaseModel{ID: "task-hidden"}, ModuleID: "mod-off"}}

	execStore := &fakeExecutionStore{tasks: tasks}
	handler := impl{
		store:       execStore,
		taskStore:   &fakeTaskStore{tasks: tasks},
		moduleStore: &fakeModuleStore{modules: []dbmodels.TaskModule{module, closed}},
	}
	return handler, execStore
}

func TestGenerateDaily(t *testing.T) {
	t.Run(`creates one row per active template`, func(t *testing.T) {
		handler, execStore := newFixture()
		created, err := handler.GenerateDaily("2024-01-15")
		require.Nil(t, err)
		require.Len(t, created, 2)
		require.Len(t, execStore.recs, 2)
		for _, view := range created {
			require.Equal(t, models.TaskStatusPending, view.Status)
			require.Equal(t, "2024-01-15", view.ExecutionDate)
		}
	})

	t.Run(`second run creates nothing`, func(t *testing.T) {
		handler, execStore := newFixture()
		_, err := handler.GenerateDaily("2024-01-15")
		require.Nil(t, err)
		created, err := handler.GenerateDaily("2024-01-15")
		require.Nil(t, err)
		require.Empty(t, created)
		require.Len(t, execStore.recs, 2)
	})

	t.Run(`different days do not collide`, func(t *testing.T) {
		handler, execStore := newFixture()
		_, err := handler.GenerateDaily("2024-01-15")
		require.Nil(t, err)
		created, err := handler.GenerateDaily("2024-01-16")
		require.Nil(t, err)
		require.Len(t, created, 2)
		require.Len(t, execStore.recs, 4)
	})

	t.Run(`rejects malformed day`, func(t *testing.T) {
		handler, _ := newFixture()
		_, err := handler.GenerateDaily("Jan 15")
		require.NotNil(t, err)
		require.True(t, apperrors.IsStatus(err, 400))
	})
}

func TestSubmit(t *testing.T) {
	t.Run(`stores evidence and appends the status log`, func(t *testing.T) {
		handler, execStore := newFixture()
		created, err := handler.GenerateDaily("2024-01-15")
		require.Nil(t, err)
		id := created[0].ID

		view, err := handler.Submit(id, "user-1", tasksapimodels.SubmitExecutionRequest{
			Status:    models.TaskStatusCompleted,
			PhotoURLs: []string{" http://s3/a.jpg ", "", "http://s3/b.jpg"},
			Notes:     "done",
		})
		require.Nil(t, err)
		require.Equal(t, models.TaskStatusCompleted, view.Status)
		require.Equal(t, "http://s3/a.jpg,http://s3/b.jpg", view.PhotoEvidence)
		require.Equal(t, "user-1", view.UserID)

		require.Len(t, execStore.logs, 1)
		require.Equal(t, id, execStore.logs[0].TaskExecutionID)
		require.Equal(t, models.TaskStatusPending, execStore.logs[0].OldStatus)
		require.Equal(t, models.TaskStatusCompleted, execStore.logs[0].NewStatus)
	})

	t.Run(`empty notes keep the previous ones`, func(t *testing.T) {
		handler, _ := newFixture()
		created, err := handler.GenerateDaily("2024-01-15")
		require.Nil(t, err)
		id := created[0].ID

		_, err = handler.Submit(id, "user-1", tasksapimodels.SubmitExecutionRequest{
			Status: models.TaskStatusInProgress,
			Notes:  "machine descaled",
		})
		require.Nil(t, err)

		view, err := handler.Submit(id, "user-1", tasksapimodels.SubmitExecutionRequest{
			Status: models.TaskStatusCompleted,
		})
		require.Nil(t, err)
		require.Equal(t, "machine descaled", view.Notes)
	})

	t.Run(`completed rows are immutable`, func(t *testing.T) {
		handler, execStore := newFixture()
		created, err := handler.GenerateDaily("2024-01-15")
		require.Nil(t, err)
		id := created[0].ID

		_, err = handler.Submit(id, "user-1", tasksapimodels.SubmitExecutionRequest{Status: models.TaskStatusCompleted})
		require.Nil(t, err)

		_, err = handler.Submit(id, "user-2", tasksapimodels.SubmitExecutionRequest{Status: models.TaskStatusInProgress})
		require.NotNil(t, err)
		require.True(t, apperrors.IsStatus(err, 400))
		// No second audit row for the rejected attempt.
		require.Len(t, execStore.logs, 1)
	})

	t.Run(`unknown execution`, func(t *testing.T) {
		handler, _ := newFixture()
		_, err := handler.Submit("missing", "user-1", tasksapimodels.SubmitExecutionRequest{Status: models.TaskStatusCompleted})
		require.True(t, apperrors.IsStatus(err, 404))
	})
}

func TestDailyCompletion(t *testing.T) {
	t.Run(`rate has two decimals`, func(t *testing.T) {
		handler, execStore := newFixture()
		execStore.tasks["task-extra"] = dbmodels.Task{BaseModel: dbmodels.BaseModel{ID: "task-extra"}, ModuleID: "mod-morning"}
		_, err := handler.GenerateDaily("2024-01-15")
		require.Nil(t, err)
		_, err = handler.Create(tasksapimodels.CreateExecutionRequest{TaskID: "task-extra", ExecutionDate: "2024-01-15"})
		require.Nil(t, err)
		_, err = handler.Submit(execStore.recs[0].ID, "user-1", tasksapimodels.SubmitExecutionRequest{Status: models.TaskStatusCompleted})
		require.Nil(t, err)

		view, err := handler.DailyCompletion("2024-01-15")
		require.Nil(t, err)
		require.Equal(t, 3, view.Summary.Total)
		require.Equal(t, 1, view.Summary.Completed)
		require.Equal(t, "33.33", view.Summary.CompletionRate)
	})

	t.Run(`empty day yields 0.00`, func(t *testing.T) {
		handler, _ := newFixture()
		view, err := handler.DailyCompletion("2024-06-01")
		require.Nil(t, err)
		require.Equal(t, 0, view.Summary.Total)
		require.Equal(t, "0.00", view.Summary.CompletionRate)
	})
}

func TestDailyModules(t *testing.T) {
	t.Run(`lazy generation and grouping`, func(t *testing.T) {
		handler, execStore := newFixture()
		list, err := handler.DailyModules(tasksapimodels.DailyModulesQuery{Date: "2024-01-15"})
		require.Nil(t, err)
		require.Len(t, execStore.recs, 2)
		require.Len(t, list, 1)
		require.Equal(t, "mod-morning", list[0].ID)
		require.Len(t, list[0].Tasks, 2)
		for _, task := range list[0].Tasks {
			require.Equal(t, models.TaskStatusPending, task.Execution.Status)
		}
	})
}

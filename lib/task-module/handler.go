package taskmoduleprovider

import (
	log "github.com/sirupsen/logrus"
	"store-ops-backend/db"
	"store-ops-backend/lib/task-module/store"
	tasksapimodels "store-ops-backend/models/api/tasks"
	"store-ops-backend/models/apperrors"
	dbmodels "store-ops-backend/models/db"
)

type Provider interface {
	Create(request tasksapimodels.TaskModuleData) (view tasksapimodels.TaskModuleView, err error)
	Get(id string) (view tasksapimodels.TaskModuleView, err error)
	List() (list []tasksapimodels.TaskModuleView, err error)
	FindByTime(request tasksapimodels.ModulesByTimeQuery) (list []tasksapimodels.TaskModuleView, err error)
	Update(id string, request tasksapimodels.TaskModuleData) (view tasksapimodels.TaskModuleView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: store.NewInstance(db.DB),
	}
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request tasksapimodels.TaskModuleData) (tasksapimodels.TaskModuleView, error) {
	rec := dbmodels.TaskModule{
		Name:        request.Name,
		Description: request.Description,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		IsActive:    true,
	}
	if request.IsActive != nil {
		rec.IsActive = *request.IsActive
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return tasksapimodels.TaskModuleView{}, err
	}
	log.
		WithField("module_name", rec.Name).
		WithField("rec_id", id).
		Info("task module created")
	return i.Get(id)
}

func (i impl) Get(id string) (tasksapimodels.TaskModuleView, error) {
	rec, err := i.store.GetByID(id, true)
	if err != nil {
		return tasksapimodels.TaskModuleView{}, err
	}
	if rec == nil {
		return tasksapimodels.TaskModuleView{}, apperrors.NewNotFound("task module not found")
	}
	return tasksapimodels.TaskModuleConvert(*rec, true), nil
}

func (i impl) List() ([]tasksapimodels.TaskModuleView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]tasksapimodels.TaskModuleView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, tasksapimodels.TaskModuleConvert(rec, false))
	}
	return list, nil
}

func (i impl) FindByTime(request tasksapimodels.ModulesByTimeQuery) ([]tasksapimodels.TaskModuleView, error) {
	timeOfDay := request.CurrentTime
	if timeOfDay == "" {
		timeOfDay = "00:00:00"
	}
	recList, err := i.store.FindByTime(timeOfDay)
	if err != nil {
		return nil, err
	}
	list := make([]tasksapimodels.TaskModuleView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, tasksapimodels.TaskModuleConvert(rec, true))
	}
	return list, nil
}

func (i impl) Update(id string, request tasksapimodels.TaskModuleData) (tasksapimodels.TaskModuleView, error) {
	rec, err := i.store.GetByID(id, false)
	if err != nil {
		return tasksapimodels.TaskModuleView{}, err
	}
	if rec == nil {
		return tasksapimodels.TaskModuleView{}, apperrors.NewNotFound("task module not found")
	}
	updMap := map[string]interface{}{
		"name":        request.Name,
		"description": request.Description,
		"start_time":  request.StartTime,
		"end_time":    request.EndTime,
	}
	if request.IsActive != nil {
		updMap["is_active"] = *request.IsActive
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return tasksapimodels.TaskModuleView{}, err
	}
	log.WithField("rec_id", id).Info("task module updated")
	return i.Get(id)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id, false)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("task module not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("task module deleted")
	return nil
}

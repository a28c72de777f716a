package taskprovider

import (
	log "github.com/sirupsen/logrus"
	"store-ops-backend/db"
	"store-ops-backend/lib/task/store"
	modulestore "store-ops-backend/lib/task-module/store"
	tasksapimodels "store-ops-backend/models/api/tasks"
	"store-ops-backend/models/apperrors"
	dbmodels "store-ops-backend/models/db"
)

type Provider interface {
	Create(request tasksapimodels.TaskData) (view tasksapimodels.TaskView, err error)
	Get(id string) (view tasksapimodels.TaskView, err error)
	Find(moduleID string) (list []tasksapimodels.TaskView, err error)
	Update(id string, request tasksapimodels.TaskUpdateData) (view tasksapimodels.TaskView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       store.NewInstance(db.DB),
		moduleStore: modulestore.NewInstance(db.DB),
	}
}

type impl struct {
	store       store.Provider
	moduleStore modulestore.Provider
}

func (i impl) Create(request tasksapimodels.TaskData) (tasksapimodels.TaskView, error) {
	module, err := i.moduleStore.GetByID(request.ModuleID, false)
	if err != nil {
		return tasksapimodels.TaskView{}, err
	}
	if module == nil {
		return tasksapimodels.TaskView{}, apperrors.NewNotFound("task module not found")
	}
	rec := dbmodels.Task{
		Name:        request.Name,
		Description: request.Description,
		ModuleID:    request.ModuleID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return tasksapimodels.TaskView{}, err
	}
	log.
		WithField("task_name", rec.Name).
		WithField("module_id", rec.ModuleID).
		WithField("rec_id", id).
		Info("task template created")
	return i.Get(id)
}

func (i impl) Get(id string) (tasksapimodels.TaskView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return tasksapimodels.TaskView{}, err
	}
	if rec == nil {
		return tasksapimodels.TaskView{}, apperrors.NewNotFound("task not found")
	}
	return tasksapimodels.TaskConvert(*rec), nil
}

func (i impl) Find(moduleID string) ([]tasksapimodels.TaskView, error) {
	recList, err := i.store.Find(moduleID)
	if err != nil {
		return nil, err
	}
	list := make([]tasksapimodels.TaskView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, tasksapimodels.TaskConvert(rec))
	}
	return list, nil
}

func (i impl) Update(id string, request tasksapimodels.TaskUpdateData) (tasksapimodels.TaskView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return tasksapimodels.TaskView{}, err
	}
	if rec == nil {
		return tasksapimodels.TaskView{}, apperrors.NewNotFound("task not found")
	}
	updMap := map[string]interface{}{}
	if request.Name != nil {
		updMap["name"] = *request.Name
	}
	if request.Description != nil {
		updMap["description"] = *request.Description
	}
	if request.ModuleID != nil {
		module, err := i.moduleStore.GetByID(*request.ModuleID, false)
		if err != nil {
			return tasksapimodels.TaskView{}, err
		}
		if module == nil {
			return tasksapimodels.TaskView{}, apperrors.NewNotFound("task module not found")
		}
		updMap["module_id"] = *request.ModuleID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return tasksapimodels.TaskView{}, err
	}
	log.WithField("rec_id", id).Info("task template updated")
	return i.Get(id)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("task not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("task template deleted")
	return nil
}

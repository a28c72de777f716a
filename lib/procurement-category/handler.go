package procurementcategoryprovider

import (
	log "github.com/sirupsen/logrus"
	"store-ops-backend/db"
	"store-ops-backend/lib/procurement-category/store"
	procurementapimodels "store-ops-backend/models/api/procurement"
	"store-ops-backend/models/apperrors"
	dbmodels "store-ops-backend/models/db"
)

type Provider interface {
	Create(request procurementapimodels.CategoryData) (view procurementapimodels.CategoryView, err error)
	Get(id string) (view procurementapimodels.CategoryView, err error)
	List() (list []procurementapimodels.CategoryView, err error)
	Update(id string, request procurementapimodels.CategoryData) (view procurementapimodels.CategoryView, err error)
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

func (i impl) Create(request procurementapimodels.CategoryData) (procurementapimodels.CategoryView, error) {
	rec := dbmodels.ProcurementCategory{
		Name:  request.Name,
		Color: request.Color,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return procurementapimodels.CategoryView{}, err
	}
	log.
		WithField("category_name", rec.Name).
		WithField("rec_id", id).
		Info("procurement category created")
	return i.Get(id)
}

func (i impl) Get(id string) (procurementapimodels.CategoryView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return procurementapimodels.CategoryView{}, err
	}
	if rec == nil {
		return procurementapimodels.CategoryView{}, apperrors.NewNotFound("category not found")
	}
	return procurementapimodels.CategoryConvert(*rec), nil
}

func (i impl) List() ([]procurementapimodels.CategoryView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]procurementapimodels.CategoryView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, procurementapimodels.CategoryConvert(rec))
	}
	return list, nil
}

func (i impl) Update(id string, request procurementapimodels.CategoryData) (procurementapimodels.CategoryView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return procurementapimodels.CategoryView{}, err
	}
	if rec == nil {
		return procurementapimodels.CategoryView{}, apperrors.NewNotFound("category not found")
	}
	err = i.store.Update(id, map[string]interface{}{
		"name":  request.Name,
		"color": request.Color,
	})
	if err != nil {
		return procurementapimodels.CategoryView{}, err
	}
	log.WithField("rec_id", id).Info("procurement category updated")
	return i.Get(id)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("category not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("procurement category deleted")
	return nil
}

package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "store-ops-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TaskModule) (id string, err error)
	GetByID(id string, withTasks bool) (rec *dbmodels.TaskModule, err error)
	List() (list []dbmodels.TaskModule, err error)
	ListActiveWithTasks() (list []dbmodels.TaskModule, err error)
	FindByTime(timeOfDay string) (list []dbmodels.TaskModule, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TaskModule) (string, error) {
	err := rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string, withTasks bool) (*dbmodels.TaskModule, error) {
	rec := dbmodels.TaskModule{}
	tx := i.db.
		Where("id = ?", id)
	if withTasks {
		tx = tx.Preload("Tasks")
	}
	err := tx.
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.TaskModule, err error) {
	list = []dbmodels.TaskModule{}
	err = i.db.
		Order("start_time").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListActiveWithTasks() (list []dbmodels.TaskModule, err error) {
	list = []dbmodels.TaskModule{}
	err = i.db.
		Where("is_active = ?", true).
		Preload("Tasks").
		Order("start_time").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindByTime returns active modules whose window contains the given
// "HH:mm:ss" point. Windows crossing midnight are not matched.
func (i impl) FindByTime(timeOfDay string) (list []dbmodels.TaskModule, err error) {
	list = []dbmodels.TaskModule{}
	err = i.db.
		Where("is_active = ?", true).
		Where("start_time <= ?", timeOfDay).
		Where("end_time >= ?", timeOfDay).
		Preload("Tasks").
		Order("start_time").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.TaskModule{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.TaskModule{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

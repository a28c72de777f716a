package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "store-ops-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Attendance) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetLastByUser(userID string) (rec *dbmodels.Attendance, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Attendance) (string, error) {
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Attendance{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetLastByUser(userID string) (*dbmodels.Attendance, error) {
	rec := dbmodels.Attendance{}
	err := i.db.
		Where("user_id = ?", userID).
		Order("clock_time desc").
		Order("created_at desc").
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

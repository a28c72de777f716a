package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "store-ops-backend/models/db"
)

type StatisticsRow struct {
	CategoryID    string
	CategoryName  string
	CategoryColor string
	Count         int64
	TotalAmount   float64
}

type Provider interface {
	Create(rec dbmodels.Procurement) (id string, err error)
	GetByID(id string) (rec *dbmodels.Procurement, err error)
	List() (list []dbmodels.Procurement, err error)
	FindByRange(from, to time.Time, categoryID string) (list []dbmodels.Procurement, err error)
	Statistics(from, to time.Time) (rows []StatisticsRow, err error)
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

func (i impl) Create(rec dbmodels.Procurement) (string, error) {
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

func (i impl) GetByID(id string) (*dbmodels.Procurement, error) {
	rec := dbmodels.Procurement{}
	err := i.db.
		Where("id = ?", id).
		Preload("Category").
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

func (i impl) List() (list []dbmodels.Procurement, err error) {
	list = []dbmodels.Procurement{}
	err = i.db.
		Preload("Category").
		Order("procurement_date desc").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindByRange(from, to time.Time, categoryID string) (list []dbmodels.Procurement, err error) {
	list = []dbmodels.Procurement{}
	tx := i.db.
		Where("procurement_date BETWEEN ? AND ?", from, to)
	if categoryID != "" {
		tx = tx.Where("category_id = ?", categoryID)
	}
	err = tx.
		Preload("Category").
		Order("procurement_date desc").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Statistics groups the month's records by category, largest spend first.
func (i impl) Statistics(from, to time.Time) (rows []StatisticsRow, err error) {
	rows = []StatisticsRow{}
	err = i.db.
		Model(&dbmodels.Procurement{}).
		Select("procurement_categories.id as category_id, " +
			"procurement_categories.name as category_name, " +
			"procurement_categories.color as category_color, " +
			"count(procurements.id) as count, " +
			"coalesce(sum(procurements.total_price), 0) as total_amount").
		Joins("JOIN procurement_categories ON procurement_categories.id = procurements.category_id").
		Where("procurements.procurement_date BETWEEN ? AND ?", from, to).
		Group("procurement_categories.id, procurement_categories.name, procurement_categories.color").
		Order("total_amount desc").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Procurement{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Procurement{
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

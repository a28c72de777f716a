package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"store-ops-backend/models"
	dbmodels "store-ops-backend/models/db"
)

// ErrDuplicate signals a violation of the one-execution-per-(template, day,
// user) unique index. Concurrent generators race on insert and the loser
// lands here instead of creating a duplicate row.
var ErrDuplicate = errors.New("execution already exists for this date")

type ExecutionsFilter struct {
	Day      string // "YYYY-MM-DD", required
	ModuleID string
	UserID   string
	Status   models.TaskStatus
	Page     int
	Limit    int
}

type Provider interface {
	Create(rec dbmodels.TaskExecution) (id string, err error)
	GetByID(id string) (rec *dbmodels.TaskExecution, err error)
	CountByDay(day string) (count int64, err error)
	FindByDay(day string) (list []dbmodels.TaskExecution, err error)
	Find(filter ExecutionsFilter) (list []dbmodels.TaskExecution, total int64, err error)
	UpdateWithLog(id string, updMap map[string]interface{}, logRec dbmodels.TaskStatusLog) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TaskExecution) (string, error) {
	err := rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", ErrDuplicate
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.TaskExecution, error) {
	rec := dbmodels.TaskExecution{}
	err := i.db.
		Where("id = ?", id).
		Preload("Task").
		Preload("Task.Module").
		Preload("User").
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

func (i impl) CountByDay(day string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.TaskExecution{}).
		Where("execution_date = ?", day).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) FindByDay(day string) (list []dbmodels.TaskExecution, err error) {
	list = []dbmodels.TaskExecution{}
	err = i.dayQuery(day).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Find(filter ExecutionsFilter) (list []dbmodels.TaskExecution, total int64, err error) {
	list = []dbmodels.TaskExecution{}
	tx := i.dayQuery(filter.Day)
	if filter.ModuleID != "" {
		tx = tx.Where("tasks.module_id = ?", filter.ModuleID)
	}
	if filter.UserID != "" {
		tx = tx.Where("task_executions.user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		tx = tx.Where("task_executions.status = ?", filter.Status)
	}
	err = tx.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err = tx.
		Limit(filter.Limit).
		Offset(offset).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// UpdateWithLog applies the execution update and appends the audit row in a
// single transaction, so a failed log write rolls the update back too.
func (i impl) UpdateWithLog(id string, updMap map[string]interface{}, logRec dbmodels.TaskStatusLog) error {
	err := logRec.Validate()
	if err != nil {
		return err
	}
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.TaskExecution{}).
			Where("id = ?", id).
			Updates(updMap).
			Error
		if err != nil {
			return err
		}
		err = tx.
			Create(&logRec).
			Error
		if err != nil {
			return errors.Wrap(err, "failed to append status log")
		}
		return nil
	})
}

// dayQuery joins the catalog tables so rows come back ordered the way the
// checklist screen shows them: module window first, then template age.
func (i impl) dayQuery(day string) *gorm.DB {
	return i.db.
		Model(&dbmodels.TaskExecution{}).
		Joins("JOIN tasks ON tasks.id = task_executions.task_id").
		Joins("JOIN task_modules ON task_modules.id = tasks.module_id").
		Where("task_executions.execution_date = ?", day).
		Order("task_modules.start_time").
		Order("tasks.created_at").
		Preload("Task").
		Preload("Task.Module").
		Preload("User")
}

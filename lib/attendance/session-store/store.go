package sessionstore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "store-ops-backend/models/db"
)

// ErrOpenSessionExists signals the partial unique index on open sessions:
// the user already has a session with no end time.
var ErrOpenSessionExists = errors.New("previous work session is still open")

type CompletedFilter struct {
	From   time.Time
	To     time.Time
	UserID string // empty matches all users
}

type Provider interface {
	Create(rec dbmodels.WorkSession) (id string, err error)
	GetOpenByUser(userID string) (rec *dbmodels.WorkSession, err error)
	Update(id string, updMap map[string]interface{}) error
	FindCompleted(filter CompletedFilter) (list []dbmodels.WorkSession, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkSession) (string, error) {
	err := rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", ErrOpenSessionExists
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetOpenByUser(userID string) (*dbmodels.WorkSession, error) {
	rec := dbmodels.WorkSession{}
	err := i.db.
		Where("user_id = ?", userID).
		Where("end_time IS NULL").
		Order("created_at desc").
		Preload("ClockIn").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.WorkSession{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// FindCompleted lists finished sessions inside [From, To], ordered for the
// per-user per-day roll-ups.
func (i impl) FindCompleted(filter CompletedFilter) (list []dbmodels.WorkSession, err error) {
	list = []dbmodels.WorkSession{}
	tx := i.db.
		Where("work_date BETWEEN ? AND ?", filter.From, filter.To).
		Where("end_time IS NOT NULL")
	if filter.UserID != "" {
		tx = tx.Where("user_id = ?", filter.UserID)
	}
	err = tx.
		Preload("User").
		Preload("ClockIn").
		Preload("ClockOut").
		Order("user_id").
		Order("work_date").
		Order("start_time").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

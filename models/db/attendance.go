package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"store-ops-backend/models"
)

// Attendance is an append-only clock event log.
type Attendance struct {
	BaseModel
	UserID        string                `gorm:"type:varchar(36);not null;index" json:"user_id"`
	User          *StaffUser            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type          models.AttendanceType `gorm:"type:varchar(20)" json:"type"`
	ClockTime     time.Time             `gorm:"index" json:"clock_time"`
	WorkSessionID string                `gorm:"type:varchar(36)" json:"work_session_id,omitempty"`
}

func (a *Attendance) Validate() error {
	if a.UserID == "" {
		return errors.New("attendance user reference is required")
	}
	if a.Type != models.AttendanceClockIn && a.Type != models.AttendanceClockOut {
		return errors.New("unknown attendance type")
	}
	if a.ClockTime.IsZero() {
		return errors.New("attendance clock time is required")
	}
	return nil
}

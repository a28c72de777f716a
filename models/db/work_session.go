package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

// WorkSession pairs one clock-in with (eventually) one clock-out.
// EndTime == nil marks the session as open; the partial unique index created
// in db.AutoMigrateDB guarantees at most one open session per user.
type WorkSession struct {
	BaseModel
	UserID     string      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	User       *StaffUser  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ClockInID  string      `gorm:"type:varchar(36)" json:"clock_in_id,omitempty"`
	ClockIn    *Attendance `gorm:"foreignKey:ClockInID" json:"clock_in,omitempty"`
	ClockOutID string      `gorm:"type:varchar(36)" json:"clock_out_id,omitempty"`
	ClockOut   *Attendance `gorm:"foreignKey:ClockOutID" json:"clock_out,omitempty"`
	StartTime  time.Time   `json:"start_time"`
	EndTime    *time.Time  `json:"end_time,omitempty"`
	WorkDate   time.Time   `gorm:"type:date;index" json:"work_date"`
	Duration   *int        `json:"duration,omitempty"`
}

func (s *WorkSession) Validate() error {
	if s.UserID == "" {
		return errors.New("work session user reference is required")
	}
	if s.StartTime.IsZero() {
		return errors.New("work session start time is required")
	}
	if s.WorkDate.IsZero() {
		return errors.New("work session work date is required")
	}
	return nil
}

package attendanceapimodels

import (
	"time"

	"github.com/pkg/errors"
	"store-ops-backend/lib/utils/dateutils"
	"store-ops-backend/models"
	dbmodels "store-ops-backend/models/db"
)

type ClockRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r ClockRequest) Validate() error {
	if r.Latitude == nil || r.Longitude == nil {
		return errors.New("latitude and longitude are required")
	}
	if *r.Latitude < -90 || *r.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if *r.Longitude < -180 || *r.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

type MonthQuery struct {
	Year   int    `query:"year"`
	Month  int    `query:"month"`
	UserID string `query:"user_id"`
}

func (r MonthQuery) Validate() error {
	if r.Year < 2000 || r.Year > 2200 {
		return errors.New("year is out of range")
	}
	if r.Month < 1 || r.Month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	return nil
}

type DateQuery struct {
	Date   string `query:"date"`
	UserID string `query:"user_id"`
}

func (r DateQuery) Validate() error {
	_, err := dateutils.ParseDate(r.Date)
	return err
}

type ClockResultView struct {
	Attendance  AttendanceView  `json:"attendance"`
	WorkSession WorkSessionView `json:"work_session"`
}

type AttendanceView struct {
	ID            string                `json:"id"`
	UserID        string                `json:"user_id"`
	Type          models.AttendanceType `json:"type"`
	ClockTime     time.Time             `json:"clock_time"`
	WorkSessionID string                `json:"work_session_id,omitempty"`
}

type WorkSessionView struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	WorkDate  string     `json:"work_date"`
	Duration  *int       `json:"duration,omitempty"`
}

type ClockStatusView struct {
	CanClockIn     bool                   `json:"can_clock_in"`
	CanClockOut    bool                   `json:"can_clock_out"`
	CurrentSession *WorkSessionView       `json:"current_session"`
	LastClockTime  *time.Time             `json:"last_clock_time"`
	LastClockType  *models.AttendanceType `json:"last_clock_type"`
	Distance       *int                   `json:"distance,omitempty"`
	IsInRange      *bool                  `json:"is_in_range,omitempty"`
}

type SessionItem struct {
	ID        string     `json:"id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Duration  int        `json:"duration"`
}

// DailyRecord sums one user's completed sessions for one civil day.
type DailyRecord struct {
	Date          string        `json:"date"`
	Sessions      []SessionItem `json:"sessions"`
	TotalDuration int           `json:"total_duration"`
}

type AdminDailyRecord struct {
	UserID        string        `json:"user_id"`
	UserName      string        `json:"user_name"`
	Date          string        `json:"date"`
	Sessions      []SessionItem `json:"sessions"`
	TotalDuration int           `json:"total_duration"`
}

func AttendanceConvert(rec dbmodels.Attendance) AttendanceView {
	return AttendanceView{
		ID:            rec.ID,
		UserID:        rec.UserID,
		Type:          rec.Type,
		ClockTime:     rec.ClockTime,
		WorkSessionID: rec.WorkSessionID,
	}
}

func WorkSessionConvert(rec dbmodels.WorkSession) WorkSessionView {
	return WorkSessionView{
		ID:        rec.ID,
		UserID:    rec.UserID,
		StartTime: rec.StartTime,
		EndTime:   rec.EndTime,
		WorkDate:  dateutils.FormatDate(rec.WorkDate),
		Duration:  rec.Duration,
	}
}

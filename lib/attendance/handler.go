package attendanceprovider

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"store-ops-backend/config"
	"store-ops-backend/db"
	sessionstore "store-ops-backend/lib/attendance/session-store"
	"store-ops-backend/lib/attendance/store"
	pdfexport "store-ops-backend/lib/export/pdf"
	xlsexport "store-ops-backend/lib/export/xls"
	"store-ops-backend/lib/utils/dateutils"
	"store-ops-backend/lib/utils/geo"
	"store-ops-backend/models"
	attendanceapimodels "store-ops-backend/models/api/attendance"
	"store-ops-backend/models/apperrors"
	dbmodels "store-ops-backend/models/db"
)

type Provider interface {
	ClockIn(userID string, request attendanceapimodels.ClockRequest) (view attendanceapimodels.ClockResultView, err error)
	ClockOut(userID string, request attendanceapimodels.ClockRequest) (view attendanceapimodels.ClockResultView, err error)
	Status(userID string, lat, lon *float64) (view attendanceapimodels.ClockStatusView, err error)
	MonthlyRecords(userID string, request attendanceapimodels.MonthQuery) (list []attendanceapimodels.DailyRecord, err error)
	MonthlyRecordsAll(request attendanceapimodels.MonthQuery) (list []attendanceapimodels.AdminDailyRecord, err error)
	DailyRecords(userID, date string) (record attendanceapimodels.DailyRecord, err error)
	DailyRecordsAll(request attendanceapimodels.DateQuery) (list []attendanceapimodels.AdminDailyRecord, err error)
	MonthlyReportXLSX(request attendanceapimodels.MonthQuery) (content []byte, filename string, err error)
	MonthlyReportPDF(request attendanceapimodels.MonthQuery) (content []byte, filename string, err error)
}

var Instance Provider

// NewHandler wires the stores and captures the geofence parameters once at
// startup instead of re-reading configuration per request.
func NewHandler() {
	Instance = impl{
		store:         store.NewInstance(db.DB),
		sessionStore:  sessionstore.NewInstance(db.DB),
		centerLat:     config.Conf.Attendance.CenterLat,
		centerLon:     config.Conf.Attendance.CenterLon,
		allowedRadius: config.Conf.Attendance.AllowedRadius,
	}
}

type impl struct {
	store        store.Provider
	sessionStore sessionstore.Provider

	centerLat     float64
	centerLon     float64
	allowedRadius float64
}

// checkGeofence rejects clock events recorded outside the allowed radius
// around the store.
func (i impl) checkGeofence(lat, lon float64) (int, error) {
	distance := geo.RoundedDistance(lat, lon, i.centerLat, i.centerLon)
	if float64(distance) > i.allowedRadius {
		return distance, apperrors.NewBadRequest(fmt.Sprintf(
			"you are %d meters away from the store, clocking is only allowed within %.0f meters",
			distance, i.allowedRadius))
	}
	return distance, nil
}

func (i impl) ClockIn(userID string, request attendanceapimodels.ClockRequest) (attendanceapimodels.ClockResultView, error) {
	distance, err := i.checkGeofence(*request.Latitude, *request.Longitude)
	if err != nil {
		return attendanceapimodels.ClockResultView{}, err
	}

	open, err := i.sessionStore.GetOpenByUser(userID)
	if err != nil {
		return attendanceapimodels.ClockResultView{}, err
	}
	if open != nil {
		return attendanceapimodels.ClockResultView{}, apperrors.NewBadRequest("please finish the previous clock-out first")
	}

	now := dateutils.Now()
	attendance := dbmodels.Attendance{
		UserID:    userID,
		Type:      models.AttendanceClockIn,
		ClockTime: now,
	}
	attendanceID, err := i.store.Create(attendance)
	if err != nil {
		return attendanceapimodels.ClockResultView{}, err
	}
	attendance.ID = attendanceID

	session := dbmodels.WorkSession{
		UserID:    userID,
		ClockInID: attendanceID,
		StartTime: now,
		WorkDate:  dateutils.StartOfDay(now),
	}
	sessionID, err := i.sessionStore.Create(session)
	if errors.Is(err, sessionstore.ErrOpenSessionExists) {
		// Lost the race against a concurrent clock-in of the same user.
		return attendanceapimodels.ClockResultView{}, apperrors.NewBadRequest("please finish the previous clock-out first")
	}
	if err != nil {
		return attendanceapimodels.ClockResultView{}, err
	}
	session.ID = sessionID

	err = i.store.Update(attendanceID, map[string]interface{}{"work_session_id": sessionID})
	if err != nil {
		return attendanceapimodels.ClockResultView{}, err
	}
	attendance.WorkSessionID = sessionID

	log.
		WithField("user_id", userID).
		WithField("session_id", sessionID).
		WithField("distance_m", distance).
		Info("user clocked in")
	return attendanceapimodels.ClockResultView{
		Attendance:  attendanceapimodels.AttendanceConvert(attendance),
		WorkSession: attendanceapimodels.WorkSessionConvert(session),
	}, nil
}

func (i impl) ClockOut(userID string, request attendanceapimodels.ClockRequest) (attendanceapimodels.ClockResultView, error) {
	distance, err := i.checkGeofence(*request.Latitude, *request.Longitude)
	if err != nil {
		return attendanceapimodels.ClockResultView{}, err
	}

	open, err := i.sessionStore.GetOpenByUser(userID)
	if err != nil {
		return attendanceapimodels.ClockResultView{}, err
	}
	if open == nil {
		return attendanceapimodels.ClockResultView{}, apperrors.NewBadRequest("please clock in first")
	}

	now := dateutils.Now()
	attendance := dbmodels.Attendance{
		UserID:        userID,
		Type:          models.AttendanceClockOut,
		ClockTime:     now,
		WorkSessionID: open.ID,
	}
	attendanceID, err := i.store.Create(attendance)
	if err != nil {
		return attendanceapimodels.ClockResultView{}, err
	}
	attendance.ID = attendanceID

	// Whole minutes worked, fractions dropped.
	duration := int(now.Sub(open.StartTime).Milliseconds() / 60000)
	err = i.sessionStore.Update(open.ID, map[string]interface{}{
		"end_time":     now,
		"duration":     duration,
		"clock_out_id": attendanceID,
	})
	if err != nil {
		return attendanceapimodels.ClockResultView{}, err
	}
	open.EndTime = &now
	open.Duration = &duration
	open.ClockOutID = attendanceID

	log.
		WithField("user_id", userID).
		WithField("session_id", open.ID).
		WithField("duration_min", duration).
		WithField("distance_m", distance).
		Info("user clocked out")
	return attendanceapimodels.ClockResultView{
		Attendance:  attendanceapimodels.AttendanceConvert(attendance),
		WorkSession: attendanceapimodels.WorkSessionConvert(*open),
	}, nil
}

func (i impl) Status(userID string, lat, lon *float64) (attendanceapimodels.ClockStatusView, error) {
	open, err := i.sessionStore.GetOpenByUser(userID)
	if err != nil {
		return attendanceapimodels.ClockStatusView{}, err
	}
	last, err := i.store.GetLastByUser(userID)
	if err != nil {
		return attendanceapimodels.ClockStatusView{}, err
	}

	view := attendanceapimodels.ClockStatusView{
		CanClockIn:  open == nil,
		CanClockOut: open != nil,
	}
	if open != nil {
		session := attendanceapimodels.WorkSessionConvert(*open)
		view.CurrentSession = &session
	} else if last != nil && last.Type == models.AttendanceClockOut && !last.ClockTime.Before(dateutils.Today()) {
		// The day's cycle is finished once today's clock-out is recorded.
		view.CanClockIn = false
	}
	if last != nil {
		view.LastClockTime = &last.ClockTime
		view.LastClockType = &last.Type
	}
	if lat != nil && lon != nil {
		distance := geo.RoundedDistance(*lat, *lon, i.centerLat, i.centerLon)
		inRange := float64(distance) <= i.allowedRadius
		view.Distance = &distance
		view.IsInRange = &inRange
	}
	return view, nil
}

func (i impl) MonthlyRecords(userID string, request attendanceapimodels.MonthQuery) ([]attendanceapimodels.DailyRecord, error) {
	from, to, err := dateutils.MonthRange(request.Year, request.Month)
	if err != nil {
		return nil, apperrors.NewBadRequest(err.Error())
	}
	sessions, err := i.sessionStore.FindCompleted(sessionstore.CompletedFilter{
		From:   from,
		To:     to,
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}
	return foldDaily(sessions), nil
}

func (i impl) MonthlyRecordsAll(request attendanceapimodels.MonthQuery) ([]attendanceapimodels.AdminDailyRecord, error) {
	from, to, err := dateutils.MonthRange(request.Year, request.Month)
	if err != nil {
		return nil, apperrors.NewBadRequest(err.Error())
	}
	sessions, err := i.sessionStore.FindCompleted(sessionstore.CompletedFilter{
		From:   from,
		To:     to,
		UserID: request.UserID,
	})
	if err != nil {
		return nil, err
	}
	return foldAdminDaily(sessions), nil
}

func (i impl) DailyRecords(userID, date string) (attendanceapimodels.DailyRecord, error) {
	day, err := dateutils.ParseDate(date)
	if err != nil {
		return attendanceapimodels.DailyRecord{}, apperrors.NewBadRequest(err.Error())
	}
	sessions, err := i.sessionStore.FindCompleted(sessionstore.CompletedFilter{
		From:   day,
		To:     dateutils.EndOfDay(day),
		UserID: userID,
	})
	if err != nil {
		return attendanceapimodels.DailyRecord{}, err
	}
	records := foldDaily(sessions)
	if len(records) == 0 {
		return attendanceapimodels.DailyRecord{
			Date:     date,
			Sessions: []attendanceapimodels.SessionItem{},
		}, nil
	}
	return records[0], nil
}

func (i impl) DailyRecordsAll(request attendanceapimodels.DateQuery) ([]attendanceapimodels.AdminDailyRecord, error) {
	day, err := dateutils.ParseDate(request.Date)
	if err != nil {
		return nil, apperrors.NewBadRequest(err.Error())
	}
	sessions, err := i.sessionStore.FindCompleted(sessionstore.CompletedFilter{
		From:   day,
		To:     dateutils.EndOfDay(day),
		UserID: request.UserID,
	})
	if err != nil {
		return nil, err
	}
	return foldAdminDaily(sessions), nil
}

func (i impl) MonthlyReportXLSX(request attendanceapimodels.MonthQuery) ([]byte, string, error) {
	records, err := i.MonthlyRecordsAll(request)
	if err != nil {
		return nil, "", err
	}
	buf, err := xlsexport.Instance.ExportAttendanceReport(request.Year, request.Month, records)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("attendance_%04d-%02d.xlsx", request.Year, request.Month)
	return buf.Bytes(), filename, nil
}

func (i impl) MonthlyReportPDF(request attendanceapimodels.MonthQuery) ([]byte, string, error) {
	records, err := i.MonthlyRecordsAll(request)
	if err != nil {
		return nil, "", err
	}
	buf, err := pdfexport.Instance.ExportAttendanceReport(request.Year, request.Month, records)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("attendance_%04d-%02d.pdf", request.Year, request.Month)
	return buf.Bytes(), filename, nil
}

func sessionItem(rec dbmodels.WorkSession) attendanceapimodels.SessionItem {
	item := attendanceapimodels.SessionItem{
		ID:        rec.ID,
		StartTime: rec.StartTime,
		EndTime:   rec.EndTime,
	}
	if rec.Duration != nil {
		item.Duration = *rec.Duration
	}
	return item
}

// foldDaily rolls one user's sessions, already sorted by work date and start
// time, into per-day records with summed durations.
func foldDaily(sessions []dbmodels.WorkSession) []attendanceapimodels.DailyRecord {
	list := []attendanceapimodels.DailyRecord{}
	idx := map[string]int{}
	for _, rec := range sessions {
		date := dateutils.FormatDate(rec.WorkDate)
		pos, ok := idx[date]
		if !ok {
			pos = len(list)
			idx[date] = pos
			list = append(list, attendanceapimodels.DailyRecord{
				Date:     date,
				Sessions: []attendanceapimodels.SessionItem{},
			})
		}
		list[pos].Sessions = append(list[pos].Sessions, sessionItem(rec))
		if rec.Duration != nil {
			list[pos].TotalDuration += *rec.Duration
		}
	}
	return list
}

func foldAdminDaily(sessions []dbmodels.WorkSession) []attendanceapimodels.AdminDailyRecord {
	list := []attendanceapimodels.AdminDailyRecord{}
	idx := map[string]int{}
	for _, rec := range sessions {
		date := dateutils.FormatDate(rec.WorkDate)
		key := rec.UserID + "/" + date
		pos, ok := idx[key]
		if !ok {
			pos = len(list)
			idx[key] = pos
			record := attendanceapimodels.AdminDailyRecord{
				UserID:   rec.UserID,
				Date:     date,
				Sessions: []attendanceapimodels.SessionItem{},
			}
			if rec.User != nil {
				record.UserName = rec.User.Name
			}
			list = append(list, record)
		}
		list[pos].Sessions = append(list[pos].Sessions, sessionItem(rec))
		if rec.Duration != nil {
			list[pos].TotalDuration += *rec.Duration
		}
	}
	return list
}

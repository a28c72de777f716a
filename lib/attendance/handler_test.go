package attendanceprovider

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sessionstore "store-ops-backend/lib/attendance/session-store"
	"store-ops-backend/lib/utils/dateutils"
	"store-ops-backend/models"
	attendanceapimodels "store-ops-backend/models/api/attendance"
	"store-ops-backend/models/apperrors"
	dbmodels "store-ops-backend/models/db"
)

type fakeAttendanceStore struct {
	recs   []dbmodels.Attendance
	nextID int
}

func (f *fakeAttendanceStore) Create(rec dbmodels.Attendance) (string, error) {
	f.nextID++
	rec.ID = fmt.Sprintf("att-%d", f.nextID)
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeAttendanceStore) Update(id string, updMap map[string]interface{}) error {
	for idx := range f.recs {
		if f.recs[idx].ID == id {
			if v, ok := updMap["work_session_id"]; ok {
				f.recs[idx].WorkSessionID = v.(string)
			}
		}
	}
	return nil
}

func (f *fakeAttendanceStore) GetLastByUser(userID string) (*dbmodels.Attendance, error) {
	var last *dbmodels.Attendance
	for idx := range f.recs {
		if f.recs[idx].UserID != userID {
			continue
		}
		// Ties go to the later record.
		if last == nil || !f.recs[idx].ClockTime.Before(last.ClockTime) {
			last = &f.recs[idx]
		}
	}
	return last, nil
}

type fakeSessionStore struct {
	recs   []dbmodels.WorkSession
	nextID int
}

func (f *fakeSessionStore) Create(rec dbmodels.WorkSession) (string, error) {
	for _, existing := range f.recs {
		if existing.UserID == rec.UserID && existing.EndTime == nil {
			return "", sessionstore.ErrOpenSessionExists
		}
	}
	f.nextID++
	rec.ID = fmt.Sprintf("sess-%d", f.nextID)
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeSessionStore) GetOpenByUser(userID string) (*dbmodels.WorkSession, error) {
	for idx := range f.recs {
		if f.recs[idx].UserID == userID && f.recs[idx].EndTime == nil {
			rec := f.recs[idx]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionStore) Update(id string, updMap map[string]interface{}) error {
	for idx := range f.recs {
		if f.recs[idx].ID != id {
			continue
		}
		if v, ok := updMap["end_time"]; ok {
			t := v.(time.Time)
			f.recs[idx].EndTime = &t
		}
		if v, ok := updMap["duration"]; ok {
			d := v.(int)
			f.recs[idx].Duration = &d
		}
		if v, ok := updMap["clock_out_id"]; ok {
			f.recs[idx].ClockOutID = v.(string)
		}
	}
	return nil
}

func (f *fakeSessionStore) FindCompleted(filter sessionstore.CompletedFilter) ([]dbmodels.WorkSession, error) {
	list := []dbmodels.WorkSession{}
	for _, rec := range f.recs {
		if rec.EndTime == nil {
			continue
		}
		if rec.WorkDate.Before(filter.From) || rec.WorkDate.After(filter.To) {
			continue
		}
		if filter.UserID != "" && rec.UserID != filter.UserID {
			continue
		}
		list = append(list, rec)
	}
	return list, nil
}

const (
	storeLat = 39.9042
	storeLon = 116.4074
)

func newAttendanceFixture() (impl, *fakeAttendanceStore, *fakeSessionStore) {
	attStore := &fakeAttendanceStore{}
	sessStore := &fakeSessionStore{}
	handler := impl{
		store:         attStore,
		sessionStore:  sessStore,
		centerLat:     storeLat,
		centerLon:     storeLon,
		allowedRadius: 100,
	}
	return handler, attStore, sessStore
}

func inStore() attendanceapimodels.ClockRequest {
	lat := storeLat
	lon := storeLon
	return attendanceapimodels.ClockRequest{Latitude: &lat, Longitude: &lon}
}

func farAway() attendanceapimodels.ClockRequest {
	lat := storeLat + 0.01
	lon := storeLon
	return attendanceapimodels.ClockRequest{Latitude: &lat, Longitude: &lon}
}

func TestClockIn(t *testing.T) {
	t.Run(`opens a session inside the geofence`, func(t *testing.T) {
		handler, attStore, sessStore := newAttendanceFixture()
		result, err := handler.ClockIn("user-1", inStore())
		require.Nil(t, err)
		require.Equal(t, models.AttendanceClockIn, result.Attendance.Type)
		require.Equal(t, result.WorkSession.ID, result.Attendance.WorkSessionID)
		require.Nil(t, result.WorkSession.EndTime)
		require.Len(t, attStore.recs, 1)
		require.Len(t, sessStore.recs, 1)
	})

	t.Run(`rejected outside the geofence, message names the radius`, func(t *testing.T) {
		handler, attStore, _ := newAttendanceFixture()
		_, err := handler.ClockIn("user-1", farAway())
		require.NotNil(t, err)
		require.True(t, apperrors.IsStatus(err, 400))
		require.Contains(t, err.Error(), "100")
		require.Empty(t, attStore.recs)
	})

	t.Run(`rejected while a session is still open`, func(t *testing.T) {
		handler, _, _ := newAttendanceFixture()
		_, err := handler.ClockIn("user-1", inStore())
		require.Nil(t, err)
		_, err = handler.ClockIn("user-1", inStore())
		require.NotNil(t, err)
		require.True(t, apperrors.IsStatus(err, 400))
	})
}

func TestClockOut(t *testing.T) {
	t.Run(`requires an open session`, func(t *testing.T) {
		handler, _, _ := newAttendanceFixture()
		_, err := handler.ClockOut("user-1", inStore())
		require.NotNil(t, err)
		require.True(t, apperrors.IsStatus(err, 400))
	})

	t.Run(`closes the session with whole-minute duration`, func(t *testing.T) {
		handler, _, sessStore := newAttendanceFixture()
		start := dateutils.Now().Add(-125*time.Minute - 30*time.Second)
		sessStore.recs = append(sessStore.recs, dbmodels.WorkSession{
			BaseModel: dbmodels.BaseModel{ID: "sess-open"},
			UserID:    "user-1",
			StartTime: start,
			WorkDate:  dateutils.StartOfDay(start),
		})

		result, err := handler.ClockOut("user-1", inStore())
		require.Nil(t, err)
		require.Equal(t, models.AttendanceClockOut, result.Attendance.Type)
		require.NotNil(t, result.WorkSession.EndTime)
		require.NotNil(t, result.WorkSession.Duration)
		require.Equal(t, 125, *result.WorkSession.Duration)
	})
}

func TestStatus(t *testing.T) {
	t.Run(`fresh user can only clock in`, func(t *testing.T) {
		handler, _, _ := newAttendanceFixture()
		view, err := handler.Status("user-1", nil, nil)
		require.Nil(t, err)
		require.True(t, view.CanClockIn)
		require.False(t, view.CanClockOut)
		require.Nil(t, view.CurrentSession)
		require.Nil(t, view.Distance)
	})

	t.Run(`open session flips eligibility and reports range`, func(t *testing.T) {
		handler, _, _ := newAttendanceFixture()
		_, err := handler.ClockIn("user-1", inStore())
		require.Nil(t, err)

		lat := storeLat
		lon := storeLon
		view, err := handler.Status("user-1", &lat, &lon)
		require.Nil(t, err)
		require.False(t, view.CanClockIn)
		require.True(t, view.CanClockOut)
		require.NotNil(t, view.CurrentSession)
		require.NotNil(t, view.LastClockType)
		require.Equal(t, models.AttendanceClockIn, *view.LastClockType)
		require.NotNil(t, view.Distance)
		require.Equal(t, 0, *view.Distance)
		require.NotNil(t, view.IsInRange)
		require.True(t, *view.IsInRange)
	})

	t.Run(`today's clock-out finishes the day's cycle`, func(t *testing.T) {
		handler, _, _ := newAttendanceFixture()
		_, err := handler.ClockIn("user-1", inStore())
		require.Nil(t, err)
		_, err = handler.ClockOut("user-1", inStore())
		require.Nil(t, err)

		view, err := handler.Status("user-1", nil, nil)
		require.Nil(t, err)
		require.False(t, view.CanClockIn)
		require.False(t, view.CanClockOut)
		require.Nil(t, view.CurrentSession)
		require.NotNil(t, view.LastClockType)
		require.Equal(t, models.AttendanceClockOut, *view.LastClockType)
	})

	t.Run(`yesterday's clock-out does not block a new day`, func(t *testing.T) {
		handler, attStore, _ := newAttendanceFixture()
		yesterday := dateutils.Now().AddDate(0, 0, -1)
		attStore.recs = append(attStore.recs,
			dbmodels.Attendance{
				BaseModel: dbmodels.BaseModel{ID: "att-in"},
				UserID:    "user-1",
				Type:      models.AttendanceClockIn,
				ClockTime: yesterday.Add(-8 * time.Hour),
			},
			dbmodels.Attendance{
				BaseModel: dbmodels.BaseModel{ID: "att-out"},
				UserID:    "user-1",
				Type:      models.AttendanceClockOut,
				ClockTime: yesterday,
			})

		view, err := handler.Status("user-1", nil, nil)
		require.Nil(t, err)
		require.True(t, view.CanClockIn)
		require.False(t, view.CanClockOut)
	})
}

func TestMonthlyRecords(t *testing.T) {
	t.Run(`sessions roll up per day with summed durations`, func(t *testing.T) {
		handler, _, sessStore := newAttendanceFixture()
		day, err := dateutils.ParseDate("2024-05-10")
		require.Nil(t, err)
		for i, minutes := range []int{60, 45} {
			start := day.Add(time.Duration(9+i*4) * time.Hour)
			end := start.Add(time.Duration(minutes) * time.Minute)
			d := minutes
			sessStore.recs = append(sessStore.recs, dbmodels.WorkSession{
				BaseModel: dbmodels.BaseModel{ID: fmt.Sprintf("s-%d", i)},
				UserID:    "user-1",
				StartTime: start,
				EndTime:   &end,
				WorkDate:  day,
				Duration:  &d,
			})
		}

		records, err := handler.MonthlyRecords("user-1", attendanceapimodels.MonthQuery{Year: 2024, Month: 5})
		require.Nil(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "2024-05-10", records[0].Date)
		require.Len(t, records[0].Sessions, 2)
		require.Equal(t, 105, records[0].TotalDuration)
	})

	t.Run(`open sessions are excluded`, func(t *testing.T) {
		handler, _, _ := newAttendanceFixture()
		_, err := handler.ClockIn("user-1", inStore())
		require.Nil(t, err)
		now := dateutils.Now()
		records, err := handler.MonthlyRecords("user-1", attendanceapimodels.MonthQuery{Year: now.Year(), Month: int(now.Month())})
		require.Nil(t, err)
		require.Empty(t, records)
	})
}

func TestDailyRecords(t *testing.T) {
	t.Run(`empty day returns a zero record`, func(t *testing.T) {
		handler, _, _ := newAttendanceFixture()
		record, err := handler.DailyRecords("user-1", "2024-05-10")
		require.Nil(t, err)
		require.Equal(t, "2024-05-10", record.Date)
		require.Empty(t, record.Sessions)
		require.Equal(t, 0, record.TotalDuration)
	})
}

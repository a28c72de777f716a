package xlsexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	attendanceapimodels "store-ops-backend/models/api/attendance"
)

type Provider interface {
	ExportAttendanceReport(year, month int, list []attendanceapimodels.AdminDailyRecord) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var attendanceHeaders = []string{"Date", "Employee", "Sessions", "First clock-in", "Last clock-out", "Total minutes"}

func (i impl) ExportAttendanceReport(year, month int, list []attendanceapimodels.AdminDailyRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, attendanceHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeAttendanceData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, fmt.Sprintf("Attendance %04d-%02d", year, month))
	return f.WriteToBuffer()
}

func writeAttendanceData(f *excelize.File, sheet string, list []attendanceapimodels.AdminDailyRecord, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(attendanceHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Date"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Date); err != nil {
			return row, err
		}
		// "Employee"
		col++
		if err := writeColumn(f, sheet, col, row, item.UserName); err != nil {
			return row, err
		}
		// "Sessions"
		col++
		if err := writeColumn(f, sheet, col, row, len(item.Sessions)); err != nil {
			return row, err
		}
		// "First clock-in"
		col++
		if err := writeColumn(f, sheet, col, row, firstClockIn(item)); err != nil {
			return row, err
		}
		// "Last clock-out"
		col++
		if err := writeColumn(f, sheet, col, row, lastClockOut(item)); err != nil {
			return row, err
		}
		// "Total minutes"
		col++
		if err := writeColumn(f, sheet, col, row, item.TotalDuration); err != nil {
			return row, err
		}
	}
	return row, nil
}

func firstClockIn(item attendanceapimodels.AdminDailyRecord) string {
	if len(item.Sessions) == 0 {
		return ""
	}
	return item.Sessions[0].StartTime.Format(time.TimeOnly)
}

func lastClockOut(item attendanceapimodels.AdminDailyRecord) string {
	last := len(item.Sessions) - 1
	if last < 0 || item.Sessions[last].EndTime == nil {
		return ""
	}
	return item.Sessions[last].EndTime.Format(time.TimeOnly)
}

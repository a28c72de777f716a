package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
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

var attendanceColumns = []struct {
	title string
	width float64
}{
	{"Date", 26},
	{"Employee", 52},
	{"Sessions", 22},
	{"First clock-in", 30},
	{"Last clock-out", 30},
	{"Total minutes", 30},
}

func (i impl) ExportAttendanceReport(year, month int, list []attendanceapimodels.AdminDailyRecord) (pdfFile *bytes.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportAttendanceReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Attendance %04d-%02d", year, month), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 10)
	for _, column := range attendanceColumns {
		pdf.CellFormat(column.width, 8, column.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range list {
		cells := []string{
			item.Date,
			item.UserName,
			fmt.Sprintf("%d", len(item.Sessions)),
			firstClockIn(item),
			lastClockOut(item),
			fmt.Sprintf("%d", item.TotalDuration),
		}
		for idx, value := range cells {
			pdf.CellFormat(attendanceColumns[idx].width, 7, value, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
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

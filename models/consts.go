package models

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOverdue    TaskStatus = "overdue"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusOverdue:
		return true
	}
	return false
}

type AttendanceType string

const (
	AttendanceClockIn  AttendanceType = "clock_in"
	AttendanceClockOut AttendanceType = "clock_out"
)

// MaxTaskPhotoCount caps the number of evidence photos attached to one submission.
const MaxTaskPhotoCount = 10

package attendance

import "errors"

// Attendance domain errors
var (
	ErrNoAttendanceData = errors.New("no attendance data available")
)

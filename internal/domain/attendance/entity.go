package attendance

import (
	"time"
)

// DaySummary is one employee's punch activity on a single date, collapsed to
// the earliest punch-in and the latest punch-out. Punch times are clock
// strings in HH:MM:SS as stored. HalfDay is set when the store carries an
// authoritative "Half Day" status for that day.
type DaySummary struct {
	EmployeeID int64
	Date       time.Time
	PunchIn    *string
	PunchOut   *string
	HalfDay    bool
}

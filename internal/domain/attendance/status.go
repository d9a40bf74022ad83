package attendance

import (
	"fmt"
	"strings"
	"time"
)

// Status is the derived attendance classification for one employee on one
// date. The string values are the wire values.
type Status string

const (
	StatusOnTime  Status = "OnTime"
	StatusLate    Status = "Late"
	StatusHalfDay Status = "Half Day"
	StatusAbsent  Status = "Absent"
)

// Normalized lowers the status and strips spaces and underscores, the form
// used for status-filter comparison.
func (s Status) Normalized() string {
	return NormalizeStatus(string(s))
}

// NormalizeStatus canonicalizes a status string for comparison: lowercase,
// spaces and underscores removed. "Half Day", "half_day" and "HALFDAY" all
// normalize to "halfday".
func NormalizeStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Policy is the lateness rule: a standard start-of-day clock time plus a
// grace period. A punch-in at or before start+grace is on time.
type Policy struct {
	WorkStart time.Time
	Grace     time.Duration
}

// Deadline returns the latest on-time punch-in clock time.
func (p Policy) Deadline() time.Time {
	return p.WorkStart.Add(p.Grace)
}

const clockLayout = "15:04:05"

// Classify derives the status for one employee-day. punchIn is the earliest
// punch-in clock string (HH:MM:SS) or nil when no punch-in exists; halfDay
// reports whether the store holds an authoritative Half Day status for that
// day, which takes precedence over the time rule. The returned lateBy is the
// positive HH:MM:SS duration past the graced deadline, empty unless the
// status is Late.
func Classify(punchIn *string, halfDay bool, policy Policy) (Status, string, error) {
	if halfDay {
		return StatusHalfDay, "", nil
	}
	if punchIn == nil {
		return StatusAbsent, "", nil
	}

	in, err := time.Parse(clockLayout, *punchIn)
	if err != nil {
		return "", "", fmt.Errorf("invalid punch-in time %q: %w", *punchIn, err)
	}

	deadline := policy.Deadline()
	if !in.After(deadline) {
		return StatusOnTime, "", nil
	}
	return StatusLate, FormatDuration(in.Sub(deadline)), nil
}

// FormatDuration renders a non-negative duration as HH:MM:SS.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// WorkDuration returns the HH:MM:SS span between two punch clock strings, or
// empty when either is missing or the span is not positive.
func WorkDuration(punchIn, punchOut *string) string {
	if punchIn == nil || punchOut == nil {
		return ""
	}
	in, err := time.Parse(clockLayout, *punchIn)
	if err != nil {
		return ""
	}
	out, err := time.Parse(clockLayout, *punchOut)
	if err != nil {
		return ""
	}
	if !out.After(in) {
		return ""
	}
	return FormatDuration(out.Sub(in))
}

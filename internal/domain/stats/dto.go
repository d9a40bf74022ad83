package stats

// StatusCounts is the raw aggregate over a date range. Present covers every
// non-absent record (on time, late, half day).
type StatusCounts struct {
	Present int64
	OnTime  int64
	Late    int64
}

type LateStatsResponse struct {
	TotalRecordsConsidered int64   `json:"total_records_considered"`
	LateRecords            int64   `json:"late_records"`
	LatePercentage         float64 `json:"late_percentage"`
}

type OnTimeStatsResponse struct {
	TotalRecordsConsidered int64   `json:"total_records_considered"`
	OnTimeRecords          int64   `json:"on_time_records"`
	OnTimePercentage       float64 `json:"on_time_percentage"`
}

type DepartmentStats struct {
	DepartmentName string `json:"departmentName"`
	TotalEmployees int64  `json:"totalEmployees"`
}

// MonthBucket is the raw per-month aggregate the trend percentages are
// computed from. Month is YYYY-MM.
type MonthBucket struct {
	Month   string
	Present int64
	Late    int64
	Absent  int64
	Total   int64
}

type AttendanceTrend struct {
	Month          string  `json:"month"`
	PresentPercent float64 `json:"presentPercent"`
	LatePercent    float64 `json:"latePercent"`
	AbsentPercent  float64 `json:"absentPercent"`
}

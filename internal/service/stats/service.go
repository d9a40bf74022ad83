package stats

import (
	"context"
	"math"
	"time"

	"github.com/worklens/attendance-backend-go/internal/domain/stats"
)

const (
	recentWindowDays = 30
	trendMonths      = 12
)

type StatsServiceImpl struct {
	stats.StatsRepository
	now func() time.Time
}

func NewStatsService(statsRepo stats.StatsRepository) stats.StatsService {
	return &StatsServiceImpl{
		StatsRepository: statsRepo,
		now:             time.Now,
	}
}

// LateStats implements stats.StatsService.
func (s *StatsServiceImpl) LateStats(ctx context.Context) (stats.LateStatsResponse, error) {
	counts, err := s.recentCounts(ctx)
	if err != nil {
		return stats.LateStatsResponse{}, err
	}

	return stats.LateStatsResponse{
		TotalRecordsConsidered: counts.Present,
		LateRecords:            counts.Late,
		LatePercentage:         percentage(counts.Late, counts.Present, 2),
	}, nil
}

// OnTimeStats implements stats.StatsService.
func (s *StatsServiceImpl) OnTimeStats(ctx context.Context) (stats.OnTimeStatsResponse, error) {
	counts, err := s.recentCounts(ctx)
	if err != nil {
		return stats.OnTimeStatsResponse{}, err
	}

	return stats.OnTimeStatsResponse{
		TotalRecordsConsidered: counts.Present,
		OnTimeRecords:          counts.OnTime,
		OnTimePercentage:       percentage(counts.OnTime, counts.Present, 2),
	}, nil
}

// DepartmentStats implements stats.StatsService.
func (s *StatsServiceImpl) DepartmentStats(ctx context.Context) ([]stats.DepartmentStats, error) {
	results, err := s.StatsRepository.DepartmentEmployeeCounts(ctx)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []stats.DepartmentStats{}
	}

	return results, nil
}

// Trends implements stats.StatsService.
func (s *StatsServiceImpl) Trends(ctx context.Context) ([]stats.AttendanceTrend, error) {
	end := s.now()
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location()).
		AddDate(0, -(trendMonths - 1), 0)

	buckets, err := s.StatsRepository.MonthlyStatusCounts(ctx, start, end)
	if err != nil {
		return nil, err
	}

	trends := make([]stats.AttendanceTrend, 0, len(buckets))
	for _, b := range buckets {
		trends = append(trends, stats.AttendanceTrend{
			Month:          monthLabel(b.Month),
			PresentPercent: percentage(b.Present, b.Total, 1),
			LatePercent:    percentage(b.Late, b.Total, 1),
			AbsentPercent:  percentage(b.Absent, b.Total, 1),
		})
	}

	return trends, nil
}

func (s *StatsServiceImpl) recentCounts(ctx context.Context) (stats.StatusCounts, error) {
	end := s.now()
	start := end.AddDate(0, 0, -recentWindowDays)
	return s.StatsRepository.StatusCounts(ctx, start, end)
}

func percentage(part, total int64, decimals int) float64 {
	if total == 0 {
		return 0
	}
	factor := math.Pow(10, float64(decimals))
	return math.Round(float64(part)/float64(total)*100*factor) / factor
}

// monthLabel turns a YYYY-MM bucket key into a short display label.
func monthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan 2006")
}

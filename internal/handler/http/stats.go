package http

import (
	"net/http"

	"github.com/worklens/attendance-backend-go/internal/domain/stats"
	"github.com/worklens/attendance-backend-go/internal/handler/http/response"
)

type StatsHandler struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return StatsHandler{statsService: statsService}
}

// Late handles GET /api/v1/stats/late.
func (h StatsHandler) Late(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.LateStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// OnTime handles GET /api/v1/stats/ontime.
func (h StatsHandler) OnTime(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.OnTimeStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Departments handles GET /api/v1/stats/departments.
func (h StatsHandler) Departments(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.DepartmentStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Trends handles GET /api/v1/attendance/trends.
func (h StatsHandler) Trends(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.Trends(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

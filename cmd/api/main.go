package main

import (
	"fmt"
	"net/http"

	"github.com/worklens/attendance-backend-go/internal/config"
	attendanceDomain "github.com/worklens/attendance-backend-go/internal/domain/attendance"
	appHTTP "github.com/worklens/attendance-backend-go/internal/handler/http"
	"github.com/worklens/attendance-backend-go/internal/pkg/cache"
	"github.com/worklens/attendance-backend-go/internal/pkg/database"
	"github.com/worklens/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklens/attendance-backend-go/internal/service/attendance"
	departmentService "github.com/worklens/attendance-backend-go/internal/service/department"
	employeeService "github.com/worklens/attendance-backend-go/internal/service/employee"
	statsService "github.com/worklens/attendance-backend-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)

	policy := attendanceDomain.Policy{
		WorkStart: cfg.Attendance.WorkStart,
		Grace:     cfg.Attendance.GracePeriod,
	}
	reportCache := cache.New[attendanceDomain.DailyReportResponse](cfg.Attendance.CacheTTL)

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		policy,
		reportCache,
		cfg.Attendance.DefaultPageSize,
	)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	statsSvc := statsService.NewStatsService(statsRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		attendanceHandler,
		employeeHandler,
		departmentHandler,
		statsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

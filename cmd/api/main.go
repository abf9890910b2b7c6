package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/timedesk/timekeeper-backend-go/internal/config"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/grid"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
	appHTTP "github.com/timedesk/timekeeper-backend-go/internal/handler/http"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/cron"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/database"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/sse"
	"github.com/timedesk/timekeeper-backend-go/internal/repository/postgresql"
	codeService "github.com/timedesk/timekeeper-backend-go/internal/service/code"
	gridService "github.com/timedesk/timekeeper-backend-go/internal/service/grid"
	recordService "github.com/timedesk/timekeeper-backend-go/internal/service/record"
	reportService "github.com/timedesk/timekeeper-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	policy, err := record.NewShiftPolicy(cfg.Attendance.ShiftStart, cfg.Attendance.GraceMinutes, cfg.Attendance.StandardHours)
	if err != nil {
		log.Fatal("Invalid shift policy:", err)
	}
	unrecordedPolicy := grid.UnrecordedPolicy(cfg.Attendance.UnrecordedPolicy)

	codeRepo := postgresql.NewCodeRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)

	hub := sse.NewHub()

	codeSvc := codeService.NewService(db, codeRepo)
	recordSvc := recordService.NewService(recordRepo, employeeRepo, codeSvc, hub, policy)
	gridSvc := gridService.NewService(recordRepo, employeeRepo, codeRepo, unrecordedPolicy)
	reportSvc := reportService.NewService(recordRepo, employeeRepo, departmentRepo)

	if cfg.Attendance.SeedDefaultCodes {
		seeded, err := codeSvc.SeedDefaults(context.Background())
		if err != nil {
			log.Fatal("Seeding default attendance codes failed:", err)
		}
		if seeded > 0 {
			fmt.Printf("Seeded %d default attendance codes\n", seeded)
		}
	}

	recordHandler := appHTTP.NewRecordHandler(recordSvc)
	codeHandler := appHTTP.NewCodeHandler(codeSvc)
	gridHandler := appHTTP.NewGridHandler(gridSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	rosterHandler := appHTTP.NewRosterHandler(employeeRepo, departmentRepo)
	eventsHandler := appHTTP.NewEventsHandler(hub)

	router := appHTTP.NewRouter(
		cfg,
		recordHandler,
		codeHandler,
		gridHandler,
		reportHandler,
		rosterHandler,
		eventsHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAbsenceJobs(recordRepo, employeeRepo, unrecordedPolicy).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

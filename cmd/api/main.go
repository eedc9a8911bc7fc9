package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/attendance-insights-go/internal/config"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/roster"
	appHTTP "github.com/cmlabs-hris/attendance-insights-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-insights-go/internal/provider/httpapi"
	"github.com/cmlabs-hris/attendance-insights-go/internal/provider/postgresql"
	insightService "github.com/cmlabs-hris/attendance-insights-go/internal/service/insight"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := appHTTP.NewLogger(cfg.App.Env)

	var (
		directory          roster.Directory
		attendanceProvider attendance.Provider
		leaveProvider      leave.Provider
	)
	switch cfg.Provider.Type {
	case "http":
		client := httpapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, cfg.Upstream.Timeout)
		directory = httpapi.NewDirectoryClient(client)
		attendanceProvider = httpapi.NewAttendanceClient(client)
		leaveProvider = httpapi.NewLeaveClient(client)
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		directory = postgresql.NewDirectoryRepository(db)
		attendanceProvider = postgresql.NewAttendanceRepository(db)
		leaveProvider = postgresql.NewLeaveRepository(db)
	default:
		log.Fatal("Unsupported provider type: ", cfg.Provider.Type)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	insightSvc := insightService.NewInsightService(directory, attendanceProvider, leaveProvider, logger)
	insightHandler := appHTTP.NewInsightHandler(insightSvc)

	router := appHTTP.NewRouter(
		logger,
		JWTService,
		insightHandler,
		cfg.App.CORSOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

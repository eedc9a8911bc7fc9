package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-insights-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	logger *slog.Logger,
	JWTService jwt.Service,
	insightHandler InsightHandler,
	corsOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.RequireDashboardRole)

			r.Route("/insights", func(r chi.Router) {
				r.Get("/daily", insightHandler.GetDaily)
				r.Get("/summary", insightHandler.GetSummary)
				r.Get("/range", insightHandler.GetRange)
				r.Get("/leave-ranges", insightHandler.GetLeaveRanges)
			})
		})
	})

	return r
}

// NewLogger builds the slog JSON logger the router and services share.
func NewLogger(env string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-insights"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)
}

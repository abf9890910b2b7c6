package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/timedesk/timekeeper-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	recordHandler RecordHandler,
	codeHandler CodeHandler,
	gridHandler GridHandler,
	reportHandler ReportHandler,
	rosterHandler RosterHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timekeeper"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendance", func(r chi.Router) {
			r.Post("/check-in", recordHandler.CheckIn)
			r.Post("/check-out", recordHandler.CheckOut)
			r.Post("/assign-code", recordHandler.AssignCode)

			r.Route("/records", func(r chi.Router) {
				r.Get("/", recordHandler.List)
				r.Put("/", recordHandler.Upsert)
				r.Get("/{id}", recordHandler.Get)
				r.Delete("/{id}", recordHandler.Delete)
			})

			r.Route("/grid", func(r chi.Router) {
				r.Get("/", gridHandler.Monthly)
				r.Get("/export", gridHandler.Export)
			})
		})

		r.Route("/codes", func(r chi.Router) {
			r.Get("/", codeHandler.List)
			r.Post("/", codeHandler.Create)
			r.Put("/{code}", codeHandler.Update)
			r.Delete("/{code}", codeHandler.Deactivate)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/summary", reportHandler.Summary)
			r.Get("/departments", reportHandler.DepartmentBreakdown)
		})

		r.Route("/roster", func(r chi.Router) {
			r.Get("/employees", rosterHandler.ListEmployees)
			r.Get("/employees/{id}", rosterHandler.GetEmployee)
			r.Get("/departments", rosterHandler.ListDepartments)
		})

		r.Get("/events", eventsHandler.Stream)
	})

	return r
}

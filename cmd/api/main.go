package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/amutiso/kwakamande/docs"
	"github.com/amutiso/kwakamande/internal/announcement"
	"github.com/amutiso/kwakamande/internal/assignment"
	"github.com/amutiso/kwakamande/internal/auth"
	"github.com/amutiso/kwakamande/internal/config"
	"github.com/amutiso/kwakamande/internal/dashboard"
	"github.com/amutiso/kwakamande/internal/database"
	"github.com/amutiso/kwakamande/internal/house"
	"github.com/amutiso/kwakamande/internal/maintenance"
	"github.com/amutiso/kwakamande/internal/notification"
	"github.com/amutiso/kwakamande/internal/profile"
	"github.com/amutiso/kwakamande/internal/reminder"
	"github.com/amutiso/kwakamande/internal/rent"
	mw "github.com/amutiso/kwakamande/pkg/middleware"
)

// @title           Kwa Kamande API
// @version         1.0
// @description     Property management backend: houses, tenants, rent collection, maintenance and announcements.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	tokenTTL := time.Duration(cfg.JWTTTLHours) * time.Hour

	// House feature
	houseRepo := house.NewRepository(db)
	houseService := house.NewService(houseRepo)
	houseHandler := house.NewHandler(houseService)

	// Assignment feature
	assignmentRepo := assignment.NewRepository(db)
	assignmentService := assignment.NewService(assignmentRepo)
	assignmentHandler := assignment.NewHandler(assignmentService)

	// Profile feature (attaches assignments to tenant listings)
	profileRepo := profile.NewRepository(db)
	profileService := profile.NewService(profileRepo, assignmentRepo)
	profileHandler := profile.NewHandler(profileService)

	// Auth feature
	authService := auth.NewService(profileRepo, cfg.JWTSecret, tokenTTL)
	authHandler := auth.NewHandler(authService)

	// Rent feature
	rentRepo := rent.NewRepository(db)
	rentService := rent.NewService(rentRepo, assignmentRepo)
	rentHandler := rent.NewHandler(rentService)

	// Maintenance feature
	maintenanceRepo := maintenance.NewRepository(db)
	maintenanceService := maintenance.NewService(maintenanceRepo, assignmentRepo)
	maintenanceHandler := maintenance.NewHandler(maintenanceService)

	// Announcement feature
	announcementRepo := announcement.NewRepository(db)
	announcementService := announcement.NewService(announcementRepo)
	announcementHandler := announcement.NewHandler(announcementService)

	// Notification feature
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	// Dashboard
	dashboardService := dashboard.NewService(db, maintenanceRepo, rentService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// Rent reminders
	if cfg.RemindersEnabled {
		scheduler := reminder.NewScheduler(assignmentRepo, rentRepo, notificationService)
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Failed to start reminder scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/houses", houseHandler.PublicRoutes())

		// Authenticated
		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticator(cfg.JWTSecret))

			r.Mount("/profiles", profileHandler.Routes())
			r.Mount("/assignments", assignmentHandler.Routes())
			r.Mount("/rent", rentHandler.Routes())
			r.Mount("/maintenance", maintenanceHandler.Routes())
			r.Mount("/announcements", announcementHandler.Routes())
			r.Mount("/notifications", notificationHandler.Routes())

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(mw.RequireRole(mw.RoleAdmin))

				r.Mount("/dashboard", dashboardHandler.AdminRoutes())
				r.Mount("/houses", houseHandler.AdminRoutes())
				r.Mount("/tenants", profileHandler.AdminRoutes())
				r.Mount("/assignments", assignmentHandler.AdminRoutes())
				r.Mount("/rent", rentHandler.AdminRoutes())
				r.Mount("/maintenance", maintenanceHandler.AdminRoutes())
				r.Mount("/announcements", announcementHandler.AdminRoutes())
			})
		})
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

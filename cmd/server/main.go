package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/atulv2861/seven-healer-backend/internal/api"
	"github.com/atulv2861/seven-healer-backend/internal/config"
	"github.com/atulv2861/seven-healer-backend/internal/events"
	"github.com/atulv2861/seven-healer-backend/internal/mailer"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
	"github.com/atulv2861/seven-healer-backend/internal/service"
	"github.com/atulv2861/seven-healer-backend/internal/tracing"
	_ "github.com/atulv2861/seven-healer-backend/migrations"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found, reading from environment variables")
	}

	api.SetupGlobalHandler("seven-healer-backend")

	shutdownTracer, err := tracing.InitTracerProvider("seven-healer-backend")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	cfg := config.Load()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations(cfg)
		return
	}

	db := connectDB(cfg)
	defer db.Close()

	eventPublisher, err := events.NewNatsPublisher(cfg.NATSURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	log.Println("Successfully connected to NATS.")

	smtpMailer, err := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	})
	if err != nil {
		log.Fatalf("Failed to build SMTP client: %v", err)
	}
	templates := mailer.NewTemplateStore(cfg.TemplatesDir)

	userRepo := repository.NewPostgresUserRepository(db)
	blogRepo := repository.NewPostgresBlogRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)

	authService := service.NewAuthService(userRepo, service.SuperuserConfig{
		Email:     cfg.SuperuserEmail,
		Password:  cfg.SuperuserPassword,
		FirstName: cfg.SuperuserFirstName,
		LastName:  cfg.SuperuserLastName,
	}, cfg.JWTExpiresMin)
	userService := service.NewUserService(userRepo)
	blogService := service.NewBlogService(blogRepo)
	jobService := service.NewJobService(jobRepo)
	appService := service.NewApplicationService(appRepo, jobRepo, smtpMailer, templates, eventPublisher, cfg.CareersInbox)
	projectService := service.NewProjectService(projectRepo)
	contactService := service.NewContactService(smtpMailer, templates, eventPublisher)

	authHandler := api.NewAuthHandler(authService)
	userHandler := api.NewUserHandler(userService)
	blogHandler := api.NewBlogHandler(blogService)
	jobHandler := api.NewJobHandler(jobService)
	appHandler := api.NewApplicationHandler(appService)
	projectHandler := api.NewProjectHandler(projectService)
	contactHandler := api.NewContactHandler(contactService)

	// Base64 CV payloads run close to 14MB for a 10MB file.
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "seven-healer-backend"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")

	requireAuth := api.AuthMiddleware(authService)
	requireAdmin := api.RequireAdmin()

	authRoutes := v1.Group("/auth")
	authRoutes.Post("/signup", authHandler.Signup)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Get("/me", requireAuth, authHandler.Me)
	authRoutes.Post("/logout", requireAuth, authHandler.Logout)

	blogRoutes := v1.Group("/blogs")
	blogRoutes.Get("/", blogHandler.ListPublished)
	blogRoutes.Get("/admin", requireAuth, requireAdmin, blogHandler.ListAdmin)
	blogRoutes.Get("/slug/:slug", blogHandler.GetBySlug)
	blogRoutes.Post("/", requireAuth, requireAdmin, blogHandler.Create)
	blogRoutes.Get("/:id", requireAuth, blogHandler.Get)
	blogRoutes.Put("/:id", requireAuth, requireAdmin, blogHandler.Update)
	blogRoutes.Patch("/:id/status", requireAuth, requireAdmin, blogHandler.UpdateStatus)
	blogRoutes.Patch("/:id/tags", requireAuth, requireAdmin, blogHandler.UpdateTags)
	blogRoutes.Delete("/:id", requireAuth, requireAdmin, blogHandler.Delete)
	blogRoutes.Post("/:id/content", requireAuth, requireAdmin, blogHandler.AddSection)
	blogRoutes.Put("/:id/content", requireAuth, requireAdmin, blogHandler.UpdateSection)
	blogRoutes.Delete("/:id/content/:heading", requireAuth, requireAdmin, blogHandler.RemoveSection)

	jobRoutes := v1.Group("/jobs")
	jobRoutes.Post("/", requireAuth, requireAdmin, jobHandler.Create)
	jobRoutes.Get("/", jobHandler.ListActive)
	jobRoutes.Get("/search/advanced", jobHandler.SearchAdvanced)
	jobRoutes.Get("/stats/summary", requireAuth, requireAdmin, jobHandler.Stats)

	appRoutes := jobRoutes.Group("/applications")
	appRoutes.Post("/", appHandler.Submit)
	appRoutes.Get("/", requireAuth, requireAdmin, appHandler.List)
	appRoutes.Get("/:id", requireAuth, requireAdmin, appHandler.Get)
	appRoutes.Patch("/:id/status", requireAuth, requireAdmin, appHandler.UpdateStatus)
	appRoutes.Delete("/:id", requireAuth, requireAdmin, appHandler.Delete)

	jobRoutes.Get("/:job_id", jobHandler.Get)
	jobRoutes.Put("/:job_id", requireAuth, requireAdmin, jobHandler.Update)
	jobRoutes.Patch("/:job_id/status", requireAuth, requireAdmin, jobHandler.UpdateStatus)
	jobRoutes.Delete("/:job_id", requireAuth, requireAdmin, jobHandler.Delete)

	projectRoutes := v1.Group("/projects")
	projectRoutes.Post("/", requireAuth, requireAdmin, projectHandler.Create)
	projectRoutes.Get("/public", projectHandler.ListPublic)
	projectRoutes.Get("/admin", requireAuth, requireAdmin, projectHandler.ListAdmin)
	projectRoutes.Get("/stats/summary", requireAuth, requireAdmin, projectHandler.Stats)
	projectRoutes.Get("/:id", projectHandler.Get)
	projectRoutes.Put("/:id", requireAuth, requireAdmin, projectHandler.Update)
	projectRoutes.Delete("/:id", requireAuth, requireAdmin, projectHandler.Delete)

	userRoutes := v1.Group("/users")
	userRoutes.Use(requireAuth, requireAdmin)
	userRoutes.Get("/", userHandler.List)
	userRoutes.Get("/:id", userHandler.Get)
	userRoutes.Patch("/:id", userHandler.Update)
	userRoutes.Delete("/:id", userHandler.Delete)

	v1.Post("/send/email", contactHandler.SendEmail)

	log.Printf("Listening seven-healer-backend on port %s", cfg.AppPort)
	log.Fatal(app.Listen(":" + cfg.AppPort))
}

func connectDB(cfg config.Config) *sqlx.DB {
	db, err := sqlx.Connect("pgx", cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func handleMigrations(cfg config.Config) {
	fmt.Println("Running database migrations...")

	db, err := sql.Open("pgx", cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}

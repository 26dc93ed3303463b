package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/S-Borna/Intelliplan/internal/auth"
	"github.com/S-Borna/Intelliplan/internal/config"
	"github.com/S-Borna/Intelliplan/internal/domain/fiber/handler"
	"github.com/S-Borna/Intelliplan/internal/middleware"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/seed"
	"github.com/S-Borna/Intelliplan/internal/service"
	"github.com/S-Borna/Intelliplan/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const uploadDir = "./uploads/briefs"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	if err := seed.Run(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("could not create upload dir: %v", err)
	}

	requestRepo := repository.NewRequestRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	consultantRepo := repository.NewConsultantRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	actionRepo := repository.NewActionRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	timelineRepo := repository.NewTimelineRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)

	analyzer := service.NewAnalyzerService()
	compliance := service.NewComplianceService()
	webhook := service.NewWebhookService()
	tokens := auth.NewMemoryTokenStore()

	notifications := usecase.NewNotificationUsecase(notificationRepo, userRepo, webhook)
	feasibility := usecase.NewFeasibilityUsecase(db, requestRepo, consultantRepo, assessmentRepo, timelineRepo, analyzer, compliance)
	coordination := usecase.NewCoordinationUsecase(db, requestRepo, actionRepo, timelineRepo)
	assignments := usecase.NewAssignmentUsecase(db, requestRepo, consultantRepo, assignmentRepo, timelineRepo, compliance, notifications)
	requests := usecase.NewRequestUsecase(db, appConfig, requestRepo, customerRepo, consultantRepo, actionRepo, timelineRepo, assignmentRepo, analyzer, feasibility, coordination, notifications)
	authUc := usecase.NewAuthUsecase(db, userRepo, customerRepo, tokens)
	customers := usecase.NewCustomerUsecase(customerRepo)
	dashboard := usecase.NewDashboardUsecase(requestRepo, consultantRepo)

	handler.NewAuthHandler(authUc, tokens, userRepo).RegisterRoutes(app)
	handler.NewRequestHandler(requests, feasibility, coordination, assignments, tokens, userRepo, uploadDir).RegisterRoutes(app)
	handler.NewNotificationHandler(notifications, tokens, userRepo).RegisterRoutes(app)
	handler.NewCustomerHandler(customers, tokens, userRepo).RegisterRoutes(app)
	handler.NewDashboardHandler(dashboard, tokens, userRepo).RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Europe/Stockholm",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.Customer{},
		&model.Consultant{},
		&model.User{},
		&model.ComplianceRule{},
		&model.StaffingRequest{},
		&model.FeasibilityAssessment{},
		&model.CoordinationAction{},
		&model.Assignment{},
		&model.TimelineEvent{},
		&model.Notification{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}

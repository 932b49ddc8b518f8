package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rockparade/backend/internal/config"
	"github.com/rockparade/backend/internal/handler"
	"github.com/rockparade/backend/internal/middleware"
	"github.com/rockparade/backend/internal/repository"
	"github.com/rockparade/backend/internal/service"
	"github.com/rockparade/backend/pkg/database"
	"github.com/rockparade/backend/pkg/storage"
	"github.com/rockparade/backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	sugar := zapLogger.Sugar()

	// Initialize database
	db := database.NewDatabase(cfg.DatabaseURL)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	eventRepo := repository.NewEventRepository(db)
	imageRepo := repository.NewImageRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	bandRepo := repository.NewBandRepository(db)

	// Image storage
	imageStorage, err := storage.NewS3Storage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Services
	authService := service.NewAuthService(userRepo, roleRepo, sugar)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, imageRepo, linkRepo, imageStorage, sugar)
	bandService := service.NewBandService(bandRepo, userRepo, sugar)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService, validator)
	bandHandler := handler.NewBandHandler(bandService, validator)

	// Router
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(sugar),
	})

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	api.Get("/events/like/:searchString/:limit?/:offset?", eventHandler.FindEventsLike)
	api.Get("/events/:limit?/:offset?", eventHandler.ListEvents)
	api.Get("/event/:id/image/:imageName", eventHandler.GetImage)
	api.Get("/event/:id", eventHandler.GetEvent)

	api.Get("/bands/:limit?/:offset?", bandHandler.ListBands)
	api.Get("/band/:name", bandHandler.GetBand)

	api.Get("/users/:limit?/:offset?", userHandler.ListUsers)
	api.Get("/user/:login", userHandler.GetUser)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		api.Post("/event", eventHandler.CreateEvent)
		api.Put("/event/:id", eventHandler.UpdateEvent)
		api.Delete("/event/:id", eventHandler.DeleteEvent)
		api.Post("/event/:id/image", eventHandler.AddImage)
		api.Delete("/event/:id/image/:imageId", eventHandler.DeleteImage)
		api.Post("/event/:id/links", eventHandler.AddLinks)
		api.Delete("/event/:id/link/:linkId", eventHandler.DeleteLink)

		api.Post("/band", bandHandler.CreateBand)
		api.Put("/band/:name/member", bandHandler.UpdateMember)
		api.Put("/band/:name", bandHandler.UpdateBand)
		api.Delete("/band/:name/member/:login", bandHandler.RemoveMember)
		api.Delete("/band/:name", bandHandler.DeleteBand)
		api.Post("/band/members", bandHandler.AddMember)

		api.Post("/user/token", authHandler.RegenerateToken)
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-pos-ws/internal/handler"
	"go-pos-ws/internal/middleware"
	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"
	"go-pos-ws/internal/service"
	"go-pos-ws/internal/ws"
	"go-pos-ws/pkg/database"
	"go-pos-ws/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	envErr := godotenv.Load()
	if err := logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("APP_ENV")); err != nil {
		panic(err)
	}
	log := logger.L()
	if envErr != nil {
		log.Warn(".env file not found")
	}

	// 2. Setup Database
	db, err := database.Connect()
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.User{},
	); err != nil {
		log.Fatal("auto-migration failed", zap.Error(err))
	}

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(categoryRepo, productRepo, wsHub)
	customerService := service.NewCustomerService(customerRepo)
	checkoutService := service.NewCheckoutService(productRepo, customerRepo, txRepo, db, wsHub)
	dashService := service.NewDashboardService(txRepo, productRepo)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	customerHandler := handler.NewCustomerHandler(customerService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Terminal Backend v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))
	admin := middleware.RequireRole(string(model.RoleAdmin))

	// Category Routes
	protected.Get("/categories", catalogHandler.GetCategories)
	protected.Get("/categories/:id", catalogHandler.GetCategory)
	protected.Post("/categories", admin, catalogHandler.CreateCategory)
	protected.Put("/categories/:id", admin, catalogHandler.UpdateCategory)
	protected.Delete("/categories/:id", admin, catalogHandler.DeleteCategory)

	// Product Routes
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Get("/products/search", catalogHandler.SearchProducts)
	protected.Get("/products/barcode/:code", catalogHandler.GetProductByBarcode)
	protected.Get("/products/:id", catalogHandler.GetProduct)
	protected.Post("/products", admin, catalogHandler.CreateProduct)
	protected.Put("/products/:id", admin, catalogHandler.UpdateProduct)
	protected.Delete("/products/:id", admin, catalogHandler.DeleteProduct)

	// Customer Routes
	protected.Get("/customers", customerHandler.GetCustomers)
	protected.Get("/customers/search", customerHandler.SearchCustomers)
	protected.Get("/customers/:id", customerHandler.GetCustomer)
	protected.Post("/customers", customerHandler.CreateCustomer)
	protected.Put("/customers/:id", customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", admin, customerHandler.DeleteCustomer)

	// Checkout + Sales history
	protected.Post("/checkout", checkoutHandler.Checkout)
	protected.Get("/transactions", checkoutHandler.GetTransactions)
	protected.Get("/transactions/range", checkoutHandler.GetTransactionsByRange)
	protected.Get("/transactions/:id", checkoutHandler.GetTransaction)

	// Dashboard
	protected.Get("/dashboard/summary", dashHandler.GetSummary)

	// User Management (admin only)
	protected.Get("/users", admin, userHandler.GetUsers)
	protected.Post("/users", admin, userHandler.CreateUser)
	protected.Put("/users/:id", admin, userHandler.UpdateUser)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	log.Info("server exited")
}

// seedAdmin creates the default admin account if none exists yet
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)
	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		logger.L().Warn("failed to hash admin password", zap.Error(err))
		return
	}
	if err := userRepo.Create(admin); err != nil {
		logger.L().Warn("failed to create admin user", zap.Error(err))
		return
	}
	logger.L().Info("admin user created", zap.String("email", admin.Email))
}

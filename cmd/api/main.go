package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pharmacy-api/internal/handler"
	"go-pharmacy-api/internal/middleware"
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/internal/ws"
	"go-pharmacy-api/pkg/cache"
	"go-pharmacy-api/pkg/database"
	"go-pharmacy-api/pkg/money"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.User{}, &model.Role{}, &model.Privilege{},
		&model.Category{}, &model.Manufacturer{},
		&model.UnitCategory{}, &model.UnitOfMeasure{},
		&model.Supplier{}, &model.Customer{},
		&model.Product{}, &model.BinCardEntry{},
		&model.Sale{}, &model.SaleItem{},
		&model.Purchase{}, &model.PurchaseItem{},
		&model.Credit{}, &model.CreditPayment{},
		&model.CommissionConfig{}, &model.Commission{},
		&model.Notification{},
	); err != nil {
		log.Fatal("Auto migration failed: ", err)
	}

	seedPrivilegesRolesAndAdmin(db)

	wsHub := ws.NewHub()
	go wsHub.Run()

	// The list cache is optional: without REDIS_ADDR every lookup goes
	// straight to postgres.
	var store *cache.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		var err error
		if store, err = cache.New(context.Background(), addr); err != nil {
			log.Printf("Warning: cache disabled: %v", err)
			store = nil
		}
	}

	formatter := money.FromEnv()

	// Repositories
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	manufacturerRepo := repository.NewManufacturerRepo(db)
	unitRepo := repository.NewUnitRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	creditRepo := repository.NewCreditRepo(db)
	commissionRepo := repository.NewCommissionRepo(db)
	binCardRepo := repository.NewBinCardRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	// Services
	notificationService := service.NewNotificationService(notificationRepo, wsHub)
	productService := service.NewProductService(productRepo, binCardRepo, notificationService, db, wsHub, store)
	importService := service.NewProductImportService(productService, categoryRepo, manufacturerRepo, unitRepo)
	categoryService := service.NewCategoryService(categoryRepo, store)
	manufacturerService := service.NewManufacturerService(manufacturerRepo, store)
	unitService := service.NewUnitService(unitRepo, store)
	supplierService := service.NewSupplierService(supplierRepo, store)
	customerService := service.NewCustomerService(customerRepo, store)
	saleService := service.NewSaleService(saleRepo, productRepo, binCardRepo, unitRepo, notificationService, db, wsHub, store)
	purchaseService := service.NewPurchaseService(purchaseRepo, productRepo, binCardRepo, unitRepo, db, wsHub, store)
	creditService := service.NewCreditService(creditRepo, notificationRepo, db, store)
	commissionService := service.NewCommissionService(commissionRepo, db)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, roleRepo, privilegeRepo)
	dashboardService := service.NewDashboardService(productRepo, saleRepo, creditRepo, binCardRepo, db, formatter, store)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService, importService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	manufacturerHandler := handler.NewManufacturerHandler(manufacturerService)
	unitHandler := handler.NewUnitHandler(unitService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	customerHandler := handler.NewCustomerHandler(customerService)
	saleHandler := handler.NewSaleHandler(saleService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	creditHandler := handler.NewCreditHandler(creditService)
	commissionHandler := handler.NewCommissionHandler(commissionService)
	userHandler := handler.NewUserHandler(userService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	app := fiber.New(fiber.Config{
		AppName:   "Pharmacy Inventory API v1.0",
		BodyLimit: 16 * 1024 * 1024, // xlsx imports
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below requires a valid session
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/change-password", userHandler.ChangePassword)

	// Dashboard
	dashboard := protected.Group("/dashboard", middleware.RequirePrivilege("dashboard:view"))
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
	dashboard.Get("/stock-movement", dashboardHandler.StockMovement)

	// Products
	protected.Get("/products", middleware.RequirePrivilege("product:view"), productHandler.List)
	protected.Get("/products/all", middleware.RequirePrivilege("product:view"), productHandler.All)
	protected.Get("/products/import/template", middleware.RequirePrivilege("product:import"), productHandler.ImportTemplate)
	protected.Post("/products/import", middleware.RequirePrivilege("product:import"), productHandler.Import)
	protected.Get("/products/:id", middleware.RequirePrivilege("product:view"), productHandler.Get)
	protected.Post("/products", middleware.RequirePrivilege("product:create"), productHandler.Create)
	protected.Patch("/products/:id", middleware.RequirePrivilege("product:update"), productHandler.Update)
	protected.Delete("/products/:id", middleware.RequirePrivilege("product:delete"), productHandler.Delete)
	protected.Get("/products/:id/bin-card", middleware.RequirePrivilege("product:view"), productHandler.BinCard)
	protected.Post("/products/:id/adjustments", middleware.RequirePrivilege("stock:adjust"), productHandler.AdjustStock)

	// Categories
	protected.Get("/categories", middleware.RequireAnyPrivilege("category:manage", "product:view"), categoryHandler.List)
	protected.Get("/categories/all", middleware.RequireAnyPrivilege("category:manage", "product:view"), categoryHandler.All)
	protected.Get("/categories/:id", middleware.RequirePrivilege("category:manage"), categoryHandler.Get)
	protected.Post("/categories", middleware.RequirePrivilege("category:manage"), categoryHandler.Create)
	protected.Patch("/categories/:id", middleware.RequirePrivilege("category:manage"), categoryHandler.Update)
	protected.Delete("/categories/:id", middleware.RequirePrivilege("category:manage"), categoryHandler.Delete)

	// Manufacturers
	protected.Get("/manufacturers", middleware.RequireAnyPrivilege("manufacturer:manage", "product:view"), manufacturerHandler.List)
	protected.Get("/manufacturers/all", middleware.RequireAnyPrivilege("manufacturer:manage", "product:view"), manufacturerHandler.All)
	protected.Get("/manufacturers/:id", middleware.RequirePrivilege("manufacturer:manage"), manufacturerHandler.Get)
	protected.Post("/manufacturers", middleware.RequirePrivilege("manufacturer:manage"), manufacturerHandler.Create)
	protected.Patch("/manufacturers/:id", middleware.RequirePrivilege("manufacturer:manage"), manufacturerHandler.Update)
	protected.Delete("/manufacturers/:id", middleware.RequirePrivilege("manufacturer:manage"), manufacturerHandler.Delete)

	// Unit categories and units of measure
	protected.Get("/unit-categories", middleware.RequireAnyPrivilege("unit:manage", "product:view"), unitHandler.ListCategories)
	protected.Get("/unit-categories/all", middleware.RequireAnyPrivilege("unit:manage", "product:view"), unitHandler.AllCategories)
	protected.Get("/unit-categories/:id", middleware.RequirePrivilege("unit:manage"), unitHandler.GetCategory)
	protected.Post("/unit-categories", middleware.RequirePrivilege("unit:manage"), unitHandler.CreateCategory)
	protected.Patch("/unit-categories/:id", middleware.RequirePrivilege("unit:manage"), unitHandler.UpdateCategory)
	protected.Delete("/unit-categories/:id", middleware.RequirePrivilege("unit:manage"), unitHandler.DeleteCategory)
	protected.Get("/units", middleware.RequireAnyPrivilege("unit:manage", "product:view"), unitHandler.ListUnits)
	protected.Get("/units/all", middleware.RequireAnyPrivilege("unit:manage", "product:view"), unitHandler.AllUnits)
	protected.Get("/units/:id", middleware.RequirePrivilege("unit:manage"), unitHandler.GetUnit)
	protected.Post("/units", middleware.RequirePrivilege("unit:manage"), unitHandler.CreateUnit)
	protected.Patch("/units/:id", middleware.RequirePrivilege("unit:manage"), unitHandler.UpdateUnit)
	protected.Delete("/units/:id", middleware.RequirePrivilege("unit:manage"), unitHandler.DeleteUnit)

	// Suppliers
	protected.Get("/suppliers", middleware.RequireAnyPrivilege("supplier:manage", "purchase:view"), supplierHandler.List)
	protected.Get("/suppliers/all", middleware.RequireAnyPrivilege("supplier:manage", "purchase:create"), supplierHandler.All)
	protected.Get("/suppliers/:id", middleware.RequirePrivilege("supplier:manage"), supplierHandler.Get)
	protected.Post("/suppliers", middleware.RequirePrivilege("supplier:manage"), supplierHandler.Create)
	protected.Patch("/suppliers/:id", middleware.RequirePrivilege("supplier:manage"), supplierHandler.Update)
	protected.Delete("/suppliers/:id", middleware.RequirePrivilege("supplier:manage"), supplierHandler.Delete)

	// Customers
	protected.Get("/customers", middleware.RequireAnyPrivilege("customer:manage", "sale:view"), customerHandler.List)
	protected.Get("/customers/all", middleware.RequireAnyPrivilege("customer:manage", "sale:create"), customerHandler.All)
	protected.Get("/customers/:id", middleware.RequirePrivilege("customer:manage"), customerHandler.Get)
	protected.Post("/customers", middleware.RequirePrivilege("customer:manage"), customerHandler.Create)
	protected.Patch("/customers/:id", middleware.RequirePrivilege("customer:manage"), customerHandler.Update)
	protected.Delete("/customers/:id", middleware.RequirePrivilege("customer:manage"), customerHandler.Delete)

	// Sales and purchases
	protected.Get("/sales", middleware.RequirePrivilege("sale:view"), saleHandler.List)
	protected.Get("/sales/:id", middleware.RequirePrivilege("sale:view"), saleHandler.Get)
	protected.Post("/sales", middleware.RequirePrivilege("sale:create"), saleHandler.Create)
	protected.Get("/purchases", middleware.RequirePrivilege("purchase:view"), purchaseHandler.List)
	protected.Get("/purchases/:id", middleware.RequirePrivilege("purchase:view"), purchaseHandler.Get)
	protected.Post("/purchases", middleware.RequirePrivilege("purchase:create"), purchaseHandler.Create)

	// Credits
	protected.Get("/credits", middleware.RequirePrivilege("credit:view"), creditHandler.List)
	protected.Get("/credits/:id", middleware.RequirePrivilege("credit:view"), creditHandler.Get)
	protected.Post("/credits/:id/payments", middleware.RequirePrivilege("credit:pay"), creditHandler.RecordPayment)

	// Commissions
	protected.Get("/commissions", middleware.RequirePrivilege("commission:view"), commissionHandler.List)
	protected.Get("/commissions/:id", middleware.RequirePrivilege("commission:view"), commissionHandler.Get)
	protected.Post("/commissions/:id/pay", middleware.RequirePrivilege("commission:manage"), commissionHandler.Pay)
	protected.Get("/commission-configs", middleware.RequirePrivilege("commission:manage"), commissionHandler.ListConfigs)
	protected.Post("/commission-configs", middleware.RequirePrivilege("commission:manage"), commissionHandler.CreateConfig)
	protected.Patch("/commission-configs/:id", middleware.RequirePrivilege("commission:manage"), commissionHandler.UpdateConfig)
	protected.Delete("/commission-configs/:id", middleware.RequirePrivilege("commission:manage"), commissionHandler.DeleteConfig)

	// Users, roles, privileges
	protected.Get("/users", middleware.RequirePrivilege("user:view"), userHandler.List)
	protected.Get("/users/all", middleware.RequireAnyPrivilege("user:view", "commission:manage", "sale:create"), userHandler.All)
	protected.Get("/users/:id", middleware.RequirePrivilege("user:view"), userHandler.Get)
	protected.Post("/users", middleware.RequirePrivilege("user:create"), userHandler.Create)
	protected.Patch("/users/:id", middleware.RequirePrivilege("user:update"), userHandler.Update)
	protected.Delete("/users/:id", middleware.RequirePrivilege("user:delete"), userHandler.Delete)
	protected.Get("/roles", userHandler.Roles)
	protected.Get("/privileges", userHandler.Privileges)

	// Notifications
	protected.Get("/notifications", notificationHandler.Unread)
	protected.Post("/notifications/read-all", notificationHandler.MarkAllRead)
	protected.Post("/notifications/:id/read", notificationHandler.MarkRead)
	protected.Delete("/notifications/read", notificationHandler.ClearRead)
	protected.Delete("/notifications/:id", notificationHandler.Delete)

	// WebSocket: live stock and notification events
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
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}

// seedPrivilegesRolesAndAdmin creates the default privileges, roles and
// master admin account on first boot.
func seedPrivilegesRolesAndAdmin(db *gorm.DB) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	allPrivileges, _ := privilegeRepo.FindAll()

	// MASTER_ADMIN gets everything.
	if masterRole, err := roleRepo.FindByCode(model.RoleMasterAdmin); err == nil && len(masterRole.Privileges) == 0 {
		db.Model(masterRole).Association("Privileges").Replace(allPrivileges)
	}

	// ADMIN gets everything except user management.
	if adminRole, err := roleRepo.FindByCode(model.RoleAdmin); err == nil && len(adminRole.Privileges) == 0 {
		excluded := map[string]bool{
			"user:create": true, "user:update": true,
			"user:delete": true, "user:update_privilege": true,
		}
		var adminPrivileges []model.Privilege
		for _, p := range allPrivileges {
			if !excluded[p.Code] {
				adminPrivileges = append(adminPrivileges, p)
			}
		}
		db.Model(adminRole).Association("Privileges").Replace(adminPrivileges)
	}

	// PHARMACIST covers inventory, sales, purchases and credits.
	if role, err := roleRepo.FindByCode(model.RolePharmacist); err == nil && len(role.Privileges) == 0 {
		codes := []string{
			"dashboard:view", "product:view", "product:create", "product:update",
			"product:import", "category:manage", "manufacturer:manage", "unit:manage",
			"supplier:manage", "customer:manage", "sale:view", "sale:create",
			"purchase:view", "purchase:create", "stock:adjust",
			"credit:view", "credit:pay",
		}
		if privileges, err := privilegeRepo.FindByCodes(codes); err == nil {
			db.Model(role).Association("Privileges").Replace(privileges)
		}
	}

	// SALESPERSON is sales entry plus their own commission view.
	if role, err := roleRepo.FindByCode(model.RoleSalesperson); err == nil && len(role.Privileges) == 0 {
		codes := []string{"dashboard:view", "product:view", "sale:view", "sale:create", "commission:view"}
		if privileges, err := privilegeRepo.FindByCodes(codes); err == nil {
			db.Model(role).Association("Privileges").Replace(privileges)
		}
	}

	// Default master admin.
	if _, err := userRepo.FindByEmail("admin@example.com"); err != nil {
		masterRole, err := roleRepo.FindByCode(model.RoleMasterAdmin)
		if err != nil {
			log.Printf("Warning: master admin role missing, skipping admin seed")
			return
		}
		admin := &model.User{
			Email:      "admin@example.com",
			FirstName:  "Master",
			LastName:   "Administrator",
			RoleID:     &masterRole.ID,
			IsActive:   true,
			Privileges: masterRole.Privileges,
		}
		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"
		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
			return
		}
		log.Println("Default admin created: admin@example.com / admin123 (change it)")
	}
}

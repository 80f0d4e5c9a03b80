package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gymtech/dashboard/internal/api/handler"
	"github.com/gymtech/dashboard/internal/api/middleware"
	"github.com/gymtech/dashboard/internal/api/view"
	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
	"github.com/gymtech/dashboard/internal/gateway"
)

// Deps is everything the router needs wired in by main.
type Deps struct {
	Sessions   ports.SessionService
	Gateway    *gateway.Client
	Chats      ports.ChatHistoryStore
	Mongo      *mongo.Database
	Redis      *redis.Client
	SessionTTL time.Duration
	Log        zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("gymdash"))
	e.Use(middleware.Session(d.Sessions))

	pages := handler.NewPages(d.Chats, d.Log)
	gw := d.Gateway

	authHandler := handler.NewAuthHandler(d.Sessions, d.SessionTTL, d.Log)
	dashboardHandler := handler.NewDashboardHandler(pages, gw.Member, gw.Booking, gw.Class, gw.Equipment, gw.Inventory, gw.Manager)
	memberHandler := handler.NewMemberHandler(pages, gw.Member, gw.Class, gw.Booking, gw.Equipment, gw.Inventory, gw.Subscription)
	employeeHandler := handler.NewEmployeeHandler(pages, gw.Employee, gw.Class, gw.Booking, gw.Equipment, gw.Inventory)
	managerHandler := handler.NewManagerHandler(pages, gw.Manager, gw.Employee)
	chatHandler := handler.NewChatHandler(gw.Chat, d.Chats, d.Log)

	// --- Public surface ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	})
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Shared screens ---
	e.GET("/dashboard", dashboardHandler.Show, middleware.RequireSession())

	// --- Member screens ---
	member := e.Group("/member", middleware.RequireRole(domain.RoleMember))
	member.GET("/classes", memberHandler.Classes)
	member.POST("/classes", memberHandler.MutateClasses)
	member.GET("/fitness", memberHandler.Fitness)
	member.GET("/plans", memberHandler.Plans)
	member.GET("/profile", memberHandler.Profile)
	member.POST("/profile", memberHandler.UpdateProfile)
	member.GET("/purchases", memberHandler.Purchases)
	member.GET("/shop", memberHandler.Shop)
	member.POST("/shop", memberHandler.Purchase)
	member.GET("/equipment", memberHandler.Equipment)

	// --- Employee screens ---
	employee := e.Group("/employee", middleware.RequireRole(domain.RoleEmployee))
	employee.GET("/classes", employeeHandler.Classes)
	employee.POST("/classes", employeeHandler.MarkAttendance)
	employee.GET("/manage-classes", employeeHandler.ManageClasses)
	employee.POST("/manage-classes", employeeHandler.CreateClass)
	employee.GET("/equipment", employeeHandler.Equipment)
	employee.POST("/equipment", employeeHandler.UpdateEquipment)
	employee.GET("/inventory", employeeHandler.Inventory)
	employee.POST("/inventory", employeeHandler.UpdateInventory)
	employee.GET("/log-entry", employeeHandler.LogEntry)
	employee.POST("/log-entry", employeeHandler.LogActivity)
	employee.GET("/members", employeeHandler.Members)
	employee.POST("/members", employeeHandler.AddMember)
	employee.GET("/suppliers", employeeHandler.Suppliers)
	employee.GET("/maintenance", employeeHandler.Maintenance)
	employee.POST("/maintenance", employeeHandler.AddMaintenanceLog)
	employee.GET("/profile", employeeHandler.Profile)

	// --- Manager screens. Operational pages reuse the employee handlers
	// under manager paths; only staff management is manager-specific. ---
	manager := e.Group("/manager", middleware.RequireRole(domain.RoleManager))
	manager.GET("/staff", managerHandler.Staff)
	manager.POST("/staff", managerHandler.UpdateStaff)
	manager.GET("/classes", employeeHandler.ManageClasses)
	manager.POST("/classes", employeeHandler.CreateClass)
	manager.GET("/equipment", employeeHandler.Equipment)
	manager.POST("/equipment", employeeHandler.UpdateEquipment)
	manager.GET("/inventory", employeeHandler.Inventory)
	manager.POST("/inventory", employeeHandler.UpdateInventory)
	manager.GET("/suppliers", employeeHandler.Suppliers)
	manager.GET("/members", employeeHandler.Members)
	manager.POST("/members", employeeHandler.AddMember)

	// --- JSON endpoints for the chat widget ---
	apiGroup := e.Group("/api", middleware.RequireSessionJSON())
	apiGroup.POST("/chat", chatHandler.Send)
	apiGroup.GET("/chat/history", chatHandler.History)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

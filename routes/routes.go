package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fixflow/handlers"
	"fixflow/middleware"
	"fixflow/models"
	"fixflow/services/user"
)

// HandlerBundle groups everything route registration needs.
type HandlerBundle struct {
	Users *user.DefaultUserService

	UserHandler     *handlers.UserHandler
	BookingHandler  *handlers.BookingHandler
	OrderHandler    *handlers.OrderHandler
	ShiftHandler    *handlers.ShiftHandler
	EmployeeHandler *handlers.EmployeeHandler
	CalendarHandler *handlers.CalendarHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, b *HandlerBundle) {
	r.Use(cors.Default())

	auth := middleware.Authenticate(b.Users)
	api := r.Group("/api")

	// Accounts and sessions.
	api.POST("/users", b.UserHandler.Register)
	api.POST("/auth/signin", b.UserHandler.Authenticate)
	api.POST("/auth/signout", auth, b.UserHandler.SignOut)

	// Booking: guests may create orders and check availability.
	api.POST("/orders", middleware.OptionalAuth(b.Users), b.BookingHandler.CreateOrder)
	api.GET("/availability", b.BookingHandler.FreeHours)

	// Order queries and lifecycle.
	orders := api.Group("/orders", auth)
	{
		orders.GET("", b.OrderHandler.List)
		orders.GET("/:id", b.OrderHandler.Get)
		orders.DELETE("/:id", b.OrderHandler.Cancel)
		orders.POST("/:id/close",
			middleware.RequireRoles(models.RoleManager, models.RoleSupport, models.RoleAdministrator),
			b.OrderHandler.Close)
	}
	api.GET("/order-history", auth,
		middleware.RequireRoles(models.RoleSupport, models.RoleAdministrator),
		b.OrderHandler.History)

	// Shift management.
	shifts := api.Group("/shifts", auth)
	{
		shifts.POST("", middleware.RequireRoles(models.RoleAdministrator), b.ShiftHandler.Create)
		shifts.GET("", middleware.RequireRoles(models.RoleAdministrator, models.RoleManager), b.ShiftHandler.List)
		shifts.DELETE("/:id", middleware.RequireRoles(models.RoleAdministrator), b.ShiftHandler.Delete)
	}

	// Employee management.
	employees := api.Group("/employees", auth)
	{
		employees.POST("", middleware.RequireRoles(models.RoleAdministrator), b.EmployeeHandler.Create)
		employees.GET("", middleware.RequireRoles(models.RoleAdministrator, models.RoleManager), b.EmployeeHandler.List)
		employees.DELETE("/:id", middleware.RequireRoles(models.RoleAdministrator), b.EmployeeHandler.Delete)
	}

	// Calendar exceptions.
	calendar := api.Group("/calendar", auth)
	{
		calendar.PUT("", middleware.RequireRoles(models.RoleAdministrator), b.CalendarHandler.Upsert)
		calendar.GET("", middleware.RequireRoles(models.RoleAdministrator, models.RoleManager, models.RoleSupport), b.CalendarHandler.List)
		calendar.DELETE("/:date", middleware.RequireRoles(models.RoleAdministrator), b.CalendarHandler.Delete)
	}
}

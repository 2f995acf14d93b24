package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/configs"
	"github.com/abdul-09/slooze-restaurant/controllers"
	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/middlewares"
	"github.com/abdul-09/slooze-restaurant/pkg/mailer"
	"github.com/abdul-09/slooze-restaurant/pkg/paypal"
	"github.com/abdul-09/slooze-restaurant/repository"
	"github.com/abdul-09/slooze-restaurant/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, gateway paypal.Gateway, mail mailer.Sender) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, mail, cfg.JWTSecret, cfg.JWTTTL, cfg.ResetTTL, cfg.FrontendBaseURL)
	userSvc := services.NewUserService(userRepo)
	restSvc := services.NewRestaurantService(restRepo)
	catSvc := services.NewCategoryService(catRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo, catRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo, userRepo, gateway, mail)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo)
	dashSvc := services.NewDashboardService(userRepo, restRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	catCtrl := controllers.NewCategoryController(catSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc, checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	payCtrl := controllers.NewPaymentController(checkoutSvc)
	dashCtrl := controllers.NewDashboardController(dashSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/password-reset", authCtrl.RequestPasswordReset)
		a.POST("/password-reset/confirm", authCtrl.ConfirmPasswordReset)
	}
	r.GET("/auth/me", auth, authCtrl.Me)

	// Catalog: menu and category listings are public reads
	r.GET("/menu-items", menuCtrl.List)
	r.GET("/menu-items/:id", menuCtrl.Get)
	r.GET("/categories", catCtrl.List)

	// Catalog (authenticated reads, admin writes enforced in services)
	u := r.Group("/", auth)
	{
		u.GET("/restaurants", restCtrl.List)
		u.GET("/restaurants/:id", restCtrl.Get)
		u.POST("/restaurants", restCtrl.Create)
		u.PATCH("/restaurants/:id", restCtrl.Update)
		u.DELETE("/restaurants/:id", restCtrl.Delete)

		u.POST("/menu-items", menuCtrl.Create)
		u.PATCH("/menu-items/:id", menuCtrl.Update)
		u.DELETE("/menu-items/:id", menuCtrl.Delete)

		u.POST("/categories", catCtrl.Create)
		u.PATCH("/categories/:id", catCtrl.Update)
		u.DELETE("/categories/:id", catCtrl.Delete)
	}

	// Cart (owner only; checkout restricted further by Authorize)
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/quantity", cartCtrl.UpdateQuantity)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.POST("/checkout", cartCtrl.CheckoutCart)
	}

	// Gateway completion callback
	r.POST("/payments/complete", auth, payCtrl.Complete)

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.POST("/:id/status", orderCtrl.UpdateStatus)
		orders.POST("/:id/cancel", orderCtrl.Cancel)
		orders.POST("/:id/payment-method", orderCtrl.UpdatePaymentMethod)
		orders.DELETE("/:id", orderCtrl.Delete)
	}

	// User management (admin sees all, manager their region)
	users := r.Group("/users", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin, entity.RoleManager))
	{
		users.GET("", userCtrl.List)
		users.GET("/:id", userCtrl.Get)
		users.PATCH("/:id", userCtrl.Update)
		users.DELETE("/:id", userCtrl.Delete)
	}

	// Dashboards
	dash := r.Group("/dashboard", auth)
	{
		dash.GET("/admin", dashCtrl.Admin)
		dash.GET("/manager", dashCtrl.Manager)
		dash.GET("/member", dashCtrl.Member)
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-admin/internal/application/auth"
	"github.com/tu-usuario/tienda-admin/internal/application/usecase"
	"github.com/tu-usuario/tienda-admin/pkg/config"
	"github.com/tu-usuario/tienda-admin/pkg/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	RoleUC     *usecase.RoleUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	OrderUC    *usecase.OrderUseCase
	MessageUC  *usecase.MessageUseCase
	LanguageUC *usecase.LanguageUseCase
	Session    config.SessionConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	cookieName := deps.Session.CookieName
	if cookieName == "" {
		cookieName = session.DefaultCookieName
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	authGroup := app.Group("/auth")
	authGroup.Post("/create-first-admin", authHandler.CreateFirstAdmin)
	authGroup.Post("/log-in", authHandler.Login)
	authGroup.Get("/log-out", authHandler.Logout)

	// Mensajes de clientes: la entrada es pública, la tienda no exige cuenta.
	messageHandler := NewMessageHandler(deps.MessageUC)
	app.Post("/customer-message", messageHandler.Create)

	// Rutas protegidas (requieren cookie de sesión)
	protected := app.Group("/", SessionMiddleware(deps.Session.Secret, cookieName))

	// Roles y privilegios
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles := protected.Group("/admin/user-role")
	roles.Get("/all", roleHandler.List)
	roles.Post("/create", roleHandler.Create)
	roles.Patch("/patch/:id", roleHandler.Update)
	// batch antes de :id para que "batch" no se capture como parámetro
	roles.Delete("/delete/batch", roleHandler.DeleteBatch)
	roles.Delete("/delete/:id", roleHandler.Delete)
	roles.Get("/:id", roleHandler.GetByID)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	protected.Post("/admin/user/create", userHandler.Create)

	// Catálogo
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/admin/product")
	products.Post("/", productHandler.Create)
	products.Get("/all", productHandler.List)
	products.Patch("/stock/:id", productHandler.RegisterStock)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categorías
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/admin/product-category")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/all", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Órdenes
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/admin/order")
	orders.Post("/", orderHandler.Create)
	orders.Get("/all", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)

	// Mensajes (gestión)
	messages := protected.Group("/admin/customer-message")
	messages.Get("/all", messageHandler.List)
	messages.Patch("/:id", messageHandler.UpdateStatus)

	// Idiomas
	languageHandler := NewLanguageHandler(deps.LanguageUC)
	protected.Get("/language/all", languageHandler.List)
}

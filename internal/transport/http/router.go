package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/walkinit/storefront/internal/auth"
	"github.com/walkinit/storefront/internal/handlers"
)

type Deps struct {
	JWTSecret []byte

	AuthHandler     *handlers.AuthHandler
	ProductHandler  *handlers.ProductHandler
	CartHandler     *handlers.CartHandler
	CheckoutHandler *handlers.CheckoutHandler
	AdminHandler    *handlers.AdminHandler
	ChatHandler     *handlers.ChatHandler
	SearchHandler   *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)

	co := v1.Group("/checkout")
	co.GET("", d.CheckoutHandler.GetState)
	co.POST("", d.CheckoutHandler.Begin)
	co.POST("/cancel", d.CheckoutHandler.Cancel)
	co.POST("/submit", d.CheckoutHandler.Submit)
	co.POST("/reset", d.CheckoutHandler.Reset)

	v1.POST("/chat", d.ChatHandler.Chat)

	admin := v1.Group("/admin", auth.RequireAdmin(d.JWTSecret))
	admin.POST("/products", d.AdminHandler.CreateProduct)
	admin.POST("/describe", d.AdminHandler.GenerateDescription)

	// search is optional: no ES, no endpoint
	if d.SearchHandler != nil && d.SearchHandler.ES != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}
}

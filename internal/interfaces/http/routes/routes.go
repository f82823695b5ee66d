// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/WebDevchicka/Petal-Pine/internal/config"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/cart"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/catalog"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/checkout"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/pricing"
	"github.com/WebDevchicka/Petal-Pine/internal/interfaces/http/handlers"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SetupRoutes wires the storefront services and registers every route
func SetupRoutes(rg *gin.RouterGroup, redisClient *redis.Client, cfg *config.Config) {
	catalogService := catalog.NewService()
	pricingEngine := pricing.NewEngine(catalogService)
	cartStore := cart.NewRedisStore(redisClient, cfg.Cart.TTL)
	cartService := cart.NewService(cartStore, catalogService, pricingEngine)
	checkoutService := checkout.NewService(cartService)

	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg)
	cartHandler := handlers.NewCartHandler(cartService, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cfg)

	// Product catalog (read-only, no auth anywhere on this storefront)
	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}

	// Cart routes, scoped to the session cookie
	cartRoutes := rg.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.GET("/count", cartHandler.GetCartCount)
		cartRoutes.POST("/items", cartHandler.AddToCart)
		cartRoutes.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartRoutes.DELETE("", cartHandler.ClearCart)
	}

	// Checkout confirms and empties the cart; there is no payment step
	rg.POST("/checkout", checkoutHandler.Checkout)
}

package router

import (
	"github.com/shopfront/internal/config"
	publichandlers "github.com/shopfront/internal/http/handlers/public"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(CartSessionMiddleware(cfg.Session))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开目录接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/featured", publicHandler.GetFeaturedProducts)
			public.GET("/products/:id", publicHandler.GetProductByID)
			public.GET("/categories", publicHandler.GetCategories)
		}

		// 购物车接口（基于会话 Cookie）
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.POST("/items/:product_id/quantity", publicHandler.ChangeCartItemQuantity)
			cart.DELETE("/items/:product_id", publicHandler.DeleteCartItem)
		}

		// 结算接口
		checkout := apiV1.Group("/checkout")
		{
			checkout.POST("/validate", publicHandler.ValidateCheckout)
			checkout.POST("/submit", publicHandler.SubmitCheckout)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

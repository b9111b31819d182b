package provider

import (
	"time"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
	"github.com/shopfront/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository

	// Services
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService

	// 会话购物车管理（每个会话一个独立的 CartStore 实例）
	CartSessions *service.CartSessionManager
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{
		Config: cfg,
	}

	// 1. 初始化 Repositories
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)

	// 2. 初始化会话管理与 Services
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	c.CartSessions = service.NewCartSessionManager(ttl)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.ProductRepo, c.CartSessions)
	c.CheckoutService = service.NewCheckoutService(c.CartSessions)

	return c
}

package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductView 公共商品响应结构（分类展平为 slug）
type ProductView struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	PriceAmount models.Money `json:"price_amount"`
	Currency    string       `json:"currency"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
}

func newProductView(product models.Product, currency string) ProductView {
	return ProductView{
		ID:          product.ID,
		Name:        product.Name,
		PriceAmount: product.PriceAmount,
		Currency:    currency,
		Category:    product.Category.Slug,
		Image:       product.Image,
	}
}

func newProductViews(products []models.Product, currency string) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product, currency))
	}
	return views
}

// GetProducts 获取商品列表
// 支持 search（名称模糊匹配）和 category（slug 或 all）筛选。
func (h *Handler) GetProducts(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	category := strings.TrimSpace(c.DefaultQuery("category", "all"))

	products, err := h.CatalogService.ListPublic(search, category)
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}

	response.Success(c, gin.H{
		"items": newProductViews(products, constants.SiteCurrencyDefault),
	})
}

// GetFeaturedProducts 获取推荐商品（首页）
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))

	products, err := h.CatalogService.ListFeatured(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}

	response.Success(c, gin.H{
		"items": newProductViews(products, constants.SiteCurrencyDefault),
	})
}

// GetProductByID 获取商品详情
func (h *Handler) GetProductByID(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "product id invalid", nil)
		return
	}

	product, err := h.CatalogService.GetPublicByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	response.Success(c, newProductView(*product, constants.SiteCurrencyDefault))
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.Categories()
	if err != nil {
		respondError(c, response.CodeInternal, "category list failed", err)
		return
	}
	response.Success(c, gin.H{"items": categories})
}

package service

import (
	"strings"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

const defaultFeaturedLimit = 3

// CatalogService 目录查询服务（目录只读，无变更操作）
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListPublic 按名称模糊匹配和分类过滤目录，保持目录顺序。
// search 为空匹配全部；category 为 "all" 或空不过滤分类；
// 未知分类值不匹配任何商品。
func (s *CatalogService) ListPublic(search, category string) ([]models.Product, error) {
	filter := repository.ProductListFilter{
		Search:       strings.TrimSpace(search),
		WithCategory: true,
	}

	category = strings.TrimSpace(category)
	if category != "" && category != constants.CategoryAll {
		matched, err := s.categoryRepo.GetBySlug(category)
		if err != nil {
			return nil, err
		}
		if matched == nil {
			// 未知分类：按规格不做兜底放行，直接空结果
			return []models.Product{}, nil
		}
		filter.CategoryID = matched.ID
	}

	return s.productRepo.List(filter)
}

// ListFeatured 返回目录顺序靠前的推荐商品（首页展示）
func (s *CatalogService) ListFeatured(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	return s.productRepo.List(repository.ProductListFilter{
		Limit:        limit,
		WithCategory: true,
	})
}

// GetPublicByID 获取商品详情
func (s *CatalogService) GetPublicByID(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Categories 获取固定分类列表（筛选下拉框）
func (s *CatalogService) Categories() ([]models.Category, error) {
	return s.categoryRepo.List()
}

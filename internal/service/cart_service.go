package service

import (
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

// CartView 购物车视图（用于响应）
type CartView struct {
	Lines   []CartLine   `json:"lines"`
	Total   models.Money `json:"total"`
	Count   int          `json:"count"`
	IsEmpty bool         `json:"is_empty"`
}

// CartService 购物车服务
// 负责把商品查找和会话定位接到购物车存储上；
// 数量边界和行快照等规则由 CartStore 保证。
type CartService struct {
	productRepo repository.ProductRepository
	sessions    *CartSessionManager
}

// NewCartService 创建购物车服务
func NewCartService(productRepo repository.ProductRepository, sessions *CartSessionManager) *CartService {
	return &CartService{
		productRepo: productRepo,
		sessions:    sessions,
	}
}

// Get 获取会话购物车视图
func (s *CartService) Get(sessionID string) CartView {
	store := s.sessions.Get(sessionID)
	return CartView{
		Lines:   store.Lines(),
		Total:   store.Total(),
		Count:   store.Count(),
		IsEmpty: store.IsEmpty(),
	}
}

// AddItem 把商品加入会话购物车
func (s *CartService) AddItem(sessionID string, productID uint, quantity int) error {
	if productID == 0 {
		return ErrInvalidCartItem
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotAvailable
	}
	return s.sessions.Get(sessionID).AddItem(product, quantity)
}

// ChangeQuantity 按增量调整商品数量（下限 1，缺失 ID 无操作）
func (s *CartService) ChangeQuantity(sessionID string, productID uint, delta int) {
	s.sessions.Get(sessionID).ChangeQuantity(productID, delta)
}

// RemoveItem 从会话购物车删除商品（缺失 ID 无操作）
func (s *CartService) RemoveItem(sessionID string, productID uint) {
	s.sessions.Get(sessionID).RemoveItem(productID)
}

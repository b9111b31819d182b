package service

import (
	"sync"
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"

	"github.com/shopspring/decimal"
)

// CartLine 购物车行：每个商品 ID 至多一行
type CartLine struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`     // 加入时的名称快照
	Price     models.Money `json:"price"`    // 加入时的单价快照
	Image     string       `json:"image"`    // 加入时的图片快照
	Quantity  int          `json:"quantity"` // 恒 >= 1
	AddedAt   time.Time    `json:"added_at"`
}

// CartStore 会话级购物车存储
// 每个会话持有独立实例，不做模块级单例。所有操作同步完成，
// 效果对后续调用立即可见；互斥锁只为 HTTP 层并发重入兜底。
type CartStore struct {
	mu      sync.Mutex
	lines   []*CartLine
	index   map[uint]*CartLine
	version uint64
}

// NewCartStore 创建空购物车
func NewCartStore() *CartStore {
	return &CartStore{
		index: make(map[uint]*CartLine),
	}
}

// AddItem 添加商品：已有行累加数量，新行记录商品快照。
// 数量小于 1 视为非法输入。
func (s *CartStore) AddItem(product *models.Product, quantity int) error {
	if product == nil || product.ID == 0 {
		return ErrInvalidCartItem
	}
	if quantity < constants.CartQuantityMin {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if line, ok := s.index[product.ID]; ok {
		line.Quantity += quantity
		s.version++
		return nil
	}

	line := &CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.PriceAmount,
		Image:     product.Image,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	s.lines = append(s.lines, line)
	s.index[product.ID] = line
	s.version++
	return nil
}

// ChangeQuantity 按增量调整数量，下限钳制为 1。
// 商品不在购物车中时静默返回，不视为错误。
func (s *CartStore) ChangeQuantity(productID uint, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.index[productID]
	if !ok {
		return
	}
	quantity := line.Quantity + delta
	if quantity < constants.CartQuantityMin {
		quantity = constants.CartQuantityMin
	}
	if quantity == line.Quantity {
		return
	}
	line.Quantity = quantity
	s.version++
}

// RemoveItem 删除购物车行；重复删除同一 ID 保持无操作语义。
func (s *CartStore) RemoveItem(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[productID]; !ok {
		return
	}
	delete(s.index, productID)
	for i, line := range s.lines {
		if line.ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.version++
}

// Lines 按加入顺序返回购物车行快照
func (s *CartStore) Lines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]CartLine, 0, len(s.lines))
	for _, line := range s.lines {
		lines = append(lines, *line)
	}
	return lines
}

// Total 合计金额：sum(单价 * 数量)，空购物车为 0
func (s *CartStore) Total() models.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}

// IsEmpty 购物车是否为空
func (s *CartStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Count 商品件数合计（用于导航栏角标）
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Version 变更版本号，每次变更递增，可作为派生值缓存键
func (s *CartStore) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

package public

import (
	"strconv"

	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
// Quantity 用指针区分“未传”（默认 1）和“显式 0”（非法，拒绝）。
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// ChangeQuantityRequest 调整数量请求（带符号增量，0 为合法无操作）
type ChangeQuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	response.Success(c, h.CartService.Get(sessionID))
}

// AddCartItem 把商品加入购物车
// 未传数量时默认 1；同一商品重复加入累加数量。
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if err := h.CartService.AddItem(sessionID, req.ProductID, quantity); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, h.CartService.Get(sessionID))
}

// ChangeCartItemQuantity 按增量调整购物车商品数量
// 数量下限钳制为 1；商品不在购物车时为无操作。
func (h *Handler) ChangeCartItemQuantity(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	var req ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	h.CartService.ChangeQuantity(sessionID, productID, *req.Delta)
	response.Success(c, h.CartService.Get(sessionID))
}

// DeleteCartItem 删除购物车商品
// 对不存在的商品保持无操作语义（快速重复点击安全）。
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	h.CartService.RemoveItem(sessionID, productID)
	response.Success(c, h.CartService.Get(sessionID))
}

func parseProductID(c *gin.Context) (uint, bool) {
	rawID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "product id invalid", nil)
		return 0, false
	}
	return uint(productID), true
}

package service

import (
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"

	"github.com/google/uuid"
)

// CheckoutReceipt 结算完成回执。
// 演示范围内不产生真实支付，也不向任何外部服务提交数据，
// 回执只用于向展示层宣告完成。
type CheckoutReceipt struct {
	ConfirmationNo string       `json:"confirmation_no"`
	Total          models.Money `json:"total"`
	Currency       string       `json:"currency"`
	SubmittedAt    time.Time    `json:"submitted_at"`
}

// CheckoutService 结算服务
type CheckoutService struct {
	sessions *CartSessionManager
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(sessions *CartSessionManager) *CheckoutService {
	return &CheckoutService{sessions: sessions}
}

// Validate 校验结算表单，返回全部失败字段
func (s *CheckoutService) Validate(fields map[string]string) map[string]string {
	return ValidateCheckoutForm(fields)
}

// Submit 提交结算。
// 任何字段校验失败则整体拒绝并返回全部字段错误，绝不部分生效；
// 校验通过时生成回执，金额取当前会话购物车合计。
func (s *CheckoutService) Submit(sessionID string, fields map[string]string) (*CheckoutReceipt, map[string]string, error) {
	fieldErrors := ValidateCheckoutForm(fields)
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, ErrValidationFailed
	}

	store := s.sessions.Get(sessionID)
	receipt := &CheckoutReceipt{
		ConfirmationNo: uuid.NewString(),
		Total:          store.Total(),
		Currency:       constants.SiteCurrencyDefault,
		SubmittedAt:    time.Now(),
	}
	return receipt, nil, nil
}

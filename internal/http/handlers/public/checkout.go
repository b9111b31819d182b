package public

import (
	"errors"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutFormRequest 结算表单请求
type CheckoutFormRequest struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	Country    string `json:"country"`
}

func (r CheckoutFormRequest) fields() map[string]string {
	return map[string]string{
		constants.CheckoutFieldCardNumber: r.CardNumber,
		constants.CheckoutFieldCardName:   r.CardName,
		constants.CheckoutFieldExpiryDate: r.ExpiryDate,
		constants.CheckoutFieldCVV:        r.CVV,
		constants.CheckoutFieldAddress:    r.Address,
		constants.CheckoutFieldCity:       r.City,
		constants.CheckoutFieldState:      r.State,
		constants.CheckoutFieldZipCode:    r.ZipCode,
		constants.CheckoutFieldCountry:    r.Country,
	}
}

// ValidateCheckout 校验结算表单（不提交）
// 返回全部失败字段，供展示层逐字段提示。
func (h *Handler) ValidateCheckout(c *gin.Context) {
	var req CheckoutFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	fieldErrors := h.CheckoutService.Validate(req.fields())
	response.Success(c, gin.H{
		"valid":  len(fieldErrors) == 0,
		"errors": fieldErrors,
	})
}

// SubmitCheckout 提交结算
// 任一字段失败则整体拒绝并带回全部字段错误；成功时返回完成回执。
func (h *Handler) SubmitCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req CheckoutFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	receipt, fieldErrors, err := h.CheckoutService.Submit(sessionID, req.fields())
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			response.ErrorWithData(c, response.CodeBadRequest, "checkout validation failed", gin.H{
				"errors": fieldErrors,
			})
			return
		}
		respondError(c, response.CodeInternal, "checkout failed", err)
		return
	}

	response.Success(c, receipt)
}

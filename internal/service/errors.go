package service

import "errors"

// 业务错误定义；全部可通过修正用户输入恢复，不做重试。
var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidCartItem     = errors.New("invalid cart item")
	ErrProductNotAvailable = errors.New("product not available")
	ErrValidationFailed    = errors.New("checkout form validation failed")
)

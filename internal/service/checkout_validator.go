package service

import (
	"regexp"
	"strings"

	"github.com/shopfront/internal/constants"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryDatePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	zipCodePattern    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// checkoutRule 单字段校验规则
type checkoutRule struct {
	Field   string
	Check   func(value string) bool
	Message string
}

func nonEmpty(value string) bool {
	return value != ""
}

// checkoutRules 结算表单规则表。
// 规则按表驱动声明而非命令式分支，便于逐条枚举测试；
// 顺序即表单字段顺序。
var checkoutRules = []checkoutRule{
	{
		Field:   constants.CheckoutFieldCardNumber,
		Check:   cardNumberPattern.MatchString,
		Message: "Card number must be 16 digits",
	},
	{
		Field:   constants.CheckoutFieldCardName,
		Check:   nonEmpty,
		Message: "Name on card is required",
	},
	{
		Field:   constants.CheckoutFieldExpiryDate,
		Check:   expiryDatePattern.MatchString,
		Message: "Expiry date must be in MM/YY format",
	},
	{
		Field:   constants.CheckoutFieldCVV,
		Check:   cvvPattern.MatchString,
		Message: "CVV must be 3 or 4 digits",
	},
	{
		Field:   constants.CheckoutFieldAddress,
		Check:   nonEmpty,
		Message: "Address is required",
	},
	{
		Field:   constants.CheckoutFieldCity,
		Check:   nonEmpty,
		Message: "City is required",
	},
	{
		Field:   constants.CheckoutFieldState,
		Check:   nonEmpty,
		Message: "State is required",
	},
	{
		Field:   constants.CheckoutFieldZipCode,
		Check:   zipCodePattern.MatchString,
		Message: "ZIP code must be in 12345 or 12345-6789 format",
	},
	{
		Field:   constants.CheckoutFieldCountry,
		Check:   nonEmpty,
		Message: "Country is required",
	},
}

// CheckoutFieldNames 按表单顺序返回全部字段名
func CheckoutFieldNames() []string {
	names := make([]string, 0, len(checkoutRules))
	for _, rule := range checkoutRules {
		names = append(names, rule.Field)
	}
	return names
}

// ValidateCheckoutForm 校验结算表单。
// 所有失败字段一并返回（字段名 -> 错误信息），全部通过时返回空 map。
func ValidateCheckoutForm(fields map[string]string) map[string]string {
	fieldErrors := make(map[string]string)
	for _, rule := range checkoutRules {
		value := strings.TrimSpace(fields[rule.Field])
		if !rule.Check(value) {
			fieldErrors[rule.Field] = rule.Message
		}
	}
	return fieldErrors
}

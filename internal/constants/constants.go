package constants

// 分类 slug 常量（目录分类为固定枚举）
const (
	CategoryAll         = "all"
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
)

// 购物车会话常量
const (
	CartSessionCookie = "shopfront_session"
	CartQuantityMin   = 1
)

// 结算表单字段常量
const (
	CheckoutFieldCardNumber = "cardNumber"
	CheckoutFieldCardName   = "cardName"
	CheckoutFieldExpiryDate = "expiryDate"
	CheckoutFieldCVV        = "cvv"
	CheckoutFieldAddress    = "address"
	CheckoutFieldCity       = "city"
	CheckoutFieldState      = "state"
	CheckoutFieldZipCode    = "zipCode"
	CheckoutFieldCountry    = "country"
)

// 站点货币常量
const (
	SiteCurrencyDefault = "USD"
)

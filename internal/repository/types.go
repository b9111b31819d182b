package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	CategoryID   uint   // 0 表示不过滤分类
	Search       string // 名称模糊匹配，空串匹配所有
	Limit        int    // 0 表示不限制
	WithCategory bool
}

package models

import "time"

// Product 商品表
// 目录在进程内只读：启动时写入后不再变更，也没有对外的增删改接口。
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                      // 主键
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`                         // 分类ID
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`                    // 商品名称
	PriceAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 价格金额
	Image       string    `gorm:"type:varchar(500)" json:"image"`                            // 图片地址
	SortOrder   int       `gorm:"default:0;index" json:"sort_order"`                         // 排序权重
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                                // 更新时间

	// 关联
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

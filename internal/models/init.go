package models

import (
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"

	"gorm.io/gorm"
)

type demoProduct struct {
	Name     string
	Price    string
	Category string
	Image    string
}

// 演示目录数据：六件商品，electronics / clothing 交替
var demoCatalog = []demoProduct{
	{Name: "Product 1", Price: "99.99", Category: constants.CategoryElectronics, Image: "https://via.placeholder.com/300"},
	{Name: "Product 2", Price: "149.99", Category: constants.CategoryClothing, Image: "https://via.placeholder.com/300"},
	{Name: "Product 3", Price: "199.99", Category: constants.CategoryElectronics, Image: "https://via.placeholder.com/300"},
	{Name: "Product 4", Price: "79.99", Category: constants.CategoryClothing, Image: "https://via.placeholder.com/300"},
	{Name: "Product 5", Price: "299.99", Category: constants.CategoryElectronics, Image: "https://via.placeholder.com/300"},
	{Name: "Product 6", Price: "129.99", Category: constants.CategoryClothing, Image: "https://via.placeholder.com/300"},
}

var demoCategories = []Category{
	{Slug: constants.CategoryElectronics, Name: "Electronics", SortOrder: 1},
	{Slug: constants.CategoryClothing, Name: "Clothing", SortOrder: 2},
}

// SeedDemoCatalog 写入演示目录数据。
// 目录非空时跳过，保证目录在进程生命周期内固定只读。
func SeedDemoCatalog(db *gorm.DB) error {
	if db == nil {
		db = DB
	}

	var productCount int64
	if err := db.Model(&Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount > 0 {
		logger.Debugw("demo_catalog_seed_skipped", "products", productCount)
		return nil
	}

	categoryIDs := map[string]uint{}
	for _, category := range demoCategories {
		var existing Category
		err := db.Where("slug = ?", category.Slug).First(&existing).Error
		if err == nil {
			categoryIDs[existing.Slug] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		created := category
		if err := db.Create(&created).Error; err != nil {
			return err
		}
		categoryIDs[created.Slug] = created.ID
	}

	for index, item := range demoCatalog {
		price, err := NewMoneyFromString(item.Price)
		if err != nil {
			return err
		}
		product := Product{
			CategoryID:  categoryIDs[item.Category],
			Name:        item.Name,
			PriceAmount: price,
			Image:       item.Image,
			SortOrder:   index + 1,
		}
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}

	logger.Infow("demo_catalog_seeded",
		"categories", len(demoCategories),
		"products", len(demoCatalog),
	)
	return nil
}

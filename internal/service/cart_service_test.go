package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) *CartService {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	if err := models.SeedDemoCatalog(db); err != nil {
		t.Fatalf("seed demo catalog failed: %v", err)
	}
	productRepo := repository.NewProductRepository(db)
	sessions := NewCartSessionManager(time.Hour)
	return NewCartService(productRepo, sessions)
}

func TestCartServiceAddItem(t *testing.T) {
	svc := setupCartServiceTest(t)

	if err := svc.AddItem("session-a", 1, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.AddItem("session-a", 2, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	view := svc.Get("session-a")
	if len(view.Lines) != 2 {
		t.Fatalf("lines want 2 got %d", len(view.Lines))
	}
	if view.Total.String() != "399.97" {
		t.Fatalf("total want 399.97 got %s", view.Total.String())
	}
	if view.Count != 3 {
		t.Fatalf("count want 3 got %d", view.Count)
	}
	if view.IsEmpty {
		t.Fatalf("cart with lines should not be empty")
	}
}

func TestCartServiceAddUnknownProduct(t *testing.T) {
	svc := setupCartServiceTest(t)

	if err := svc.AddItem("session-a", 999, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("unknown product want ErrProductNotAvailable got %v", err)
	}
	if err := svc.AddItem("session-a", 0, 1); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("zero product id want ErrInvalidCartItem got %v", err)
	}
	if err := svc.AddItem("session-a", 1, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity want ErrInvalidQuantity got %v", err)
	}
	if !svc.Get("session-a").IsEmpty {
		t.Fatalf("rejected adds should leave cart empty")
	}
}

func TestCartServiceSessionIsolation(t *testing.T) {
	svc := setupCartServiceTest(t)

	if err := svc.AddItem("session-a", 1, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if !svc.Get("session-b").IsEmpty {
		t.Fatalf("other session cart should stay empty")
	}
}

func TestCartServiceChangeQuantityAndRemove(t *testing.T) {
	svc := setupCartServiceTest(t)

	if err := svc.AddItem("session-a", 1, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	svc.ChangeQuantity("session-a", 1, -10)
	view := svc.Get("session-a")
	if view.Lines[0].Quantity != 1 {
		t.Fatalf("quantity should clamp to 1, got %d", view.Lines[0].Quantity)
	}

	// 缺失 ID 无操作
	svc.ChangeQuantity("session-a", 42, 5)
	svc.RemoveItem("session-a", 42)
	if got := len(svc.Get("session-a").Lines); got != 1 {
		t.Fatalf("missing ids should be no-ops, lines got %d", got)
	}

	svc.RemoveItem("session-a", 1)
	if !svc.Get("session-a").IsEmpty {
		t.Fatalf("cart should be empty after remove")
	}
}

package service

import (
	"context"
	"time"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/pkg/cache"
	"go-pharmacy-api/pkg/money"

	"gorm.io/gorm"
)

const CacheTagDashboard = "dashboard"

// DashboardStats is the summary block at the top of the dashboard.
// Amounts are returned both raw and formatted so the client never
// reimplements currency formatting.
type DashboardStats struct {
	TotalProducts        int64   `json:"totalProducts"`
	LowStockCount        int64   `json:"lowStockCount"`
	ExpiringSoonCount    int64   `json:"expiringSoonCount"`
	SalesTodayCount      int64   `json:"salesTodayCount"`
	SalesTodayTotal      float64 `json:"salesTodayTotal"`
	SalesTodayFormatted  string  `json:"salesTodayFormatted"`
	ReceivableTotal      float64 `json:"receivableTotal"`
	ReceivableFormatted  string  `json:"receivableFormatted"`
	PayableTotal         float64 `json:"payableTotal"`
	PayableFormatted     string  `json:"payableFormatted"`
}

type DashboardService interface {
	Stats() (*DashboardStats, error)
	LowStock() ([]model.Product, error)
	StockMovement(days int) ([]repository.StockMovementData, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	creditRepo  repository.CreditRepository
	binCardRepo repository.BinCardRepository
	db          *gorm.DB
	formatter   *money.Formatter
	store       *cache.Store
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	creditRepo repository.CreditRepository,
	binCardRepo repository.BinCardRepository,
	db *gorm.DB,
	formatter *money.Formatter,
	store *cache.Store,
) DashboardService {
	return &dashboardService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		creditRepo:  creditRepo,
		binCardRepo: binCardRepo,
		db:          db,
		formatter:   formatter,
		store:       store,
	}
}

const expiryWindow = 90 * 24 * time.Hour

func (s *dashboardService) Stats() (*DashboardStats, error) {
	ctx := context.Background()
	key := cache.ListKey(CacheTagDashboard, 1, 1, "stats", "", "")

	var stats DashboardStats
	if s.store.Get(ctx, key, &stats) {
		return &stats, nil
	}

	if err := s.db.Model(&model.Product{}).
		Where("status = ?", model.ProductActive).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Product{}).
		Where("min_level > 0 AND quantity <= min_level AND status = ?", model.ProductActive).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Product{}).
		Where("expiry_date IS NOT NULL AND expiry_date <= ? AND status = ?",
			time.Now().Add(expiryWindow), model.ProductActive).
		Count(&stats.ExpiringSoonCount).Error; err != nil {
		return nil, err
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	var err error
	if stats.SalesTodayCount, err = s.saleRepo.CountSince(startOfDay); err != nil {
		return nil, err
	}
	if stats.SalesTodayTotal, err = s.saleRepo.SumSince(startOfDay); err != nil {
		return nil, err
	}
	if stats.ReceivableTotal, err = s.creditRepo.OutstandingTotal(model.CreditReceivable); err != nil {
		return nil, err
	}
	if stats.PayableTotal, err = s.creditRepo.OutstandingTotal(model.CreditPayable); err != nil {
		return nil, err
	}

	stats.SalesTodayFormatted = s.formatter.Format(stats.SalesTodayTotal)
	stats.ReceivableFormatted = s.formatter.Format(stats.ReceivableTotal)
	stats.PayableFormatted = s.formatter.Format(stats.PayableTotal)

	s.store.Set(ctx, key, stats, CacheTagDashboard)
	return &stats, nil
}

func (s *dashboardService) LowStock() ([]model.Product, error) {
	return s.productRepo.LowStock()
}

// StockMovement returns the daily in/out aggregates for the chart,
// defaulting to the last 30 days.
func (s *dashboardService) StockMovement(days int) ([]repository.StockMovementData, error) {
	if days < 1 || days > 365 {
		days = 30
	}
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	return s.binCardRepo.GetStockMovement(start, end)
}

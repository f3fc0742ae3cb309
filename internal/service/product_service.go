package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/internal/ws"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/cache"
	"go-pharmacy-api/pkg/pagination"
	"go-pharmacy-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies the authenticated user performing an action; it is
// threaded into audit columns, ledger rows and broadcast payloads.
type Actor struct {
	ID    string
	Name  string
	Email string
}

// CacheTagProducts is the invalidation tag for every product listing.
const CacheTagProducts = "products"

// StockAdjustmentRequest records a loss (damage, theft, count shortage)
// against a product, in base units.
type StockAdjustmentRequest struct {
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Reason   string  `json:"reason" validate:"required,max=255"`
}

type productPage struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
}

type ProductService interface {
	Create(req *model.Product, actor Actor) error
	Update(id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error)
	Delete(id uuid.UUID, actor Actor) error
	List(params pagination.Params) ([]model.Product, int64, error)
	FindAll() ([]model.Product, error)
	Get(id uuid.UUID) (*model.Product, error)
	BinCard(id uuid.UUID) ([]model.BinCardEntry, error)
	AdjustStock(id uuid.UUID, req StockAdjustmentRequest, actor Actor) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	binCardRepo repository.BinCardRepository
	notifier    Notifier
	db          *gorm.DB
	wsHub       *ws.Hub
	store       *cache.Store
}

// Notifier is the slice of the notification service stock movements
// need; keeping it narrow lets tests stub it.
type Notifier interface {
	NotifyLowStock(product *model.Product)
}

func NewProductService(
	pRepo repository.ProductRepository,
	bRepo repository.BinCardRepository,
	notifier Notifier,
	db *gorm.DB,
	hub *ws.Hub,
	store *cache.Store,
) ProductService {
	return &productService{
		productRepo: pRepo,
		binCardRepo: bRepo,
		notifier:    notifier,
		db:          db,
		wsHub:       hub,
		store:       store,
	}
}

func validationError(errs []validator.FieldError) error {
	first := errs[0]
	return apierr.Validation(first.Field, first.Message())
}

func (s *productService) Create(req *model.Product, actor Actor) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	existing, _ := s.productRepo.FindByCode(req.ProductCode)
	if existing != nil && existing.ID != uuid.Nil {
		return apierr.Conflict("product code already exists")
	}

	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID
	if req.Status == "" {
		req.Status = model.ProductActive
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		// Opening stock gets its own ledger row so the bin card starts
		// at the right balance.
		if req.Quantity > 0 {
			entry := &model.BinCardEntry{
				ProductID:      req.ID,
				EntryDate:      time.Now(),
				DocumentNumber: "OPEN-" + req.ProductCode,
				SourceType:     model.BinCardOpening,
				QuantityIn:     req.Quantity,
				Balance:        model.NextBalance(0, req.Quantity, 0, 0),
			}
			entry.CreatedBy = actor.ID
			return s.binCardRepo.Append(tx, entry)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.store.Invalidate(context.Background(), CacheTagProducts)
	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":    "stock_update",
		"action":  "product_created",
		"product": map[string]interface{}{"id": req.ID, "code": req.ProductCode, "name": req.Name, "quantity": req.Quantity},
		"user":    map[string]interface{}{"id": actor.ID, "name": actor.Name, "email": actor.Email},
		"message": fmt.Sprintf("%s created product '%s'", actor.Name, req.Name),
	})
	return nil
}

func (s *productService) Update(id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var updated *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.Clauses(forUpdate()).First(&existing, "id = ?", id).Error; err != nil {
			return apierr.NotFound("product")
		}

		if req.ProductCode != existing.ProductCode {
			if other, _ := s.productRepo.FindByCode(req.ProductCode); other != nil && other.ID != existing.ID {
				return apierr.Conflict("product code already exists")
			}
		}

		existing.Name = req.Name
		existing.ProductCode = req.ProductCode
		existing.GenericName = req.GenericName
		existing.Description = req.Description
		existing.CategoryID = req.CategoryID
		existing.ManufacturerID = req.ManufacturerID
		existing.UnitCategoryID = req.UnitCategoryID
		existing.DefaultUomID = req.DefaultUomID
		existing.PurchaseUomID = req.PurchaseUomID
		existing.PurchasePrice = req.PurchasePrice
		existing.SellingPrice = req.SellingPrice
		existing.MinLevel = req.MinLevel
		existing.BatchNumber = req.BatchNumber
		existing.ExpiryDate = req.ExpiryDate
		if req.Status != "" {
			existing.Status = req.Status
		}
		existing.UpdatedBy = actor.ID

		// Quantity changes go through sales, purchases or adjustments,
		// never through a plain update.
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Invalidate(context.Background(), CacheTagProducts)
	return updated, nil
}

func (s *productService) Delete(id uuid.UUID, actor Actor) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return apierr.NotFound("product")
	}
	if err := s.productRepo.Delete(id, actor.ID); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagProducts)
	return nil
}

func (s *productService) List(params pagination.Params) ([]model.Product, int64, error) {
	ctx := context.Background()
	key := cache.ListKey(CacheTagProducts, params.Page, params.Limit, params.Search, params.SortBy, params.SortOrder)

	var page productPage
	if s.store.Get(ctx, key, &page) {
		return page.Items, page.Total, nil
	}

	items, total, err := s.productRepo.List(params)
	if err != nil {
		return nil, 0, err
	}
	s.store.Set(ctx, key, productPage{Items: items, Total: total}, CacheTagProducts)
	return items, total, nil
}

func (s *productService) FindAll() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) Get(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("product")
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) BinCard(id uuid.UUID) ([]model.BinCardEntry, error) {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return nil, apierr.NotFound("product")
	}
	return s.binCardRepo.FindByProduct(id)
}

// AdjustStock records a loss adjustment: stock goes down, the ledger
// gains a lossAdjustment row, and low stock is re-checked.
func (s *productService) AdjustStock(id uuid.UUID, req StockAdjustmentRequest, actor Actor) (*model.Product, error) {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var adjusted *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.Clauses(forUpdate()).First(&product, "id = ?", id).Error; err != nil {
			return apierr.NotFound("product")
		}
		if product.Quantity < req.Quantity {
			return apierr.Conflict("adjustment exceeds quantity on hand")
		}

		newQuantity := product.Quantity - req.Quantity
		if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity, actor.ID); err != nil {
			return err
		}

		previous, err := s.binCardRepo.LastBalance(tx, product.ID)
		if err != nil {
			return err
		}
		entry := &model.BinCardEntry{
			ProductID:      product.ID,
			EntryDate:      time.Now(),
			DocumentNumber: "ADJ-" + time.Now().Format("20060102150405"),
			SourceType:     model.BinCardAdjustment,
			LossAdjustment: req.Quantity,
			Balance:        model.NextBalance(previous, 0, 0, req.Quantity),
		}
		entry.CreatedBy = actor.ID
		if err := s.binCardRepo.Append(tx, entry); err != nil {
			return err
		}

		product.Quantity = newQuantity
		adjusted = &product
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Invalidate(context.Background(), CacheTagProducts)
	if adjusted.IsLowStock() && s.notifier != nil {
		s.notifier.NotifyLowStock(adjusted)
	}
	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":    "stock_update",
		"action":  "stock_adjusted",
		"product": map[string]interface{}{"id": adjusted.ID, "name": adjusted.Name, "quantity": adjusted.Quantity},
		"user":    map[string]interface{}{"id": actor.ID, "name": actor.Name},
		"message": fmt.Sprintf("%s recorded a loss of %.2f on '%s' (%s)", actor.Name, req.Quantity, adjusted.Name, req.Reason),
	})
	return adjusted, nil
}

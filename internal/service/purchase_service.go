package service

import (
	"context"
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

const CacheTagPurchases = "purchases"

type CreatePurchaseRequest struct {
	model.Purchase
	DueDate *time.Time `json:"dueDate"`
}

type PurchaseService interface {
	Create(req *CreatePurchaseRequest, actor Actor) (*model.Purchase, error)
	List(params pagination.Params) ([]model.Purchase, int64, error)
	Get(id uuid.UUID) (*model.Purchase, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	binCardRepo  repository.BinCardRepository
	unitRepo     repository.UnitRepository
	db           *gorm.DB
	wsHub        *ws.Hub
	store        *cache.Store
}

func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	binCardRepo repository.BinCardRepository,
	unitRepo repository.UnitRepository,
	db *gorm.DB,
	hub *ws.Hub,
	store *cache.Store,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		binCardRepo:  binCardRepo,
		unitRepo:     unitRepo,
		db:           db,
		wsHub:        hub,
		store:        store,
	}
}

func (s *purchaseService) toBaseQuantity(quantity float64, uomID *uuid.UUID) (float64, error) {
	if uomID == nil || *uomID == uuid.Nil {
		return quantity, nil
	}
	unit, err := s.unitRepo.FindUnitByID(*uomID)
	if err != nil {
		return 0, apierr.Validation("uomId", "unit of measure does not exist")
	}
	return unit.ConvertToBase(quantity), nil
}

func (s *purchaseService) Create(req *CreatePurchaseRequest, actor Actor) (*model.Purchase, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if req.PaymentType == "" {
		req.PaymentType = model.PaymentCash
	}
	if req.PurchaseDate.IsZero() {
		req.PurchaseDate = time.Now()
	}

	purchase := &req.Purchase

	err := s.db.Transaction(func(tx *gorm.DB) error {
		referenceNumber, err := s.purchaseRepo.NextReferenceNumber()
		if err != nil {
			return err
		}
		purchase.ReferenceNumber = referenceNumber
		purchase.CreatedBy = actor.ID
		purchase.UpdatedBy = actor.ID

		var subTotal float64
		for i := range purchase.Items {
			item := &purchase.Items[i]

			var product model.Product
			if err := tx.Clauses(forUpdate()).First(&product, "id = ?", item.ProductID).Error; err != nil {
				return apierr.Validation("items", fmt.Sprintf("product %s does not exist", item.ProductID))
			}

			baseQuantity, err := s.toBaseQuantity(item.Quantity, item.UomID)
			if err != nil {
				return err
			}

			item.LineTotal = item.Quantity * item.UnitCost
			subTotal += item.LineTotal
			item.CreatedBy = actor.ID

			newQuantity := product.Quantity + baseQuantity
			if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity, actor.ID); err != nil {
				return err
			}

			previous, err := s.binCardRepo.LastBalance(tx, product.ID)
			if err != nil {
				return err
			}
			entry := &model.BinCardEntry{
				ProductID:      product.ID,
				EntryDate:      purchase.PurchaseDate,
				DocumentNumber: referenceNumber,
				SourceType:     model.BinCardPurchase,
				QuantityIn:     baseQuantity,
				Balance:        model.NextBalance(previous, baseQuantity, 0, 0),
			}
			entry.CreatedBy = actor.ID
			if err := s.binCardRepo.Append(tx, entry); err != nil {
				return err
			}
		}

		purchase.SubTotal = subTotal
		if purchase.Discount < 0 || purchase.Discount > subTotal {
			return apierr.Validation("discount", "discount must be between 0 and the subtotal")
		}
		purchase.TotalAmount = subTotal - purchase.Discount

		if err := tx.Create(purchase).Error; err != nil {
			return err
		}

		if purchase.PaymentType == model.PaymentCredit {
			credit := &model.Credit{
				Type:          model.CreditPayable,
				Status:        model.CreditPending,
				TotalAmount:   purchase.TotalAmount,
				BalanceAmount: purchase.TotalAmount,
				SupplierID:    &purchase.SupplierID,
				PurchaseID:    &purchase.ID,
				DueDate:       req.DueDate,
			}
			credit.CreatedBy = actor.ID
			if err := tx.Create(credit).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	s.store.Invalidate(ctx, CacheTagPurchases)
	s.store.Invalidate(ctx, CacheTagProducts)

	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":     "stock_update",
		"action":   "purchase_created",
		"purchase": map[string]interface{}{"id": purchase.ID, "referenceNumber": purchase.ReferenceNumber, "totalAmount": purchase.TotalAmount},
		"user":     map[string]interface{}{"id": actor.ID, "name": actor.Name},
		"message":  fmt.Sprintf("%s recorded purchase %s", actor.Name, purchase.ReferenceNumber),
	})

	return s.purchaseRepo.FindByID(purchase.ID)
}

func (s *purchaseService) List(params pagination.Params) ([]model.Purchase, int64, error) {
	ctx := context.Background()
	key := cache.ListKey(CacheTagPurchases, params.Page, params.Limit, params.Search, params.SortBy, params.SortOrder)

	var page struct {
		Items []model.Purchase `json:"items"`
		Total int64            `json:"total"`
	}
	if s.store.Get(ctx, key, &page) {
		return page.Items, page.Total, nil
	}

	items, total, err := s.purchaseRepo.List(params)
	if err != nil {
		return nil, 0, err
	}
	page.Items, page.Total = items, total
	s.store.Set(ctx, key, page, CacheTagPurchases)
	return items, total, nil
}

func (s *purchaseService) Get(id uuid.UUID) (*model.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("purchase")
		}
		return nil, err
	}
	return purchase, nil
}

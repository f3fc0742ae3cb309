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

const CacheTagSales = "sales"

// CreateSaleRequest is a sale plus the credit terms that apply when
// paymentType is CREDIT.
type CreateSaleRequest struct {
	model.Sale
	DueDate *time.Time `json:"dueDate"`
}

type SaleService interface {
	Create(req *CreateSaleRequest, actor Actor) (*model.Sale, error)
	List(params pagination.Params) ([]model.Sale, int64, error)
	Get(id uuid.UUID) (*model.Sale, error)
}

type saleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	binCardRepo repository.BinCardRepository
	unitRepo    repository.UnitRepository
	notifier    Notifier
	db          *gorm.DB
	wsHub       *ws.Hub
	store       *cache.Store
}

func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	binCardRepo repository.BinCardRepository,
	unitRepo repository.UnitRepository,
	notifier Notifier,
	db *gorm.DB,
	hub *ws.Hub,
	store *cache.Store,
) SaleService {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		binCardRepo: binCardRepo,
		unitRepo:    unitRepo,
		notifier:    notifier,
		db:          db,
		wsHub:       hub,
		store:       store,
	}
}

// toBaseQuantity converts an entered quantity to the product's base
// unit. A nil UOM means the quantity was entered in base units already.
func (s *saleService) toBaseQuantity(quantity float64, uomID *uuid.UUID) (float64, error) {
	if uomID == nil || *uomID == uuid.Nil {
		return quantity, nil
	}
	unit, err := s.unitRepo.FindUnitByID(*uomID)
	if err != nil {
		return 0, apierr.Validation("uomId", "unit of measure does not exist")
	}
	return unit.ConvertToBase(quantity), nil
}

func (s *saleService) Create(req *CreateSaleRequest, actor Actor) (*model.Sale, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if req.PaymentType == "" {
		req.PaymentType = model.PaymentCash
	}
	if req.PaymentType == model.PaymentCredit && req.CustomerID == nil {
		return nil, apierr.Validation("customerId", "credit sales require a customer")
	}
	if req.SaleDate.IsZero() {
		req.SaleDate = time.Now()
	}

	sale := &req.Sale
	var lowStock []*model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoiceNumber, err := s.saleRepo.NextInvoiceNumber()
		if err != nil {
			return err
		}
		sale.InvoiceNumber = invoiceNumber
		sale.CreatedBy = actor.ID
		sale.UpdatedBy = actor.ID

		var subTotal float64
		for i := range sale.Items {
			item := &sale.Items[i]

			var product model.Product
			if err := tx.Clauses(forUpdate()).First(&product, "id = ?", item.ProductID).Error; err != nil {
				return apierr.Validation("items", fmt.Sprintf("product %s does not exist", item.ProductID))
			}
			if product.Status != model.ProductActive {
				return apierr.Conflict(fmt.Sprintf("product '%s' is inactive", product.Name))
			}

			baseQuantity, err := s.toBaseQuantity(item.Quantity, item.UomID)
			if err != nil {
				return err
			}
			if product.Quantity < baseQuantity {
				return apierr.Conflict(fmt.Sprintf("insufficient stock for '%s'", product.Name))
			}

			if item.UnitPrice == 0 {
				item.UnitPrice = product.SellingPrice
			}
			item.LineTotal = item.Quantity * item.UnitPrice
			subTotal += item.LineTotal
			item.CreatedBy = actor.ID

			newQuantity := product.Quantity - baseQuantity
			if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity, actor.ID); err != nil {
				return err
			}

			previous, err := s.binCardRepo.LastBalance(tx, product.ID)
			if err != nil {
				return err
			}
			entry := &model.BinCardEntry{
				ProductID:      product.ID,
				EntryDate:      sale.SaleDate,
				DocumentNumber: invoiceNumber,
				SourceType:     model.BinCardSale,
				QuantityOut:    baseQuantity,
				Balance:        model.NextBalance(previous, 0, baseQuantity, 0),
			}
			entry.CreatedBy = actor.ID
			if err := s.binCardRepo.Append(tx, entry); err != nil {
				return err
			}

			product.Quantity = newQuantity
			if product.IsLowStock() {
				snapshot := product
				lowStock = append(lowStock, &snapshot)
			}
		}

		sale.SubTotal = subTotal
		if sale.Discount < 0 || sale.Discount > subTotal {
			return apierr.Validation("discount", "discount must be between 0 and the subtotal")
		}
		sale.TotalAmount = subTotal - sale.Discount

		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		if sale.PaymentType == model.PaymentCredit {
			credit := &model.Credit{
				Type:          model.CreditReceivable,
				Status:        model.CreditPending,
				TotalAmount:   sale.TotalAmount,
				BalanceAmount: sale.TotalAmount,
				CustomerID:    sale.CustomerID,
				SaleID:        &sale.ID,
				DueDate:       req.DueDate,
			}
			credit.CreatedBy = actor.ID
			if err := tx.Create(credit).Error; err != nil {
				return err
			}
		}

		if sale.SalespersonID != nil {
			var config model.CommissionConfig
			err := tx.First(&config, "salesperson_id = ? AND is_active = true", *sale.SalespersonID).Error
			if err == nil {
				amount, rate := config.Compute(sale.TotalAmount)
				commission := &model.Commission{
					SalespersonID:    *sale.SalespersonID,
					SaleID:           sale.ID,
					SaleAmount:       sale.TotalAmount,
					CommissionRate:   rate,
					CommissionAmount: amount,
					Status:           model.CommissionPending,
				}
				commission.CreatedBy = actor.ID
				if err := tx.Create(commission).Error; err != nil {
					return err
				}
			} else if !notFound(err) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	s.store.Invalidate(ctx, CacheTagSales)
	s.store.Invalidate(ctx, CacheTagProducts)

	for _, product := range lowStock {
		if s.notifier != nil {
			s.notifier.NotifyLowStock(product)
		}
	}
	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":    "stock_update",
		"action":  "sale_created",
		"sale":    map[string]interface{}{"id": sale.ID, "invoiceNumber": sale.InvoiceNumber, "totalAmount": sale.TotalAmount},
		"user":    map[string]interface{}{"id": actor.ID, "name": actor.Name},
		"message": fmt.Sprintf("%s recorded sale %s", actor.Name, sale.InvoiceNumber),
	})

	return s.saleRepo.FindByID(sale.ID)
}

func (s *saleService) List(params pagination.Params) ([]model.Sale, int64, error) {
	ctx := context.Background()
	key := cache.ListKey(CacheTagSales, params.Page, params.Limit, params.Search, params.SortBy, params.SortOrder)

	var page struct {
		Items []model.Sale `json:"items"`
		Total int64        `json:"total"`
	}
	if s.store.Get(ctx, key, &page) {
		return page.Items, page.Total, nil
	}

	items, total, err := s.saleRepo.List(params)
	if err != nil {
		return nil, 0, err
	}
	page.Items, page.Total = items, total
	s.store.Set(ctx, key, page, CacheTagSales)
	return items, total, nil
}

func (s *saleService) Get(id uuid.UUID) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("sale")
		}
		return nil, err
	}
	return sale, nil
}

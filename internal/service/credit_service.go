package service

import (
	"context"
	"time"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/cache"
	"go-pharmacy-api/pkg/pagination"
	"go-pharmacy-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const CacheTagCredits = "credits"

// RecordPaymentRequest is a partial or full settlement of a credit.
type RecordPaymentRequest struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"omitempty,max=30"`
	Reference string  `json:"reference" validate:"omitempty,max=100"`
}

type CreditService interface {
	List(params pagination.Params, filter repository.CreditListFilter) ([]model.Credit, int64, error)
	Get(id uuid.UUID) (*model.Credit, error)
	RecordPayment(id uuid.UUID, req RecordPaymentRequest, actor Actor) (*model.Credit, error)
	MarkOverdue(now time.Time) (int, error)
}

type creditService struct {
	creditRepo       repository.CreditRepository
	notificationRepo repository.NotificationRepository
	db               *gorm.DB
	store            *cache.Store
}

func NewCreditService(
	creditRepo repository.CreditRepository,
	notificationRepo repository.NotificationRepository,
	db *gorm.DB,
	store *cache.Store,
) CreditService {
	return &creditService{
		creditRepo:       creditRepo,
		notificationRepo: notificationRepo,
		db:               db,
		store:            store,
	}
}

func (s *creditService) List(params pagination.Params, filter repository.CreditListFilter) ([]model.Credit, int64, error) {
	return s.creditRepo.List(params, filter)
}

func (s *creditService) Get(id uuid.UUID) (*model.Credit, error) {
	credit, err := s.creditRepo.FindByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("credit")
		}
		return nil, err
	}
	return credit, nil
}

// RecordPayment applies a payment under a row lock so concurrent
// settlements cannot push the balance negative.
func (s *creditService) RecordPayment(id uuid.UUID, req RecordPaymentRequest, actor Actor) (*model.Credit, error) {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var credit model.Credit
		if err := tx.Clauses(forUpdate()).First(&credit, "id = ?", id).Error; err != nil {
			return apierr.NotFound("credit")
		}

		if err := credit.ApplyPayment(req.Amount); err != nil {
			switch err {
			case model.ErrCreditSettled:
				return apierr.Conflict("credit is already settled")
			case model.ErrPaymentExceedsBalance:
				return apierr.Validation("amount", "payment exceeds outstanding balance")
			default:
				return apierr.Validation("amount", err.Error())
			}
		}
		credit.UpdatedBy = actor.ID
		if err := tx.Save(&credit).Error; err != nil {
			return err
		}

		payment := &model.CreditPayment{
			CreditID:  credit.ID,
			Amount:    req.Amount,
			Method:    req.Method,
			Reference: req.Reference,
			PaidAt:    time.Now(),
		}
		payment.CreatedBy = actor.ID
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}

	s.store.Invalidate(context.Background(), CacheTagCredits)
	return s.creditRepo.FindByID(id)
}

// MarkOverdue flags unsettled credits past their due date and records a
// notification per credit. Runs from the background worker.
func (s *creditService) MarkOverdue(now time.Time) (int, error) {
	candidates, err := s.creditRepo.FindOverdueCandidates(now)
	if err != nil {
		return 0, err
	}

	flagged := 0
	for i := range candidates {
		credit := &candidates[i]
		err := s.db.Model(credit).Update("status", model.CreditOverdue).Error
		if err != nil {
			return flagged, err
		}
		flagged++

		party := "counterparty"
		if credit.Type == model.CreditPayable {
			party = "supplier"
		} else if credit.Type == model.CreditReceivable {
			party = "customer"
		}
		notification := &model.Notification{
			Type:    model.NotifyCreditOverdue,
			Title:   "Credit overdue",
			Message: "A " + party + " credit with outstanding balance has passed its due date",
		}
		if err := s.notificationRepo.Create(notification); err != nil {
			return flagged, err
		}
	}

	if flagged > 0 {
		s.store.Invalidate(context.Background(), CacheTagCredits)
	}
	return flagged, nil
}

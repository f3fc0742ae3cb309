package service

import (
	"strings"
	"time"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/pagination"
	"go-pharmacy-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Commission listings are small enough to page in memory, which keeps
// the salesperson-name search simple (it spans a preloaded relation).
type CommissionService interface {
	List(params pagination.Params) ([]model.Commission, int64, error)
	Get(id uuid.UUID) (*model.Commission, error)
	Pay(id uuid.UUID, actor Actor) (*model.Commission, error)

	CreateConfig(config *model.CommissionConfig, actor Actor) error
	ListConfigs(params pagination.Params) ([]model.CommissionConfig, int64, error)
	UpdateConfig(id uuid.UUID, req *model.CommissionConfig, actor Actor) (*model.CommissionConfig, error)
	DeleteConfig(id uuid.UUID, actor Actor) error
}

type commissionService struct {
	repo repository.CommissionRepository
	db   *gorm.DB
}

func NewCommissionService(repo repository.CommissionRepository, db *gorm.DB) CommissionService {
	return &commissionService{repo: repo, db: db}
}

func matchesSalesperson(salesperson *model.User, search string) bool {
	if salesperson == nil {
		return false
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(salesperson.FullName()), needle) ||
		strings.Contains(strings.ToLower(salesperson.Email), needle)
}

func (s *commissionService) List(params pagination.Params) ([]model.Commission, int64, error) {
	all, err := s.repo.FindAll()
	if err != nil {
		return nil, 0, err
	}
	if params.Search != "" {
		filtered := make([]model.Commission, 0, len(all))
		for _, c := range all {
			if matchesSalesperson(c.Salesperson, params.Search) {
				filtered = append(filtered, c)
			}
		}
		all = filtered
	}
	items, _ := pagination.Slice(all, params.Page, params.Limit)
	return items, int64(len(all)), nil
}

func (s *commissionService) Get(id uuid.UUID) (*model.Commission, error) {
	commission, err := s.repo.FindByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("commission")
		}
		return nil, err
	}
	return commission, nil
}

// Pay marks a pending commission as paid out. Non-pending rows are
// rejected rather than silently re-stamped.
func (s *commissionService) Pay(id uuid.UUID, actor Actor) (*model.Commission, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var commission model.Commission
		if err := tx.Clauses(forUpdate()).First(&commission, "id = ?", id).Error; err != nil {
			return apierr.NotFound("commission")
		}
		if err := commission.MarkPaid(time.Now()); err != nil {
			return apierr.Conflict("only pending commissions can be paid")
		}
		commission.UpdatedBy = actor.ID
		return tx.Save(&commission).Error
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *commissionService) CreateConfig(config *model.CommissionConfig, actor Actor) error {
	if errs := validator.ValidateStruct(config); len(errs) > 0 {
		return validationError(errs)
	}
	if existing, err := s.repo.FindActiveConfig(config.SalespersonID); err == nil && existing != nil {
		return apierr.Conflict("salesperson already has an active commission config")
	}
	if config.RateType == "" {
		config.RateType = model.RatePercentage
	}
	config.IsActive = true
	config.CreatedBy = actor.ID
	config.UpdatedBy = actor.ID
	return s.repo.CreateConfig(config)
}

func (s *commissionService) ListConfigs(params pagination.Params) ([]model.CommissionConfig, int64, error) {
	all, err := s.repo.FindAllConfigs()
	if err != nil {
		return nil, 0, err
	}
	if params.Search != "" {
		filtered := make([]model.CommissionConfig, 0, len(all))
		for _, cfg := range all {
			if matchesSalesperson(cfg.Salesperson, params.Search) {
				filtered = append(filtered, cfg)
			}
		}
		all = filtered
	}
	items, _ := pagination.Slice(all, params.Page, params.Limit)
	return items, int64(len(all)), nil
}

func (s *commissionService) UpdateConfig(id uuid.UUID, req *model.CommissionConfig, actor Actor) (*model.CommissionConfig, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	existing, err := s.repo.FindConfigByID(id)
	if err != nil {
		return nil, apierr.NotFound("commission config")
	}
	existing.RateType = req.RateType
	existing.Rate = req.Rate
	existing.IsActive = req.IsActive
	existing.UpdatedBy = actor.ID
	if err := s.repo.UpdateConfig(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *commissionService) DeleteConfig(id uuid.UUID, actor Actor) error {
	if _, err := s.repo.FindConfigByID(id); err != nil {
		return apierr.NotFound("commission config")
	}
	return s.repo.DeleteConfig(id, actor.ID)
}

package repository

import (
	"go-pharmacy-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommissionRepository deliberately has no paginated List: commission
// listings use the in-memory slicing mode, so both configs and accrued
// commissions are fetched whole and paged by the handler.
type CommissionRepository interface {
	FindAll() ([]model.Commission, error)
	FindByID(id uuid.UUID) (*model.Commission, error)
	FindBySalesperson(salespersonID uuid.UUID) ([]model.Commission, error)
	Update(commission *model.Commission) error

	CreateConfig(config *model.CommissionConfig) error
	FindAllConfigs() ([]model.CommissionConfig, error)
	FindConfigByID(id uuid.UUID) (*model.CommissionConfig, error)
	FindActiveConfig(salespersonID uuid.UUID) (*model.CommissionConfig, error)
	UpdateConfig(config *model.CommissionConfig) error
	DeleteConfig(id uuid.UUID, deletedBy string) error
}

type commissionRepo struct {
	db *gorm.DB
}

func NewCommissionRepo(db *gorm.DB) CommissionRepository {
	return &commissionRepo{db}
}

func (r *commissionRepo) FindAll() ([]model.Commission, error) {
	var commissions []model.Commission
	err := r.db.Preload("Salesperson").Preload("Sale").
		Order("created_at DESC").Find(&commissions).Error
	return commissions, err
}

func (r *commissionRepo) FindByID(id uuid.UUID) (*model.Commission, error) {
	var commission model.Commission
	err := r.db.Preload("Salesperson").Preload("Sale").
		First(&commission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &commission, nil
}

func (r *commissionRepo) FindBySalesperson(salespersonID uuid.UUID) ([]model.Commission, error) {
	var commissions []model.Commission
	err := r.db.Preload("Sale").Where("salesperson_id = ?", salespersonID).
		Order("created_at DESC").Find(&commissions).Error
	return commissions, err
}

func (r *commissionRepo) Update(commission *model.Commission) error {
	return r.db.Save(commission).Error
}

func (r *commissionRepo) CreateConfig(config *model.CommissionConfig) error {
	return r.db.Create(config).Error
}

func (r *commissionRepo) FindAllConfigs() ([]model.CommissionConfig, error) {
	var configs []model.CommissionConfig
	err := r.db.Preload("Salesperson").Order("created_at DESC").Find(&configs).Error
	return configs, err
}

func (r *commissionRepo) FindConfigByID(id uuid.UUID) (*model.CommissionConfig, error) {
	var config model.CommissionConfig
	err := r.db.Preload("Salesperson").First(&config, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// FindActiveConfig returns the active config for a salesperson, or
// gorm's not-found error when commission does not apply to them.
func (r *commissionRepo) FindActiveConfig(salespersonID uuid.UUID) (*model.CommissionConfig, error) {
	var config model.CommissionConfig
	err := r.db.First(&config, "salesperson_id = ? AND is_active = true", salespersonID).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *commissionRepo) UpdateConfig(config *model.CommissionConfig) error {
	return r.db.Save(config).Error
}

func (r *commissionRepo) DeleteConfig(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.CommissionConfig{}).Where("id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.CommissionConfig{}, "id = ?", id).Error
}

package repository

import (
	"go-pharmacy-api/internal/model"

	"gorm.io/gorm"
)

type PrivilegeRepository interface {
	FindAll() ([]model.Privilege, error)
	FindByCodes(codes []string) ([]model.Privilege, error)
	SeedDefaults() error
}

type privilegeRepo struct {
	db *gorm.DB
}

func NewPrivilegeRepo(db *gorm.DB) PrivilegeRepository {
	return &privilegeRepo{db}
}

func (r *privilegeRepo) FindAll() ([]model.Privilege, error) {
	var privileges []model.Privilege
	err := r.db.Order("code").Find(&privileges).Error
	return privileges, err
}

func (r *privilegeRepo) FindByCodes(codes []string) ([]model.Privilege, error) {
	var privileges []model.Privilege
	err := r.db.Where("code IN ?", codes).Find(&privileges).Error
	return privileges, err
}

// SeedDefaults inserts the default privileges that don't exist yet.
func (r *privilegeRepo) SeedDefaults() error {
	for _, privilege := range model.DefaultPrivileges {
		var existing model.Privilege
		if err := r.db.Where("code = ?", privilege.Code).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&privilege).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

package service

import (
	"fmt"
	"testing"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCommissionRepo struct {
	commissions  []model.Commission
	activeConfig *model.CommissionConfig
	created      int
}

func (s *stubCommissionRepo) FindAll() ([]model.Commission, error) { return s.commissions, nil }

func (s *stubCommissionRepo) FindByID(id uuid.UUID) (*model.Commission, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCommissionRepo) FindBySalesperson(salespersonID uuid.UUID) ([]model.Commission, error) {
	return nil, nil
}

func (s *stubCommissionRepo) Update(commission *model.Commission) error { return nil }

func (s *stubCommissionRepo) CreateConfig(config *model.CommissionConfig) error {
	s.created++
	return nil
}

func (s *stubCommissionRepo) FindAllConfigs() ([]model.CommissionConfig, error) { return nil, nil }

func (s *stubCommissionRepo) FindConfigByID(id uuid.UUID) (*model.CommissionConfig, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCommissionRepo) FindActiveConfig(salespersonID uuid.UUID) (*model.CommissionConfig, error) {
	if s.activeConfig != nil {
		return s.activeConfig, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCommissionRepo) UpdateConfig(config *model.CommissionConfig) error { return nil }

func (s *stubCommissionRepo) DeleteConfig(id uuid.UUID, deletedBy string) error { return nil }

func commissionsFor(names ...string) []model.Commission {
	out := make([]model.Commission, len(names))
	for i, name := range names {
		out[i] = model.Commission{
			Salesperson: &model.User{FirstName: name, Email: fmt.Sprintf("%s@example.com", name)},
			Status:      model.CommissionPending,
		}
	}
	return out
}

func TestListPagesInMemory(t *testing.T) {
	repo := &stubCommissionRepo{commissions: commissionsFor("Abel", "Beza", "Chala", "Dawit", "Eden")}
	svc := NewCommissionService(repo, nil)

	items, total, err := svc.List(pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)

	// Total reflects the full set even though only one page came back.
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Chala", items[0].Salesperson.FirstName)
}

func TestListClampsPageOverrun(t *testing.T) {
	repo := &stubCommissionRepo{commissions: commissionsFor("Abel", "Beza", "Chala")}
	svc := NewCommissionService(repo, nil)

	items, total, err := svc.List(pagination.Params{Page: 9, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Chala", items[0].Salesperson.FirstName)
}

func TestListFiltersBySalespersonName(t *testing.T) {
	repo := &stubCommissionRepo{commissions: commissionsFor("Abel", "Beza", "Abeba")}
	svc := NewCommissionService(repo, nil)

	items, total, err := svc.List(pagination.Params{Page: 1, Limit: 10, Search: "abe"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
}

func TestCreateConfigRejectsSecondActiveConfig(t *testing.T) {
	salesperson := uuid.New()
	repo := &stubCommissionRepo{activeConfig: &model.CommissionConfig{SalespersonID: salesperson}}
	svc := NewCommissionService(repo, nil)

	err := svc.CreateConfig(&model.CommissionConfig{SalespersonID: salesperson, Rate: 5}, Actor{ID: "u1"})

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindConflict, apiErr.Kind)
	assert.Zero(t, repo.created)
}

func TestCreateConfigDefaults(t *testing.T) {
	repo := &stubCommissionRepo{}
	svc := NewCommissionService(repo, nil)

	cfg := &model.CommissionConfig{SalespersonID: uuid.New(), Rate: 5}
	require.NoError(t, svc.CreateConfig(cfg, Actor{ID: "u1"}))

	assert.Equal(t, model.RatePercentage, cfg.RateType)
	assert.True(t, cfg.IsActive)
	assert.Equal(t, 1, repo.created)
}

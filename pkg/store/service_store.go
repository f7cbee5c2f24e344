package store

import (
	"github.com/google/uuid"

	"github.com/phoopyae1/OSS/pkg/types"
)

// ServiceFilter narrows a service query.
type ServiceFilter struct {
	ActiveOnly bool
}

// FindServices returns services matching the filter, ordered by category then
// name ascending. This is the board display order before locale-aware
// grouping.
func (s *Store) FindServices(filter ServiceFilter) ([]types.Service, error) {
	query := s.db.Order("category ASC, name ASC")
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var services []types.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// GetService fetches one service by id.
func (s *Store) GetService(id uuid.UUID) (*types.Service, error) {
	var service types.Service
	if err := s.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

// CreateService persists a new service.
func (s *Store) CreateService(service *types.Service) error {
	return s.db.Create(service).Error
}

// UpdateService persists every field of an existing service.
func (s *Store) UpdateService(service *types.Service) error {
	return s.db.Save(service).Error
}

// DeleteService removes a service by id.
func (s *Store) DeleteService(id uuid.UUID) error {
	result := s.db.Delete(&types.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

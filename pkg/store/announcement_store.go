package store

import (
	"github.com/google/uuid"

	"github.com/phoopyae1/OSS/pkg/announce"
	"github.com/phoopyae1/OSS/pkg/types"
)

// FindAnnouncements returns announcements matching the filter, newest first by
// creation time. The filter's semantics mirror announce.Filter.Matches; the
// translation to SQL here keeps large sets out of process memory.
func (s *Store) FindAnnouncements(filter announce.Filter) ([]types.Announcement, error) {
	query := s.db.Order("created_at DESC")
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var announcements []types.Announcement
	if err := query.Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// GetAnnouncement fetches one announcement by id.
func (s *Store) GetAnnouncement(id uuid.UUID) (*types.Announcement, error) {
	var announcement types.Announcement
	if err := s.db.First(&announcement, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &announcement, nil
}

// CreateAnnouncement persists a new announcement.
func (s *Store) CreateAnnouncement(announcement *types.Announcement) error {
	return s.db.Create(announcement).Error
}

// UpdateAnnouncement persists every field of an existing announcement.
func (s *Store) UpdateAnnouncement(announcement *types.Announcement) error {
	return s.db.Save(announcement).Error
}

// DeleteAnnouncement removes an announcement by id.
func (s *Store) DeleteAnnouncement(id uuid.UUID) error {
	result := s.db.Delete(&types.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a monitored service shown on the status board.
type Service struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null;uniqueIndex"`
	Description *string   `json:"description" gorm:"column:description;type:text"`
	Category    *string   `json:"category" gorm:"column:category"`
	Status      Status    `json:"status" gorm:"column:status;not null;default:OPERATIONAL"`
	IsActive    bool      `json:"isActive" gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Announcement is a time-windowed markdown message. A nil StartsAt or EndsAt
// leaves that side of the window unbounded.
type Announcement struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string     `json:"title" gorm:"column:title;not null"`
	Body      string     `json:"body" gorm:"column:body;type:text;not null"`
	StartsAt  *time.Time `json:"startsAt" gorm:"column:starts_at;index"`
	EndsAt    *time.Time `json:"endsAt" gorm:"column:ends_at;index"`
	IsActive  bool       `json:"isActive" gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;index"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"column:updated_at"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a portal account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username  string    `json:"username" gorm:"column:username;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"column:password;not null"`
	Role      string    `json:"role" gorm:"column:role;not null;default:staff"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Firm is the tenant. Every intake and client account is scoped to one firm
// and every query carries the firm id.
type Firm struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string         `gorm:"not null;column:name" json:"name"`
	Subdomain string         `gorm:"uniqueIndex;not null;column:subdomain" json:"subdomain"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Firm) TableName() string { return "firm" }

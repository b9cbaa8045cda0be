package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a client account on the intake portal, scoped to a firm.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirmID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"firm_id"`
	Firm      *Firm          `gorm:"constraint:OnDelete:CASCADE;foreignKey:FirmID;references:ID" json:"firm,omitempty"`
	Email     string         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string         `gorm:"not null;column:password" json:"-"`
	FirstName string         `gorm:"column:first_name" json:"first_name"`
	LastName  string         `gorm:"column:last_name" json:"last_name"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }

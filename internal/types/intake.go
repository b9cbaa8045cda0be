package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	IntakeStatusDraft     = "draft"
	IntakeStatusSubmitted = "submitted"
)

// Intake owns the payload: a flat field-key → value JSON document. Values
// are raw or assertion-wrapped; repeatable sections store parallel arrays
// under sibling field keys, aligned by index. StatusCache holds the last
// computed orchestrator result for sidebar rendering only — on any conflict
// the recomputed result wins.
type Intake struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirmID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"firm_id"`
	Firm        *Firm             `gorm:"constraint:OnDelete:CASCADE;foreignKey:FirmID;references:ID" json:"firm,omitempty"`
	UserID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User             `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	IntakeType  string            `gorm:"not null;column:intake_type" json:"intake_type"`
	Status      string            `gorm:"not null;default:'draft';column:status" json:"status"`
	Payload     datatypes.JSONMap `gorm:"column:payload;type:jsonb" json:"payload"`
	StatusCache datatypes.JSON    `gorm:"column:status_cache;type:jsonb" json:"status_cache,omitempty"`
	SubmittedAt *time.Time        `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	CreatedAt   time.Time         `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"deleted_at,omitempty"`
}

func (Intake) TableName() string { return "intake" }

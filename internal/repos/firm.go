package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumenlaw/intake-backend/internal/logger"
	"github.com/lumenlaw/intake-backend/internal/types"
)

type FirmRepo interface {
	Create(ctx context.Context, tx *gorm.DB, firm *types.Firm) (*types.Firm, error)
	GetByID(ctx context.Context, tx *gorm.DB, firmID uuid.UUID) (*types.Firm, error)
	GetBySubdomain(ctx context.Context, tx *gorm.DB, subdomain string) (*types.Firm, error)
}

type firmRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFirmRepo(db *gorm.DB, baseLog *logger.Logger) FirmRepo {
	return &firmRepo{db: db, log: baseLog.With("repo", "FirmRepo")}
}

func (fr *firmRepo) Create(ctx context.Context, tx *gorm.DB, firm *types.Firm) (*types.Firm, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if err := transaction.WithContext(ctx).Create(firm).Error; err != nil {
		return nil, err
	}
	return firm, nil
}

func (fr *firmRepo) GetByID(ctx context.Context, tx *gorm.DB, firmID uuid.UUID) (*types.Firm, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var firm types.Firm
	if err := transaction.WithContext(ctx).
		Where("id = ?", firmID).
		First(&firm).Error; err != nil {
		return nil, err
	}
	return &firm, nil
}

func (fr *firmRepo) GetBySubdomain(ctx context.Context, tx *gorm.DB, subdomain string) (*types.Firm, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var firm types.Firm
	if err := transaction.WithContext(ctx).
		Where("subdomain = ?", subdomain).
		First(&firm).Error; err != nil {
		return nil, err
	}
	return &firm, nil
}

package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumenlaw/intake-backend/internal/logger"
	"github.com/lumenlaw/intake-backend/internal/types"
)

// IntakeRepo is firm-scoped on every query. MergeFields serializes per
// intake row so two concurrent writers never silently drop each other's
// field updates.
type IntakeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, intake *types.Intake) (*types.Intake, error)
	GetByID(ctx context.Context, tx *gorm.DB, firmID, intakeID uuid.UUID) (*types.Intake, error)
	ListByUser(ctx context.Context, tx *gorm.DB, firmID, userID uuid.UUID) ([]*types.Intake, error)
	MergeFields(ctx context.Context, firmID, intakeID uuid.UUID, fields map[string]any) (*types.Intake, error)
	UpdateStatusCache(ctx context.Context, tx *gorm.DB, firmID, intakeID uuid.UUID, cache datatypes.JSON) error
	MarkSubmitted(ctx context.Context, tx *gorm.DB, firmID, intakeID uuid.UUID) error
}

type intakeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIntakeRepo(db *gorm.DB, baseLog *logger.Logger) IntakeRepo {
	return &intakeRepo{db: db, log: baseLog.With("repo", "IntakeRepo")}
}

func (ir *intakeRepo) Create(ctx context.Context, tx *gorm.DB, intake *types.Intake) (*types.Intake, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if intake.Payload == nil {
		intake.Payload = datatypes.JSONMap{}
	}
	if err := transaction.WithContext(ctx).Create(intake).Error; err != nil {
		return nil, err
	}
	return intake, nil
}

func (ir *intakeRepo) GetByID(ctx context.Context, tx *gorm.DB, firmID, intakeID uuid.UUID) (*types.Intake, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var intake types.Intake
	if err := transaction.WithContext(ctx).
		Where("id = ? AND firm_id = ?", intakeID, firmID).
		First(&intake).Error; err != nil {
		return nil, err
	}
	return &intake, nil
}

func (ir *intakeRepo) ListByUser(ctx context.Context, tx *gorm.DB, firmID, userID uuid.UUID) ([]*types.Intake, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var intakes []*types.Intake
	if err := transaction.WithContext(ctx).
		Where("firm_id = ? AND user_id = ?", firmID, userID).
		Order("created_at DESC").
		Find(&intakes).Error; err != nil {
		return nil, err
	}
	return intakes, nil
}

// MergeFields does the read-modify-write of the whole payload under a row
// lock: later writes override earlier ones at the same key, untouched keys
// survive. This is the single-writer-per-intake discipline; the orchestrator
// itself never mutates payload.
func (ir *intakeRepo) MergeFields(ctx context.Context, firmID, intakeID uuid.UUID, fields map[string]any) (*types.Intake, error) {
	var merged *types.Intake
	err := ir.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var intake types.Intake
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND firm_id = ?", intakeID, firmID).
			First(&intake).Error; err != nil {
			return err
		}
		if intake.Payload == nil {
			intake.Payload = datatypes.JSONMap{}
		}
		for key, value := range fields {
			intake.Payload[key] = value
		}
		if err := tx.Model(&intake).Update("payload", intake.Payload).Error; err != nil {
			return err
		}
		merged = &intake
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (ir *intakeRepo) UpdateStatusCache(ctx context.Context, tx *gorm.DB, firmID, intakeID uuid.UUID, cache datatypes.JSON) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Intake{}).
		Where("id = ? AND firm_id = ?", intakeID, firmID).
		Update("status_cache", cache).Error
}

func (ir *intakeRepo) MarkSubmitted(ctx context.Context, tx *gorm.DB, firmID, intakeID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	now := time.Now()
	return transaction.WithContext(ctx).
		Model(&types.Intake{}).
		Where("id = ? AND firm_id = ? AND status = ?", intakeID, firmID, types.IntakeStatusDraft).
		Updates(map[string]any{"status": types.IntakeStatusSubmitted, "submitted_at": now}).Error
}

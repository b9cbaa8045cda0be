package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/lumenlaw/intake-backend/internal/apierr"
	"github.com/lumenlaw/intake-backend/internal/clients/rediscache"
	"github.com/lumenlaw/intake-backend/internal/intake/assertion"
	"github.com/lumenlaw/intake-backend/internal/intake/orchestrator"
	"github.com/lumenlaw/intake-backend/internal/intake/schema"
	"github.com/lumenlaw/intake-backend/internal/logger"
	"github.com/lumenlaw/intake-backend/internal/repos"
	"github.com/lumenlaw/intake-backend/internal/requestdata"
	"github.com/lumenlaw/intake-backend/internal/types"
)

// IntakeService owns the storage boundary around the orchestrator: it loads
// the payload, recomputes status fresh on every call, and writes results
// back only as a display cache. Status is never client-asserted.

type IntakeService interface {
	BeginIntake(ctx context.Context, intakeType string, seed map[string]any) (*types.Intake, error)
	GetIntake(ctx context.Context, intakeID uuid.UUID) (*types.Intake, error)
	GetStatus(ctx context.Context, intakeID uuid.UUID) (*orchestrator.Result, error)
	ApplyFieldWrites(ctx context.Context, intakeID uuid.UUID, fields map[string]any, source assertion.SourceType) (*orchestrator.Result, error)
	SidebarSteps(ctx context.Context, intakeID uuid.UUID) ([]orchestrator.SidebarStep, error)
	Submit(ctx context.Context, intakeID uuid.UUID) (*types.Intake, error)
}

type intakeService struct {
	log        *logger.Logger
	intakeRepo repos.IntakeRepo
	cache      rediscache.StatusCache
}

func NewIntakeService(log *logger.Logger, intakeRepo repos.IntakeRepo, cache rediscache.StatusCache) IntakeService {
	return &intakeService{
		log:        log.With("service", "IntakeService"),
		intakeRepo: intakeRepo,
		cache:      cache,
	}
}

func scope(ctx context.Context) (*requestdata.RequestData, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil || rd.FirmID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing request scope"))
	}
	return rd, nil
}

func (is *intakeService) BeginIntake(ctx context.Context, intakeType string, seed map[string]any) (*types.Intake, error) {
	rd, err := scope(ctx)
	if err != nil {
		return nil, err
	}
	if !schema.IsValidIntakeType(intakeType) {
		return nil, apierr.New(http.StatusBadRequest, "unknown_intake_type",
			fmt.Errorf("%w: %q", schema.ErrUnknownIntakeType, intakeType))
	}

	payload := datatypes.JSONMap{}
	for key, value := range seed {
		payload[key] = value
	}
	payload["date_of_intake"] = time.Now().UTC().Format("2006-01-02")

	intake := &types.Intake{
		FirmID:     rd.FirmID,
		UserID:     rd.UserID,
		IntakeType: intakeType,
		Status:     types.IntakeStatusDraft,
		Payload:    payload,
	}
	created, err := is.intakeRepo.Create(ctx, nil, intake)
	if err != nil {
		return nil, fmt.Errorf("failed to create intake: %w", err)
	}
	is.log.Info("intake started", "intake_id", created.ID, "intake_type", intakeType)
	return created, nil
}

func (is *intakeService) GetIntake(ctx context.Context, intakeID uuid.UUID) (*types.Intake, error) {
	rd, err := scope(ctx)
	if err != nil {
		return nil, err
	}
	intake, err := is.intakeRepo.GetByID(ctx, nil, rd.FirmID, intakeID)
	if err != nil {
		return nil, apierr.New(http.StatusNotFound, "intake_not_found", err)
	}
	return intake, nil
}

// GetStatus recomputes the full orchestrator result from the stored payload.
// The cache is refreshed as a side effect but never consulted as truth.
func (is *intakeService) GetStatus(ctx context.Context, intakeID uuid.UUID) (*orchestrator.Result, error) {
	intake, err := is.GetIntake(ctx, intakeID)
	if err != nil {
		return nil, err
	}
	return is.recompute(ctx, intake)
}

func (is *intakeService) recompute(ctx context.Context, intake *types.Intake) (*orchestrator.Result, error) {
	res, err := orchestrator.Orchestrate(schema.IntakeType(intake.IntakeType), map[string]any(intake.Payload))
	if err != nil {
		// Stored mode string no longer recognized: a deployment defect.
		return nil, apierr.New(http.StatusInternalServerError, "bad_intake_type", err)
	}
	if is.cache != nil {
		if err := is.cache.Put(ctx, intake.ID, res); err != nil {
			is.log.Warn("failed to refresh status cache", "intake_id", intake.ID, "error", err)
		}
	}
	if raw, err := json.Marshal(res); err == nil {
		if err := is.intakeRepo.UpdateStatusCache(ctx, nil, intake.FirmID, intake.ID, datatypes.JSON(raw)); err != nil {
			is.log.Warn("failed to persist status cache", "intake_id", intake.ID, "error", err)
		}
	}
	return res, nil
}

// ApplyFieldWrites merges field updates into the payload and recomputes.
// Chat-sourced writes are wrapped in assertion envelopes carrying provenance;
// form writes are stored raw. Later writes override earlier ones at the same
// key.
func (is *intakeService) ApplyFieldWrites(ctx context.Context, intakeID uuid.UUID, fields map[string]any, source assertion.SourceType) (*orchestrator.Result, error) {
	rd, err := scope(ctx)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return is.GetStatus(ctx, intakeID)
	}

	writes := make(map[string]any, len(fields))
	for key, value := range fields {
		if source == assertion.SourceChat {
			writes[key] = assertion.Wrap(value, rd.UserID.String(), source, time.Now())
		} else {
			writes[key] = value
		}
	}

	intake, err := is.intakeRepo.MergeFields(ctx, rd.FirmID, intakeID, writes)
	if err != nil {
		return nil, apierr.New(http.StatusNotFound, "intake_not_found", err)
	}
	return is.recompute(ctx, intake)
}

func (is *intakeService) SidebarSteps(ctx context.Context, intakeID uuid.UUID) ([]orchestrator.SidebarStep, error) {
	intake, err := is.GetIntake(ctx, intakeID)
	if err != nil {
		return nil, err
	}
	res, err := is.recompute(ctx, intake)
	if err != nil {
		return nil, err
	}
	statusByKey := make(map[string]orchestrator.Status, len(res.SchemaSteps))
	for _, step := range res.SchemaSteps {
		statusByKey[step.Key] = step.Status
	}
	return orchestrator.BuildSidebarSteps(schema.IntakeType(intake.IntakeType), res.CurrentSchemaStep, statusByKey)
}

// Submit gates final submission on the freshly recomputed verdict. A blocked
// flow surfaces as a mode-mismatch message, not a validation dump.
func (is *intakeService) Submit(ctx context.Context, intakeID uuid.UUID) (*types.Intake, error) {
	rd, err := scope(ctx)
	if err != nil {
		return nil, err
	}
	intake, err := is.intakeRepo.GetByID(ctx, nil, rd.FirmID, intakeID)
	if err != nil {
		return nil, apierr.New(http.StatusNotFound, "intake_not_found", err)
	}
	if intake.Status == types.IntakeStatusSubmitted {
		return nil, apierr.New(http.StatusConflict, "already_submitted", fmt.Errorf("intake already submitted"))
	}

	res, err := is.recompute(ctx, intake)
	if err != nil {
		return nil, err
	}
	if res.FlowBlocked {
		return nil, apierr.New(http.StatusConflict, "intake_type_mismatch", fmt.Errorf("%s", res.FlowBlockedReason))
	}
	if !res.ReadyForReview {
		return nil, apierr.New(http.StatusConflict, "intake_incomplete",
			fmt.Errorf("intake is not ready for review: %d%% complete", res.CompletionPercent))
	}

	if err := is.intakeRepo.MarkSubmitted(ctx, nil, rd.FirmID, intakeID); err != nil {
		return nil, fmt.Errorf("failed to submit intake: %w", err)
	}
	is.log.Info("intake submitted", "intake_id", intakeID)
	return is.intakeRepo.GetByID(ctx, nil, rd.FirmID, intakeID)
}

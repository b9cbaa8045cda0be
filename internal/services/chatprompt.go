package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lumenlaw/intake-backend/internal/intake/orchestrator"
	"github.com/lumenlaw/intake-backend/internal/intake/prompts"
	"github.com/lumenlaw/intake-backend/internal/intake/schema"
	"github.com/lumenlaw/intake-backend/internal/logger"
)

// ChatPromptService hands the chat collaborator its next questions. Prompt
// libraries are derived once at construction and coverage is asserted there:
// a schema field without a prompt is a deployment defect caught at startup.

type ChatPromptService interface {
	NextPrompts(ctx context.Context, intakeID uuid.UUID, limit int) ([]prompts.Prompt, error)
	LibraryFor(mode schema.IntakeType) (prompts.Library, error)
}

type chatPromptService struct {
	log       *logger.Logger
	intakes   IntakeService
	libraries map[schema.IntakeType]prompts.Library
}

func NewChatPromptService(log *logger.Logger, intakes IntakeService) (ChatPromptService, error) {
	libraries := make(map[schema.IntakeType]prompts.Library)
	for _, mode := range schema.ValidIntakeTypes() {
		sc, err := schema.GetSchema(mode)
		if err != nil {
			return nil, err
		}
		reveals, err := schema.GetReveals(mode)
		if err != nil {
			return nil, err
		}
		lib := prompts.GenerateFromSchema(sc, reveals)
		if err := prompts.AssertCoverage(sc, lib); err != nil {
			return nil, err
		}
		libraries[mode] = lib
	}
	return &chatPromptService{
		log:       log.With("service", "ChatPromptService"),
		intakes:   intakes,
		libraries: libraries,
	}, nil
}

func (cs *chatPromptService) LibraryFor(mode schema.IntakeType) (prompts.Library, error) {
	lib, ok := cs.libraries[mode]
	if !ok {
		return prompts.Library{}, fmt.Errorf("%w: %q", schema.ErrUnknownIntakeType, string(mode))
	}
	return lib, nil
}

// NextPrompts intersects the current step's missing fields with the prompt
// library to pick the next question(s) to ask, in schema order.
func (cs *chatPromptService) NextPrompts(ctx context.Context, intakeID uuid.UUID, limit int) ([]prompts.Prompt, error) {
	intake, err := cs.intakes.GetIntake(ctx, intakeID)
	if err != nil {
		return nil, err
	}
	res, err := cs.intakes.GetStatus(ctx, intakeID)
	if err != nil {
		return nil, err
	}

	mode := schema.IntakeType(intake.IntakeType)
	lib, err := cs.LibraryFor(mode)
	if err != nil {
		return nil, err
	}
	next, err := orchestrator.GetChatPromptFields(mode, res, lib)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(next) > limit {
		next = next[:limit]
	}
	return next, nil
}

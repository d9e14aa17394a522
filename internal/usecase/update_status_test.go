package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aishnar/aishnar-leads/internal/entity"
	"github.com/aishnar/aishnar-leads/internal/usecase"
)

func TestUpdateStatusAppliesLocallyAfterStoreSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateStatus", ctx, "lead-123", entity.StatusContacted).Return(nil)

	uc := usecase.NewUpdateLeadStatusUseCase(mockRepo)

	lead := entity.Lead{ID: "lead-123", Status: entity.StatusNew}
	err := uc.Execute(ctx, &lead, entity.StatusContacted)

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusContacted, lead.Status)
}

func TestUpdateStatusStoreFailureLeavesLocalCopyUnchanged(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateStatus", ctx, "lead-123", entity.StatusQualified).Return(errors.New("timeout"))

	uc := usecase.NewUpdateLeadStatusUseCase(mockRepo)

	lead := entity.Lead{ID: "lead-123", Status: entity.StatusNew}
	err := uc.Execute(ctx, &lead, entity.StatusQualified)

	assert.Error(t, err)
	assert.Equal(t, entity.StatusNew, lead.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	uc := usecase.NewUpdateLeadStatusUseCase(mockRepo)

	lead := entity.Lead{ID: "lead-123", Status: entity.StatusNew}
	err := uc.Execute(ctx, &lead, "Archived")

	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
	assert.Equal(t, entity.StatusNew, lead.Status)
	mockRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateStatusAnyTransitionAllowed(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateStatus", ctx, "lead-123", entity.StatusNew).Return(nil)

	uc := usecase.NewUpdateLeadStatusUseCase(mockRepo)

	// Backwards moves are legal, the pipeline is not forward-only.
	lead := entity.Lead{ID: "lead-123", Status: entity.StatusQualified}
	err := uc.Execute(ctx, &lead, entity.StatusNew)

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusNew, lead.Status)
	mockRepo.AssertCalled(t, "UpdateStatus", ctx, "lead-123", entity.StatusNew)
}

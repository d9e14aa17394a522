package usecase

import (
	"context"

	"github.com/aishnar/aishnar-leads/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewUpdateLeadStatusUseCase(repo entity.LeadRepositoryInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Repo: repo}
}

// Execute moves a lead to a new status. The locally held copy is mutated only
// after the store confirms, so a failed update never shows an unconfirmed
// state. No adjacency rule: any status may move directly to any other.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, lead *entity.Lead, status string) error {
	if !entity.IsValidStatus(status) {
		return entity.ErrInvalidStatus
	}

	if err := uc.Repo.UpdateStatus(ctx, lead.ID, status); err != nil {
		return err
	}

	lead.Status = status
	return nil
}

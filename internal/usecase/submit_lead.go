package usecase

import (
	"context"
	"log"

	"github.com/aishnar/aishnar-leads/internal/entity"
	"github.com/aishnar/aishnar-leads/internal/infra/queue"
)

type SubmitLeadUseCase struct {
	Repo  entity.LeadRepositoryInterface
	Queue QueueProducerInterface
}

func NewSubmitLeadUseCase(repo entity.LeadRepositoryInterface, producer QueueProducerInterface) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Repo:  repo,
		Queue: producer,
	}
}

// Execute validates, normalizes and stores a submission. Exactly one insert
// attempt per validated submission; there is no automatic retry. The returned
// error is either a ValidationErrors value or the store's failure as-is (the
// handler reduces the latter to a generic message).
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead := input.toLead()
	if err := uc.Repo.Insert(ctx, &lead); err != nil {
		return nil, err
	}

	// The lead is already stored; a notification that fails to enqueue is
	// logged and dropped rather than surfaced to the visitor.
	if uc.Queue != nil {
		payload := queue.LeadCapturedPayload{
			LeadID:         lead.ID,
			FullName:       lead.FullName,
			Email:          lead.Email,
			CompanyName:    lead.CompanyName,
			Industry:       lead.Industry,
			InterestInPaid: lead.InterestInPaid,
			CreatedAt:      lead.CreatedAt,
		}
		if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
			log.Printf("failed to publish lead captured event for %s: %v", lead.ID, err)
		}
	}

	return &SubmitLeadOutput{
		ID:        lead.ID,
		Status:    lead.Status,
		CreatedAt: lead.CreatedAt,
	}, nil
}

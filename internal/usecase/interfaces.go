package usecase

import (
	"context"

	"github.com/aishnar/aishnar-leads/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}

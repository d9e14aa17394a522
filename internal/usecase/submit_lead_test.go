package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aishnar/aishnar-leads/internal/entity"
	"github.com/aishnar/aishnar-leads/internal/infra/queue"
	"github.com/aishnar/aishnar-leads/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestSubmitLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)

	created := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	mockRepo.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
		lead := args.Get(1).(*entity.Lead)
		lead.ID = "lead-123"
		lead.Status = entity.StatusNew
		lead.CreatedAt = created
	}).Return(nil)
	mockQueue.On("PublishLeadCaptured", ctx, mock.Anything).Return(nil)

	uc := usecase.NewSubmitLeadUseCase(mockRepo, mockQueue)

	input := validInput()
	input.FullName = "  Rahul Sharma  "
	input.Industry = "Technology"

	output, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, "lead-123", output.ID)
	assert.Equal(t, entity.StatusNew, output.Status)
	assert.Equal(t, created, output.CreatedAt)

	// The stored lead is the normalized one.
	inserted := mockRepo.Calls[0].Arguments.Get(1).(*entity.Lead)
	assert.Equal(t, "Rahul Sharma", inserted.FullName)

	mockQueue.AssertNumberOfCalls(t, "PublishLeadCaptured", 1)
}

func TestSubmitLeadValidationFailureSkipsStore(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)

	uc := usecase.NewSubmitLeadUseCase(mockRepo, mockQueue)

	input := validInput()
	input.Consent = false

	output, err := uc.Execute(ctx, input)

	assert.Nil(t, output)
	var verrs usecase.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields(), "consent")

	mockRepo.AssertNotCalled(t, "Insert")
	mockQueue.AssertNotCalled(t, "PublishLeadCaptured")
}

func TestSubmitLeadStoreFailureIsSingleAttempt(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)
	mockRepo.On("Insert", ctx, mock.Anything).Return(errors.New("connection reset"))

	uc := usecase.NewSubmitLeadUseCase(mockRepo, mockQueue)

	output, err := uc.Execute(ctx, validInput())

	assert.Nil(t, output)
	assert.Error(t, err)

	mockRepo.AssertNumberOfCalls(t, "Insert", 1)
	mockQueue.AssertNotCalled(t, "PublishLeadCaptured")
}

func TestSubmitLeadPublishFailureDoesNotFailSubmission(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)
	mockRepo.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Lead).ID = "lead-456"
	}).Return(nil)
	mockQueue.On("PublishLeadCaptured", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := usecase.NewSubmitLeadUseCase(mockRepo, mockQueue)

	output, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.Equal(t, "lead-456", output.ID)
}

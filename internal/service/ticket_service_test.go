package service

import (
	"context"
	"testing"

	"storefront-api/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTicketRepository is a mock implementation of TicketRepository.
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) List(ctx context.Context) ([]model.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Ticket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Update(ctx context.Context, ticket *model.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func TestTicketService_Create(t *testing.T) {
	repo := new(MockTicketRepository)
	sender := &captureSender{}
	svc := NewTicketService(repo, sender, zerolog.Nop())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Ticket")).Return(nil)

	ticket, err := svc.Create(context.Background(), model.TicketInput{
		Name: "Alex", Email: "alex@example.com", Subject: "Wrong size", Message: "Ordered M, got S",
	})
	require.NoError(t, err)

	assert.Equal(t, model.TicketOpen, ticket.Status)
	assert.Equal(t, "medium", ticket.Priority)

	// Confirmation email goes to the requester
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "alex@example.com", sender.sent[0].to)
}

func TestTicketService_Create_MailFailureIsNotFatal(t *testing.T) {
	repo := new(MockTicketRepository)
	sender := &captureSender{failFor: map[string]bool{"alex@example.com": true}}
	svc := NewTicketService(repo, sender, zerolog.Nop())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), model.TicketInput{
		Name: "Alex", Email: "alex@example.com", Subject: "Hi", Message: "Help",
	})
	assert.NoError(t, err)
}

func TestTicketService_Create_RequiresFields(t *testing.T) {
	repo := new(MockTicketRepository)
	svc := NewTicketService(repo, &captureSender{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), model.TicketInput{Name: "Alex"})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create")
}

func TestTicketService_Reply(t *testing.T) {
	repo := new(MockTicketRepository)
	sender := &captureSender{}
	svc := NewTicketService(repo, sender, zerolog.Nop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&model.Ticket{
		ID: id, Name: "Alex", Email: "alex@example.com", Status: model.TicketOpen,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.Reply(context.Background(), id, model.TicketReply{Message: "On its way"})
	require.NoError(t, err)

	assert.Equal(t, "On its way", ticket.AdminReply)
	assert.NotNil(t, ticket.AdminRepliedAt)
	// An open ticket moves to in-progress when replied to
	assert.Equal(t, model.TicketInProgress, ticket.Status)
	require.Len(t, sender.sent, 1)
}

func TestTicketService_Reply_AcceptsReplyField(t *testing.T) {
	repo := new(MockTicketRepository)
	svc := NewTicketService(repo, &captureSender{}, zerolog.Nop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&model.Ticket{ID: id, Status: model.TicketOpen}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.Reply(context.Background(), id, model.TicketReply{Reply: "Resolved", Status: model.TicketResolved})
	require.NoError(t, err)
	assert.Equal(t, "Resolved", ticket.AdminReply)
	assert.Equal(t, model.TicketResolved, ticket.Status)
}

func TestTicketService_UpdateStatus(t *testing.T) {
	repo := new(MockTicketRepository)
	svc := NewTicketService(repo, &captureSender{}, zerolog.Nop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&model.Ticket{ID: id, Status: model.TicketOpen, Priority: "medium"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.UpdateStatus(context.Background(), id, model.TicketClosed, "high")
	require.NoError(t, err)
	assert.Equal(t, model.TicketClosed, ticket.Status)
	assert.Equal(t, "high", ticket.Priority)
}

func TestTicketService_UpdateStatus_Invalid(t *testing.T) {
	repo := new(MockTicketRepository)
	svc := NewTicketService(repo, &captureSender{}, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "vanished", "")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

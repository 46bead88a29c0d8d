package service

import (
	"context"
	"fmt"
	"time"

	"storefront-api/internal/mail"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ticketService implements TicketService.
type ticketService struct {
	repo   repository.TicketRepository
	sender mail.Sender
	logger zerolog.Logger
}

// NewTicketService creates a new ticket service.
func NewTicketService(repo repository.TicketRepository, sender mail.Sender, logger zerolog.Logger) TicketService {
	return &ticketService{
		repo:   repo,
		sender: sender,
		logger: logger.With().Str("service", "ticket").Logger(),
	}
}

// Create files a support ticket. The confirmation email is best-effort; a
// delivery failure never fails the ticket itself.
func (s *ticketService) Create(ctx context.Context, input model.TicketInput) (*model.Ticket, error) {
	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Name, email, subject and message are required")
	}

	now := time.Now()
	ticket := &model.Ticket{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    model.TicketOpen,
		Priority:  "medium",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		s.logger.Error().Err(err).Msg("failed to create ticket")
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	subject, body := mail.TicketReceivedMessage(ticket.Name, ticket.Subject)
	if err := s.sender.Send(ctx, ticket.Email, subject, body); err != nil {
		s.logger.Warn().Err(err).Str("ticket_id", ticket.ID.String()).Msg("confirmation email failed")
	}

	s.logger.Info().Str("ticket_id", ticket.ID.String()).Str("subject", ticket.Subject).Msg("ticket created")
	return ticket, nil
}

// List retrieves all tickets, newest first.
func (s *ticketService) List(ctx context.Context) ([]model.Ticket, error) {
	tickets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	if tickets == nil {
		tickets = []model.Ticket{}
	}
	return tickets, nil
}

// ListByUser retrieves a user's tickets, newest first.
func (s *ticketService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Ticket, error) {
	tickets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	if tickets == nil {
		tickets = []model.Ticket{}
	}
	return tickets, nil
}

// GetByID retrieves a ticket.
func (s *ticketService) GetByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket == nil {
		return nil, model.ErrTicketNotFound
	}
	return ticket, nil
}

// Reply records an admin reply and notifies the requester, best-effort.
// Unless the reply names another status, the ticket moves to in-progress.
func (s *ticketService) Reply(ctx context.Context, id uuid.UUID, reply model.TicketReply) (*model.Ticket, error) {
	text := reply.Text()
	if text == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Reply message is required")
	}

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket == nil {
		return nil, model.ErrTicketNotFound
	}

	now := time.Now()
	ticket.AdminReply = text
	ticket.AdminRepliedAt = &now
	ticket.UpdatedAt = now
	if reply.Status != "" {
		if !model.IsValidTicketStatus(reply.Status) {
			return nil, model.ErrInvalidStatus
		}
		ticket.Status = reply.Status
	} else if ticket.Status == model.TicketOpen {
		ticket.Status = model.TicketInProgress
	}

	if err := s.repo.Update(ctx, ticket); err != nil {
		s.logger.Error().Err(err).Str("ticket_id", id.String()).Msg("failed to update ticket")
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	subject, body := mail.TicketReplyMessage(ticket.Name, text)
	if err := s.sender.Send(ctx, ticket.Email, subject, body); err != nil {
		s.logger.Warn().Err(err).Str("ticket_id", id.String()).Msg("reply notification failed")
	}

	s.logger.Info().Str("ticket_id", id.String()).Str("status", ticket.Status).Msg("ticket replied")
	return ticket, nil
}

// UpdateStatus sets a ticket's status and optionally its priority.
func (s *ticketService) UpdateStatus(ctx context.Context, id uuid.UUID, status, priority string) (*model.Ticket, error) {
	if !model.IsValidTicketStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket == nil {
		return nil, model.ErrTicketNotFound
	}

	ticket.Status = status
	if priority != "" {
		ticket.Priority = priority
	}
	ticket.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	s.logger.Info().Str("ticket_id", id.String()).Str("status", status).Msg("ticket status updated")
	return ticket, nil
}

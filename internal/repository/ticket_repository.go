package repository

import (
	"context"
	"fmt"

	"storefront-api/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ticketRepository implements the TicketRepository interface using PostgreSQL.
type ticketRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTicketRepository creates a new PostgreSQL-backed ticket repository.
func NewTicketRepository(pool *pgxpool.Pool, logger zerolog.Logger) TicketRepository {
	return &ticketRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "ticket").Logger(),
	}
}

const ticketColumns = `
	id, user_id, name, email, subject, message, status, priority, admin_reply, admin_replied_at, created_at, updated_at
`

// Create inserts a new ticket.
func (r *ticketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		ticket.ID, ticket.UserID, ticket.Name, ticket.Email, ticket.Subject,
		ticket.Message, ticket.Status, ticket.Priority, ticket.AdminReply,
		ticket.AdminRepliedAt, ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("ticket_id", ticket.ID.String()).Msg("failed to create ticket")
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	r.logger.Debug().Str("ticket_id", ticket.ID.String()).Msg("ticket created")
	return nil
}

// GetByID retrieves a ticket.
func (r *ticketRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	ticket, err := r.scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("ticket_id", id.String()).Msg("ticket not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("ticket_id", id.String()).Msg("failed to query ticket")
		return nil, fmt.Errorf("failed to query ticket: %w", err)
	}

	return ticket, nil
}

// List retrieves all tickets, newest first.
func (r *ticketRepository) List(ctx context.Context) ([]model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY created_at DESC`
	return r.getMany(ctx, query)
}

// ListByUser retrieves a user's tickets, newest first.
func (r *ticketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE user_id = $1 ORDER BY created_at DESC`
	return r.getMany(ctx, query, userID)
}

// Update persists the mutable fields of a ticket.
func (r *ticketRepository) Update(ctx context.Context, ticket *model.Ticket) error {
	query := `
		UPDATE tickets
		SET status = $2, priority = $3, admin_reply = $4, admin_replied_at = $5, updated_at = $6
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		ticket.ID, ticket.Status, ticket.Priority, ticket.AdminReply,
		ticket.AdminRepliedAt, ticket.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("ticket_id", ticket.ID.String()).Msg("failed to update ticket")
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	return nil
}

func (r *ticketRepository) getMany(ctx context.Context, query string, args ...any) ([]model.Ticket, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query tickets")
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer rows.Close()

	var tickets []model.Ticket
	for rows.Next() {
		ticket, err := r.scanTicket(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan ticket row")
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, *ticket)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating ticket rows")
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, nil
}

// scanTicket reads one ticket row in ticketColumns order.
func (r *ticketRepository) scanTicket(row pgx.Row) (*model.Ticket, error) {
	var t model.Ticket
	err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Email, &t.Subject,
		&t.Message, &t.Status, &t.Priority, &t.AdminReply,
		&t.AdminRepliedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

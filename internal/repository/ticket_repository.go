package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-management/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket domain.Ticket) (int64, error)
	Fetch(ctx context.Context, id int64) (domain.Ticket, error)
	Update(ctx context.Context, ticket domain.Ticket) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates a Postgres-backed repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket domain.Ticket) (int64, error) {
	const query = `
        INSERT INTO tickets (title, description, priority, assigned_username, created_at, price_dollars, account_manager_username)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Priority,
		ticket.AssignedUser.Username,
		ticket.CreatedAt,
		ticket.PriceDollars,
		managerUsername(ticket.AccountManager),
	).Scan(&id)
	return id, err
}

func (r *ticketRepository) Update(ctx context.Context, ticket domain.Ticket) error {
	const query = `
        UPDATE tickets SET title=$1, description=$2, priority=$3, assigned_username=$4,
            created_at=$5, price_dollars=$6, account_manager_username=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Priority,
		ticket.AssignedUser.Username,
		ticket.CreatedAt,
		ticket.PriceDollars,
		managerUsername(ticket.AccountManager),
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ticketRepository) Fetch(ctx context.Context, id int64) (domain.Ticket, error) {
	const query = `
        SELECT t.id, t.title, t.description, t.priority, t.created_at, t.price_dollars,
               a.username, a.email, a.is_account_manager, a.created_at,
               m.username, m.email, m.is_account_manager, m.created_at
        FROM tickets t
        JOIN users a ON a.username = t.assigned_username
        LEFT JOIN users m ON m.username = t.account_manager_username
        WHERE t.id=$1`

	var (
		ticket         domain.Ticket
		managerName    *string
		managerEmail   *string
		managerFlag    *bool
		managerCreated *time.Time
	)
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Priority,
		&ticket.CreatedAt,
		&ticket.PriceDollars,
		&ticket.AssignedUser.Username,
		&ticket.AssignedUser.Email,
		&ticket.AssignedUser.AccountManager,
		&ticket.AssignedUser.CreatedAt,
		&managerName,
		&managerEmail,
		&managerFlag,
		&managerCreated,
	); err != nil {
		return domain.Ticket{}, translateErr(err)
	}
	if managerName != nil {
		ticket.AccountManager = &domain.User{Username: *managerName}
		if managerEmail != nil {
			ticket.AccountManager.Email = *managerEmail
		}
		if managerFlag != nil {
			ticket.AccountManager.AccountManager = *managerFlag
		}
		if managerCreated != nil {
			ticket.AccountManager.CreatedAt = *managerCreated
		}
	}
	return ticket, nil
}

func managerUsername(u *domain.User) *string {
	if u == nil {
		return nil
	}
	name := u.Username
	return &name
}

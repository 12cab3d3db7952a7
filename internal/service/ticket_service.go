package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-management/internal/domain"
	"github.com/spec-kit/ticket-management/internal/repository"
	apperrors "github.com/spec-kit/ticket-management/pkg/util/errorutil"
)

// UserDirectory resolves users tickets can be assigned to.
type UserDirectory interface {
	FindUser(ctx context.Context, username string) (*domain.User, error)
	AccountManager(ctx context.Context) (*domain.User, error)
}

// TicketStore persists tickets. Fetch returns an owned value.
type TicketStore interface {
	Create(ctx context.Context, ticket domain.Ticket) (int64, error)
	Fetch(ctx context.Context, id int64) (domain.Ticket, error)
	Update(ctx context.Context, ticket domain.Ticket) error
}

// Notifier alerts administrators about a high priority ticket.
type Notifier interface {
	AlertAdministrator(ctx context.Context, title, assignee string) error
}

// TicketService coordinates ticket creation and assignment.
type TicketService struct {
	users    UserDirectory
	tickets  TicketStore
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
	maxAge   time.Duration
}

// TicketDependencies bundles collaborators for the ticket service.
// Users, Tickets and Notifier are required.
type TicketDependencies struct {
	Users    UserDirectory
	Tickets  TicketStore
	Notifier Notifier
	Logger   *zap.Logger
	// Clock supplies the evaluation instant for age escalation. Defaults to time.Now.
	Clock func() time.Time
	// EscalationAge is how old a ticket must be to escalate. Defaults to one hour.
	EscalationAge time.Duration
}

// CreateTicketInput describes ticket creation payload.
type CreateTicketInput struct {
	Title          string
	Priority       domain.TicketPriority
	AssignedTo     string
	Description    string
	CreatedAt      time.Time
	PayingCustomer bool
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) (*TicketService, error) {
	switch {
	case deps.Users == nil:
		return nil, errors.New("ticket service: user directory required")
	case deps.Tickets == nil:
		return nil, errors.New("ticket service: ticket store required")
	case deps.Notifier == nil:
		return nil, errors.New("ticket service: notifier required")
	}
	svc := &TicketService{
		users:    deps.Users,
		tickets:  deps.Tickets,
		notifier: deps.Notifier,
		logger:   deps.Logger,
		now:      deps.Clock,
		maxAge:   deps.EscalationAge,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	if svc.maxAge <= 0 {
		svc.maxAge = DefaultEscalationAge
	}
	return svc, nil
}

// CreateTicket validates, escalates, prices and persists a new ticket, returning its id.
func (s *TicketService) CreateTicket(ctx context.Context, input CreateTicketInput) (int64, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return 0, apperrors.NewInvalidTicket("title and description are required")
	}

	user, err := s.resolveUser(ctx, input.AssignedTo)
	if err != nil {
		return 0, err
	}

	priority := escalate(input.Priority, input.Title, input.CreatedAt, s.now(), s.maxAge)
	if priority != input.Priority {
		s.logger.Info("ticket priority escalated",
			zap.String("title", input.Title),
			zap.String("from", string(input.Priority)),
			zap.String("to", string(priority)))
	}

	if priority == domain.TicketPriorityHigh {
		if err := s.notifier.AlertAdministrator(ctx, input.Title, input.AssignedTo); err != nil {
			s.logger.Warn("administrator alert failed", zap.String("title", input.Title), zap.Error(err))
		}
	}

	ticket := domain.Ticket{
		Title:        input.Title,
		Description:  input.Description,
		Priority:     priority,
		AssignedUser: *user,
		CreatedAt:    input.CreatedAt,
	}
	if input.PayingCustomer {
		manager, err := s.users.AccountManager(ctx)
		if err != nil {
			return 0, apperrors.MapError(err)
		}
		if manager == nil {
			return 0, apperrors.NewInternalError(errors.New("account manager not configured"))
		}
		m := *manager
		ticket.AccountManager = &m
		ticket.PriceDollars = priority.Price()
	}

	id, err := s.tickets.Create(ctx, ticket)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	return id, nil
}

// AssignTicket reassigns an existing ticket to username.
func (s *TicketService) AssignTicket(ctx context.Context, id int64, username string) error {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	ticket, err := s.tickets.Fetch(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewTicketNotFound(id)
		}
		return apperrors.MapError(err)
	}

	if err := s.tickets.Update(ctx, ticket.WithAssignee(*user)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewTicketNotFound(id)
		}
		return apperrors.MapError(err)
	}
	s.logger.Debug("ticket assigned", zap.Int64("ticket_id", id), zap.String("username", username))
	return nil
}

func (s *TicketService) resolveUser(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, apperrors.NewUnknownUser(username)
	}
	user, err := s.users.FindUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUnknownUser(username)
		}
		return nil, apperrors.MapError(err)
	}
	if user == nil {
		return nil, apperrors.NewUnknownUser(username)
	}
	return user, nil
}

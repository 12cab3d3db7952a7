package repository

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/ticket-management/internal/domain"
)

// InMemoryUserDirectory is a UserRepository backed by a map.
type InMemoryUserDirectory struct {
	mu      sync.RWMutex
	byName  map[string]domain.User
	manager string
}

// NewInMemoryUserDirectory seeds a directory whose account manager is managerUsername.
func NewInMemoryUserDirectory(managerUsername string, users ...domain.User) *InMemoryUserDirectory {
	d := &InMemoryUserDirectory{
		byName:  make(map[string]domain.User, len(users)+1),
		manager: managerUsername,
	}
	for _, u := range users {
		d.put(u)
	}
	if managerUsername != "" {
		if _, ok := d.byName[managerUsername]; !ok {
			d.put(domain.User{Username: managerUsername, AccountManager: true})
		}
	}
	return d
}

func (d *InMemoryUserDirectory) FindUser(_ context.Context, username string) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (d *InMemoryUserDirectory) AccountManager(ctx context.Context) (*domain.User, error) {
	d.mu.RLock()
	manager := d.manager
	d.mu.RUnlock()
	if manager == "" {
		return nil, ErrNotFound
	}
	return d.FindUser(ctx, manager)
}

func (d *InMemoryUserDirectory) Upsert(_ context.Context, user domain.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.put(user)
	if user.AccountManager && d.manager == "" {
		d.manager = user.Username
	}
	return nil
}

func (d *InMemoryUserDirectory) put(u domain.User) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	d.byName[u.Username] = u
}

// InMemoryTicketStore is a TicketRepository backed by a map with sequential ids.
type InMemoryTicketStore struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.Ticket
}

func NewInMemoryTicketStore() *InMemoryTicketStore {
	return &InMemoryTicketStore{byID: make(map[int64]domain.Ticket)}
}

func (s *InMemoryTicketStore) Create(_ context.Context, ticket domain.Ticket) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	ticket = cloneTicket(ticket)
	ticket.ID = s.nextID
	s.byID[ticket.ID] = ticket
	return ticket.ID, nil
}

func (s *InMemoryTicketStore) Fetch(_ context.Context, id int64) (domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return domain.Ticket{}, ErrNotFound
	}
	return cloneTicket(t), nil
}

func (s *InMemoryTicketStore) Update(_ context.Context, ticket domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[ticket.ID]; !ok {
		return ErrNotFound
	}
	s.byID[ticket.ID] = cloneTicket(ticket)
	return nil
}

func cloneTicket(t domain.Ticket) domain.Ticket {
	return t.WithAssignee(t.AssignedUser)
}

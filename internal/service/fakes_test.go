package service

import (
	"context"
	"errors"
	"sync"

	"github.com/spec-kit/ticket-management/internal/domain"
	"github.com/spec-kit/ticket-management/internal/repository"
)

type fakeDirectory struct {
	users        map[string]domain.User
	manager      domain.User
	findCalls    []string
	managerCalls int
}

func newFakeDirectory(names ...string) *fakeDirectory {
	d := &fakeDirectory{
		users:   make(map[string]domain.User, len(names)),
		manager: domain.User{Username: "erin", AccountManager: true},
	}
	for _, n := range names {
		d.users[n] = domain.User{Username: n}
	}
	return d
}

func (d *fakeDirectory) FindUser(_ context.Context, username string) (*domain.User, error) {
	d.findCalls = append(d.findCalls, username)
	u, ok := d.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (d *fakeDirectory) AccountManager(_ context.Context) (*domain.User, error) {
	d.managerCalls++
	m := d.manager
	return &m, nil
}

type fakeStore struct {
	nextID  int64
	tickets map[int64]domain.Ticket
	created []domain.Ticket
	updated []domain.Ticket
	events  *[]string
}

func newFakeStore(events *[]string) *fakeStore {
	return &fakeStore{nextID: 100, tickets: map[int64]domain.Ticket{}, events: events}
}

func (s *fakeStore) Create(_ context.Context, ticket domain.Ticket) (int64, error) {
	*s.events = append(*s.events, "create")
	s.nextID++
	ticket.ID = s.nextID
	s.created = append(s.created, ticket)
	s.tickets[ticket.ID] = ticket
	return ticket.ID, nil
}

func (s *fakeStore) Fetch(_ context.Context, id int64) (domain.Ticket, error) {
	t, ok := s.tickets[id]
	if !ok {
		return domain.Ticket{}, repository.ErrNotFound
	}
	return t, nil
}

func (s *fakeStore) Update(_ context.Context, ticket domain.Ticket) error {
	*s.events = append(*s.events, "update")
	s.updated = append(s.updated, ticket)
	s.tickets[ticket.ID] = ticket
	return nil
}

type alert struct {
	title    string
	assignee string
}

type fakeNotifier struct {
	mu     sync.Mutex
	alerts []alert
	err    error
	events *[]string
}

func (n *fakeNotifier) AlertAdministrator(_ context.Context, title, assignee string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.events != nil {
		*n.events = append(*n.events, "notify")
	}
	n.alerts = append(n.alerts, alert{title: title, assignee: assignee})
	return n.err
}

var errStoreDown = errors.New("store down")

type failingStore struct{ fakeStore }

func (s *failingStore) Create(context.Context, domain.Ticket) (int64, error) {
	return 0, errStoreDown
}

package repository

import (
	"context"
	"sync"
	"time"

	"github.com/userdesk/backend/internal/model"
)

// memoryDB is the process-local fallback store. Its contents are lost on
// restart.
type memoryDB struct {
	mu            sync.Mutex
	users         []*model.User
	messages      []*model.Message
	nextUserID    int64
	nextMessageID int64
	now           func() time.Time
}

// SampleUsers returns the rows the fallback store starts with.
func SampleUsers() []model.User {
	return []model.User{
		{Name: "Ada Lovelace", Email: "ada@example.com", Role: "Admin", Status: model.StatusActive},
		{Name: "Alan Turing", Email: "alan@example.com", Role: model.DefaultRole, Status: model.StatusInactive},
	}
}

// NewMemoryStore returns a Store kept entirely in process memory, seeded
// with seed. Id counters continue after the seeded rows.
func NewMemoryStore(seed []model.User) *Store {
	return newMemoryStore(seed, time.Now)
}

func newMemoryStore(seed []model.User, now func() time.Time) *Store {
	m := &memoryDB{nextUserID: 1, nextMessageID: 1, now: now}
	for i := range seed {
		u := seed[i]
		u.ID = m.nextUserID
		m.nextUserID++
		if u.Role == "" {
			u.Role = model.DefaultRole
		}
		if u.Status == "" {
			u.Status = model.StatusActive
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = now().UTC()
		}
		m.users = append(m.users, &u)
	}
	return &Store{
		Users:    &MemoryUserRepository{db: m},
		Messages: &MemoryMessageRepository{db: m},
		DB:       m,
		driver:   DriverMemory,
	}
}

func (m *memoryDB) Ping(context.Context) error {
	return nil
}

// MemoryUserRepository is the in-memory UserRepository.
type MemoryUserRepository struct {
	db *memoryDB
}

var _ UserRepository = (*MemoryUserRepository)(nil)

func (r *MemoryUserRepository) List(_ context.Context) ([]*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	users := make([]*model.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		c := *u
		users = append(users, &c)
	}
	return users, nil
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	user.ID = r.db.nextUserID
	r.db.nextUserID++
	if user.Role == "" {
		user.Role = model.DefaultRole
	}
	if user.Status == "" {
		user.Status = model.StatusActive
	}
	user.CreatedAt = r.db.now().UTC()

	c := *user
	r.db.users = append(r.db.users, &c)
	return nil
}

func (r *MemoryUserRepository) UpdateStatus(_ context.Context, id int64, status string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.ID == id {
			u.Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryUserRepository) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, u := range r.db.users {
		if u.ID == id {
			r.db.users = append(r.db.users[:i], r.db.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryUserRepository) Count(_ context.Context, filter model.UserFilter) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	today := r.db.now().UTC().Format(time.DateOnly)
	n := 0
	for _, u := range r.db.users {
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if filter.CreatedToday && u.CreatedAt.UTC().Format(time.DateOnly) != today {
			continue
		}
		n++
	}
	return n, nil
}

// MemoryMessageRepository is the in-memory MessageRepository.
type MemoryMessageRepository struct {
	db *memoryDB
}

var _ MessageRepository = (*MemoryMessageRepository)(nil)

func (r *MemoryMessageRepository) Save(_ context.Context, msg *model.Message) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	msg.ID = r.db.nextMessageID
	r.db.nextMessageID++
	msg.CreatedAt = r.db.now().UTC()

	c := *msg
	r.db.messages = append(r.db.messages, &c)
	return nil
}

func (r *MemoryMessageRepository) Count(_ context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.messages), nil
}

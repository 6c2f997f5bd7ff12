package user

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryUserRepository implements UserRepository using in-memory storage.
// It enforces the same username/email uniqueness as the Postgres schema.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]User
}

// NewInMemoryUserRepository creates a new in-memory user repository
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[uuid.UUID]User),
	}
}

// GetByUsername finds a user by username
func (r *InMemoryUserRepository) GetByUsername(ctx context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// GetByEmail finds a user by email
func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// ListAll returns all users ordered by creation time
func (r *InMemoryUserRepository) ListAll(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

// Create stores a new user
func (r *InMemoryUserRepository) Create(ctx context.Context, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username {
			return User{}, ErrUsernameExists
		}
		if existing.Email == u.Email {
			return User{}, ErrEmailExists
		}
	}

	now := time.Now()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = u
	return u, nil
}

// Update overwrites an existing user
func (r *InMemoryUserRepository) Update(ctx context.Context, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[u.ID]
	if !ok {
		return User{}, ErrNotFound
	}

	for id, existing := range r.users {
		if id == u.ID {
			continue
		}
		if existing.Username == u.Username {
			return User{}, ErrUsernameExists
		}
		if existing.Email == u.Email {
			return User{}, ErrEmailExists
		}
	}

	u.CreatedAt = current.CreatedAt
	u.UpdatedAt = time.Now()
	r.users[u.ID] = u
	return u, nil
}

// Delete removes a user
func (r *InMemoryUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

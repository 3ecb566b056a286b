package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"techhive-users/internal/domain/user"
	apperrors "techhive-users/pkg/errors"
)

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int]user.User
	// highest id ever stored; ids are never handed out twice
	lastID int
}

func NewUserRepository(seed ...user.User) UserRepository {
	return NewMemoryUserRepository(seed...)
}

func NewMemoryUserRepository(seed ...user.User) *MemoryUserRepository {
	r := &MemoryUserRepository{users: make(map[int]user.User, len(seed))}
	for _, u := range seed {
		r.users[u.ID] = u
		if u.ID > r.lastID {
			r.lastID = u.ID
		}
	}
	return r
}

func (r *MemoryUserRepository) GetAll(ctx context.Context) []user.User {
	r.mu.RLock()
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id int) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *MemoryUserRepository) NextID(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastID + 1
}

// Insert stores u. A zero ID is assigned here; a caller-chosen ID that is already
// taken fails with ErrConflict, which is how two writers racing for the same
// NextID value find out.
func (r *MemoryUserRepository) Insert(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == 0 {
		u.ID = r.lastID + 1
	}
	if u.ID < 0 {
		return fmt.Errorf("insert user %d: %w", u.ID, apperrors.ErrInvalidInput)
	}
	if _, exists := r.users[u.ID]; exists {
		return fmt.Errorf("insert user %d: %w", u.ID, apperrors.ErrConflict)
	}

	r.users[u.ID] = *u
	if u.ID > r.lastID {
		r.lastID = u.ID
	}
	return nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, id int, name, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, apperrors.ErrNotFound
	}
	u.Name = name
	u.Email = email
	r.users[id] = u
	return u, nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	return true
}

// EmailTaken reports whether a user other than exceptID holds email.
// Pass exceptID 0 to check against everyone.
func (r *MemoryUserRepository) EmailTaken(ctx context.Context, email string, exceptID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, u := range r.users {
		if id != exceptID && user.SameEmail(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *MemoryUserRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

package memory

import (
	"context"
	"strings"
	"sync"

	"petcare-marketplace/internal/domain/users"
	"petcare-marketplace/internal/platform/apperr"
)

type UserRepo struct {
	mu     sync.RWMutex
	byID   map[int64]users.User
	nextID int64
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID: make(map[int64]users.User),
	}
}

func (r *UserRepo) Create(_ context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if strings.EqualFold(existing.Username, u.Username) {
			return users.User{}, apperr.ErrConflict
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u, nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return users.User{}, apperr.ErrNotFound
}

func (r *UserRepo) exists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}

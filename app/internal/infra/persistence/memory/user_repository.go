package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domuser "example.com/naturemart/app/internal/domain/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domuser.User
	byEmail map[string]string
	now     func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*domuser.User),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	email := domuser.NormalizeEmail(u.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return nil, domuser.ErrEmailAlreadyUsed
	}

	stored := *u
	stored.ID = uuid.NewString()
	stored.Email = email
	stored.CreatedAt = r.now().UTC()

	r.byID[stored.ID] = &stored
	r.byEmail[email] = stored.ID

	cloned := stored
	return &cloned, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domuser.ErrUserNotFound
	}
	cloned := *u
	return &cloned, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[domuser.NormalizeEmail(email)]
	if !ok {
		return nil, domuser.ErrUserNotFound
	}
	cloned := *r.byID[id]
	return &cloned, nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domnewsletter "example.com/naturemart/app/internal/domain/newsletter"
)

type NewsletterRepository struct {
	mu      sync.Mutex
	byEmail map[string]*domnewsletter.Subscriber
	now     func() time.Time
}

func NewNewsletterRepository() *NewsletterRepository {
	return &NewsletterRepository{
		byEmail: make(map[string]*domnewsletter.Subscriber),
		now:     time.Now,
	}
}

func (r *NewsletterRepository) Create(ctx context.Context, s *domnewsletter.Subscriber) (*domnewsletter.Subscriber, error) {
	email := domnewsletter.NormalizeEmail(s.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return nil, domnewsletter.ErrAlreadySubscribed
	}
	stored := &domnewsletter.Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: r.now().UTC(),
	}
	r.byEmail[email] = stored

	cloned := *stored
	return &cloned, nil
}

func (r *NewsletterRepository) Delete(ctx context.Context, email string) error {
	email = domnewsletter.NormalizeEmail(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; !ok {
		return domnewsletter.ErrSubscriberNotFound
	}
	delete(r.byEmail, email)
	return nil
}

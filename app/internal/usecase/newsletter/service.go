package newsletter

import (
	"context"
	"errors"
	"fmt"

	dom "example.com/naturemart/app/internal/domain/newsletter"
)

const welcomeSubject = "Welcome to Ceylon Nature Mart"

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Service struct {
	repo   dom.Repository
	mailer Mailer
	promo  string
}

// NewService sends promo as the body of the welcome mail.
func NewService(repo dom.Repository, mailer Mailer, promo string) *Service {
	return &Service{repo: repo, mailer: mailer, promo: promo}
}

// Subscribe adds email to the list and sends the welcome mail. The address
// is reserved before sending so concurrent requests for it mail only once,
// and it is released again when the send fails so the caller can retry.
func (s *Service) Subscribe(ctx context.Context, email string) (*dom.Subscriber, error) {
	email = dom.NormalizeEmail(email)
	if email == "" {
		return nil, dom.ErrInvalidEmail
	}

	sub, err := s.repo.Create(ctx, &dom.Subscriber{Email: email})
	if err != nil {
		return nil, err
	}

	if err := s.mailer.Send(ctx, email, welcomeSubject, s.welcomeBody()); err != nil {
		if delErr := s.repo.Delete(ctx, email); delErr != nil {
			return nil, errors.Join(fmt.Errorf("send welcome mail: %w", err), delErr)
		}
		return nil, fmt.Errorf("send welcome mail: %w", err)
	}
	return sub, nil
}

func (s *Service) welcomeBody() string {
	body := "Thank you for subscribing to our newsletter for exclusive updates and offers."
	if s.promo != "" {
		body += "\r\n\r\n" + s.promo + "!"
	}
	return body
}

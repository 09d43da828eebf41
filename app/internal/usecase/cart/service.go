package cart

import (
	"context"

	domcart "example.com/naturemart/app/internal/domain/cart"
	"example.com/naturemart/app/internal/domain/currency"
	domproduct "example.com/naturemart/app/internal/domain/product"
)

type SessionRepository interface {
	domcart.Repository
}

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domproduct.Product, error)
}

// Service runs cart operations against the Store of a shopping session.
// Apart from an unknown session, product or currency, operations are
// permissive: removing or updating a product that is not in the cart
// succeeds without changing anything.
type Service struct {
	sessions    SessionRepository
	productRepo ProductRepository
}

func NewService(sessions SessionRepository, productRepo ProductRepository) *Service {
	return &Service{
		sessions:    sessions,
		productRepo: productRepo,
	}
}

func (s *Service) CreateSession(ctx context.Context) (string, error) {
	id, _, err := s.sessions.Create(ctx)
	return id, err
}

func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *Service) AddToCart(ctx context.Context, sessionID, productID string, quantity int) error {
	if quantity <= 0 || quantity > domcart.MaxLineQuantity {
		return domcart.ErrInvalidQuantity
	}
	store, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	store.AddToCart(*p, quantity)
	return nil
}

func (s *Service) RemoveFromCart(ctx context.Context, sessionID, productID string) error {
	store, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	store.RemoveFromCart(productID)
	return nil
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	store, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	store.UpdateQuantity(productID, quantity)
	return nil
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	store, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	store.ClearCart()
	return nil
}

func (s *Service) SetCurrency(ctx context.Context, sessionID, code string) error {
	c, err := currency.Parse(code)
	if err != nil {
		return err
	}
	store, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	store.SetSelectedCurrency(c)
	return nil
}

func (s *Service) GetCart(ctx context.Context, sessionID string) (*domcart.View, error) {
	store, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	v := store.View()
	return &v, nil
}

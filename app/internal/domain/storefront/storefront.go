package storefront

import (
	"context"
	"errors"
)

var ErrInvalidRating = errors.New("review rating must be between 1 and 5")

// Review is a customer testimonial shown on the home page.
type Review struct {
	ID     string
	Author string
	Text   string
	Rating int
}

func (r Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

type HeroSlide struct {
	ID       string
	ImageURL string
	Title    string
	Subtitle string
}

type Contact struct {
	Email    string
	Phone    string
	Address  string
	WhatsApp string
}

type Content struct {
	Contact         Contact
	SocialLinks     map[string]string
	ShippingPolicy  string
	ShippingNote    string
	NewsletterPromo string
	HeroSlides      []HeroSlide
	Reviews         []Review
}

type Repository interface {
	Content(ctx context.Context) (*Content, error)
}

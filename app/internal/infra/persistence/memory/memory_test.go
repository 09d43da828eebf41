package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domcart "example.com/naturemart/app/internal/domain/cart"
	domcategory "example.com/naturemart/app/internal/domain/category"
	"example.com/naturemart/app/internal/domain/currency"
	domnewsletter "example.com/naturemart/app/internal/domain/newsletter"
	domproduct "example.com/naturemart/app/internal/domain/product"
	domstorefront "example.com/naturemart/app/internal/domain/storefront"
	domuser "example.com/naturemart/app/internal/domain/user"
)

func newSeededProducts(t *testing.T) *ProductRepository {
	t.Helper()
	repo, err := NewProductRepository(SeedProducts())
	require.NoError(t, err)
	return repo
}

func TestProductRepository_SeedIsValid(t *testing.T) {
	repo := newSeededProducts(t)

	all, err := repo.List(context.Background(), domproduct.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 12)
	require.Equal(t, "prod1", all[0].ID)
	require.Equal(t, "prod12", all[11].ID)
}

func TestProductRepository_RejectsBadCatalog(t *testing.T) {
	tests := []struct {
		name     string
		products []*domproduct.Product
	}{
		{name: "Empty id", products: []*domproduct.Product{{Name: "x", Category: domcategory.NameTea}}},
		{name: "Duplicate id", products: []*domproduct.Product{{ID: "a", Category: domcategory.NameTea}, {ID: "a", Category: domcategory.NameTea}}},
		{name: "Negative price", products: []*domproduct.Product{{ID: "a", PriceUSD: -1, Category: domcategory.NameTea}}},
		{name: "Unknown category", products: []*domproduct.Product{{ID: "a", Category: "Coffee"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProductRepository(tt.products)
			require.Error(t, err)
		})
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := newSeededProducts(t)

	p, err := repo.GetByID(context.Background(), "prod4")
	require.NoError(t, err)
	require.Equal(t, "True Cinnamon Sticks", p.Name)

	p.Name = "changed"
	again, err := repo.GetByID(context.Background(), "prod4")
	require.NoError(t, err)
	require.Equal(t, "True Cinnamon Sticks", again.Name)

	_, err = repo.GetByID(context.Background(), "prod99")
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestProductRepository_ListFiltered(t *testing.T) {
	repo := newSeededProducts(t)
	spices := domcategory.NameSpices

	products, err := repo.List(context.Background(), domproduct.ListFilter{
		Category: &spices,
		Criteria: domproduct.FilterCriteria{MinRating: 5},
	})

	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "prod4", products[0].ID)
	require.Equal(t, "prod6", products[1].ID)
}

func TestProductRepository_Featured(t *testing.T) {
	repo := newSeededProducts(t)

	all, err := repo.Featured(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, all, 5)

	limited, err := repo.Featured(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	require.Equal(t, "prod1", limited[0].ID)
	require.Equal(t, "prod3", limited[1].ID)
}

func TestCategoryRepository(t *testing.T) {
	repo, err := NewCategoryRepository(SeedCategories())
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, "tea", all[0].Slug)

	c, err := repo.GetBySlug(context.Background(), "natural-care")
	require.NoError(t, err)
	require.Equal(t, domcategory.NameNaturalCare, c.Name)

	_, err = repo.GetBySlug(context.Background(), "coffee")
	require.ErrorIs(t, err, domcategory.ErrCategoryNotFound)

	_, err = NewCategoryRepository([]*domcategory.Category{{Name: "Coffee"}})
	require.ErrorIs(t, err, domcategory.ErrInvalidCategory)
}

func TestCartRepository_Lifecycle(t *testing.T) {
	repo := NewCartRepository(currency.DefaultRates(), 0, 0)
	ctx := context.Background()

	id, store, err := repo.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Len(t, repo.sessions, 1)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Same(t, store, got)

	require.NoError(t, repo.Delete(ctx, id))
	require.Empty(t, repo.sessions)

	_, err = repo.Get(ctx, id)
	require.ErrorIs(t, err, domcart.ErrSessionNotFound)
	require.ErrorIs(t, repo.Delete(ctx, id), domcart.ErrSessionNotFound)
}

func TestCartRepository_ConcurrentCreate(t *testing.T) {
	repo := NewCartRepository(currency.DefaultRates(), 0, 0)

	var wg sync.WaitGroup
	ids := make([]string, 20)
	errs := make([]error, 20)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], _, errs[i] = repo.Create(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for _, id := range ids {
		seen[id] = true
	}
	require.Len(t, seen, 20)
	require.Len(t, repo.sessions, 20)
}

func TestCartRepository_SessionLimit(t *testing.T) {
	repo := NewCartRepository(currency.DefaultRates(), 2, time.Hour)
	ctx := context.Background()

	first, _, err := repo.Create(ctx)
	require.NoError(t, err)
	_, _, err = repo.Create(ctx)
	require.NoError(t, err)

	_, _, err = repo.Create(ctx)
	require.ErrorIs(t, err, domcart.ErrSessionLimit)
	require.Len(t, repo.sessions, 2)

	require.NoError(t, repo.Delete(ctx, first))
	_, _, err = repo.Create(ctx)
	require.NoError(t, err)
}

func TestCartRepository_IdleSessionsExpire(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewCartRepository(currency.DefaultRates(), 1, time.Hour)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	id, _, err := repo.Create(ctx)
	require.NoError(t, err)

	now = now.Add(45 * time.Minute)
	_, err = repo.Get(ctx, id)
	require.NoError(t, err, "use refreshes the session")

	now = now.Add(45 * time.Minute)
	_, err = repo.Get(ctx, id)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	replacement, _, err := repo.Create(ctx)
	require.NoError(t, err, "an expired session frees its slot")
	require.Len(t, repo.sessions, 1)

	_, err = repo.Get(ctx, id)
	require.ErrorIs(t, err, domcart.ErrSessionNotFound)

	now = now.Add(2 * time.Hour)
	_, err = repo.Get(ctx, replacement)
	require.ErrorIs(t, err, domcart.ErrSessionNotFound)
	require.Empty(t, repo.sessions)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u, err := repo.Create(ctx, &domuser.User{Name: "Alice", Email: " Alice@Example.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "alice@example.com", u.Email)
	require.False(t, u.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", byID.Name)

	_, err = repo.Create(ctx, &domuser.User{Name: "Other", Email: "alice@example.com"})
	require.ErrorIs(t, err, domuser.ErrEmailAlreadyUsed)

	_, err = repo.GetByEmail(ctx, "bob@example.com")
	require.ErrorIs(t, err, domuser.ErrUserNotFound)
	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, domuser.ErrUserNotFound)
}

func TestStorefrontRepository(t *testing.T) {
	repo, err := NewStorefrontRepository(SeedContent())
	require.NoError(t, err)

	content, err := repo.Content(context.Background())
	require.NoError(t, err)
	require.Len(t, content.Reviews, 4)
	require.Len(t, content.HeroSlides, 3)
	require.Equal(t, "Get 10% Off Your First Order", content.NewsletterPromo)

	_, err = NewStorefrontRepository(&domstorefront.Content{Reviews: []domstorefront.Review{{ID: "bad", Rating: 9}}})
	require.ErrorIs(t, err, domstorefront.ErrInvalidRating)
}

func TestNewsletterRepository(t *testing.T) {
	repo := NewNewsletterRepository()
	ctx := context.Background()

	s, err := repo.Create(ctx, &domnewsletter.Subscriber{Email: "Reader@Example.com "})
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	require.Equal(t, "reader@example.com", s.Email)
	require.False(t, s.CreatedAt.IsZero())

	_, err = repo.Create(ctx, &domnewsletter.Subscriber{Email: "READER@example.com"})
	require.ErrorIs(t, err, domnewsletter.ErrAlreadySubscribed)
	require.Len(t, repo.byEmail, 1)

	require.NoError(t, repo.Delete(ctx, "Reader@example.com"))
	require.Empty(t, repo.byEmail)
	require.ErrorIs(t, repo.Delete(ctx, "reader@example.com"), domnewsletter.ErrSubscriberNotFound)

	_, err = repo.Create(ctx, &domnewsletter.Subscriber{Email: "reader@example.com"})
	require.NoError(t, err)
}

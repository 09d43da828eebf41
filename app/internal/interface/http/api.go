package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domcart "example.com/naturemart/app/internal/domain/cart"
	domcategory "example.com/naturemart/app/internal/domain/category"
	domnewsletter "example.com/naturemart/app/internal/domain/newsletter"
	"example.com/naturemart/app/internal/domain/currency"
	domproduct "example.com/naturemart/app/internal/domain/product"
	domstorefront "example.com/naturemart/app/internal/domain/storefront"
	domuser "example.com/naturemart/app/internal/domain/user"
	"example.com/naturemart/app/internal/infra/security"
	authuc "example.com/naturemart/app/internal/usecase/auth"
	cartuc "example.com/naturemart/app/internal/usecase/cart"
	categoryuc "example.com/naturemart/app/internal/usecase/category"
	newsletteruc "example.com/naturemart/app/internal/usecase/newsletter"
	productuc "example.com/naturemart/app/internal/usecase/product"
	storefrontuc "example.com/naturemart/app/internal/usecase/storefront"
)

type API struct {
	authSvc       *authuc.Service
	categorySvc   *categoryuc.Service
	productSvc    *productuc.Service
	cartSvc       *cartuc.Service
	storefrontSvc *storefrontuc.Service
	newsletterSvc *newsletteruc.Service
	tokenSvc      authuc.TokenService
	rates         currency.Rates
	logger        *zap.Logger
	validator     *validator.Validate
}

type Dependencies struct {
	AuthService       *authuc.Service
	CategoryService   *categoryuc.Service
	ProductService    *productuc.Service
	CartService       *cartuc.Service
	StorefrontService *storefrontuc.Service
	NewsletterService *newsletteruc.Service
	TokenService      authuc.TokenService
	Rates             currency.Rates
	Logger            *zap.Logger
}

func NewAPI(deps Dependencies) *API {
	validate := validator.New()
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rates := deps.Rates
	if rates == nil {
		rates = currency.DefaultRates()
	}
	return &API{
		authSvc:       deps.AuthService,
		categorySvc:   deps.CategoryService,
		productSvc:    deps.ProductService,
		cartSvc:       deps.CartService,
		storefrontSvc: deps.StorefrontService,
		newsletterSvc: deps.NewsletterService,
		tokenSvc:      deps.TokenService,
		rates:         rates,
		logger:        logger,
		validator:     validate,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", a.handleSignUp)
		r.Post("/auth/login", a.handleLogin)

		r.Get("/storefront", a.handleStorefront)
		r.Get("/currencies", a.handleListCurrencies)
		r.Post("/newsletter", a.handleSubscribe)

		r.Get("/categories", a.handleListCategories)
		r.Get("/categories/{slug}", a.handleGetCategory)

		r.Get("/products", a.handleListProducts)
		r.Get("/products/featured", a.handleFeaturedProducts)
		r.Get("/products/{id}", a.handleGetProduct)

		r.Route("/cart", func(cr chi.Router) {
			cr.Post("/", a.handleCreateCart)

			cr.Group(func(sr chi.Router) {
				sr.Use(a.cartSessionMiddleware)
				sr.Get("/", a.handleGetCart)
				sr.Delete("/", a.handleClearCart)
				sr.Delete("/session", a.handleDeleteCart)
				sr.Put("/currency", a.handleSetCurrency)
				sr.Post("/items", a.handleAddCartItem)
				sr.Patch("/items/{productID}", a.handleUpdateCartItem)
				sr.Delete("/items/{productID}", a.handleRemoveCartItem)
			})
		})

		r.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Get("/me", a.handleMe)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// respondValidationError lists the failing fields when the body decoded but
// did not pass validation.
func respondValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Details: details})
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}
}

func mapCategory(c *domcategory.Category) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"slug":        c.Slug,
		"image_url":   c.ImageURL,
		"description": c.Description,
	}
}

// mapProduct renders p with its price converted into cur for display.
// price_usd is always the stored price.
func (a *API) mapProduct(p *domproduct.Product, cur currency.Currency) map[string]any {
	price := a.rates.Convert(p.PriceUSD, cur)
	return map[string]any{
		"id":            p.ID,
		"name":          p.Name,
		"description":   p.Description,
		"category":      p.Category,
		"image_url":     p.ImageURL,
		"price_usd":     p.PriceUSD,
		"price":         price,
		"display_price": currency.Format(price),
		"currency":      cur,
		"rating":        p.Rating,
		"reviews":       p.Reviews,
		"featured":      p.Featured,
	}
}

func mapCart(v *domcart.View) map[string]any {
	lines := make([]map[string]any, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, map[string]any{
			"product_id":     l.ProductID,
			"name":           l.Name,
			"image_url":      l.ImageURL,
			"quantity":       l.Quantity,
			"unit_price_usd": l.UnitPriceUSD,
			"unit_price":     l.UnitPrice,
			"line_total":     l.LineTotal,
			"display_price":  currency.Format(l.UnitPrice),
		})
	}
	return map[string]any{
		"currency":      v.Currency,
		"items":         lines,
		"item_count":    v.ItemCount,
		"total":         v.Total,
		"display_total": currency.Format(v.Total),
	}
}

func mapStorefront(c *domstorefront.Content) map[string]any {
	reviews := make([]map[string]any, 0, len(c.Reviews))
	for _, r := range c.Reviews {
		reviews = append(reviews, map[string]any{
			"id":     r.ID,
			"author": r.Author,
			"text":   r.Text,
			"rating": r.Rating,
		})
	}
	slides := make([]map[string]any, 0, len(c.HeroSlides))
	for _, s := range c.HeroSlides {
		slides = append(slides, map[string]any{
			"id":        s.ID,
			"image_url": s.ImageURL,
			"title":     s.Title,
			"subtitle":  s.Subtitle,
		})
	}
	return map[string]any{
		"contact": map[string]any{
			"email":    c.Contact.Email,
			"phone":    c.Contact.Phone,
			"address":  c.Contact.Address,
			"whatsapp": c.Contact.WhatsApp,
		},
		"social_links":     c.SocialLinks,
		"shipping_policy":  c.ShippingPolicy,
		"shipping_note":    c.ShippingNote,
		"newsletter_promo": c.NewsletterPromo,
		"hero_slides":      slides,
		"reviews":          reviews,
	}
}

func (a *API) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domcategory.ErrCategoryNotFound),
		errors.Is(err, domcart.ErrSessionNotFound),
		errors.Is(err, domuser.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domcart.ErrInvalidQuantity),
		errors.Is(err, currency.ErrUnknownCurrency),
		errors.Is(err, domcategory.ErrInvalidCategory),
		errors.Is(err, domnewsletter.ErrInvalidEmail),
		errors.Is(err, domuser.ErrPasswordMismatch),
		errors.Is(err, domuser.ErrInvalidCredential),
		errors.Is(err, security.ErrPasswordTooLong):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domuser.ErrEmailAlreadyUsed),
		errors.Is(err, domnewsletter.ErrAlreadySubscribed):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domcart.ErrSessionLimit):
		respondError(w, http.StatusServiceUnavailable, err)
	case errors.Is(err, domuser.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err)
	default:
		a.logger.Error("unhandled error",
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
		respondError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

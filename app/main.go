package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"example.com/naturemart/app/internal/infra/config"
	"example.com/naturemart/app/internal/infra/logger"
	"example.com/naturemart/app/internal/infra/mail"
	"example.com/naturemart/app/internal/infra/persistence/memory"
	"example.com/naturemart/app/internal/infra/security"
	httpapi "example.com/naturemart/app/internal/interface/http"
	authuc "example.com/naturemart/app/internal/usecase/auth"
	cartuc "example.com/naturemart/app/internal/usecase/cart"
	categoryuc "example.com/naturemart/app/internal/usecase/category"
	newsletteruc "example.com/naturemart/app/internal/usecase/newsletter"
	productuc "example.com/naturemart/app/internal/usecase/product"
	storefrontuc "example.com/naturemart/app/internal/usecase/storefront"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	if cfg.UsesDefaultJWTSecret() {
		log.Warn("jwt_secret is the development default; set NATUREMART_JWT_SECRET before exposing this server")
	}

	rates, err := cfg.ExchangeRates()
	if err != nil {
		return err
	}

	productRepo, err := memory.NewProductRepository(memory.SeedProducts())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	categoryRepo, err := memory.NewCategoryRepository(memory.SeedCategories())
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	content := memory.SeedContent()
	storefrontRepo, err := memory.NewStorefrontRepository(content)
	if err != nil {
		return fmt.Errorf("load storefront content: %w", err)
	}

	var mailer newsletteruc.Mailer = mail.NewLogMailer(log)
	if cfg.SMTPAddr != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTPAddr, cfg.MailFrom)
	}

	tokenSvc := security.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:       authuc.NewService(memory.NewUserRepository(), security.NewBcryptService(cfg.BcryptCost), tokenSvc),
		CategoryService:   categoryuc.NewService(categoryRepo),
		ProductService:    productuc.NewService(productRepo, cfg.FeaturedLimit),
		CartService:       cartuc.NewService(memory.NewCartRepository(rates, cfg.CartMaxSessions, cfg.CartSessionTTL), productRepo),
		StorefrontService: storefrontuc.NewService(storefrontRepo),
		NewsletterService: newsletteruc.NewService(memory.NewNewsletterRepository(), mailer, content.NewsletterPromo),
		TokenService:      tokenSvc,
		Rates:             rates,
		Logger:            log,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// CartSessionHeader carries the id returned by POST /api/v1/cart.
const CartSessionHeader = "X-Cart-Session"

type ctxKey int

const (
	ctxUserKey ctxKey = iota
	ctxCartSessionKey
)

var (
	errUnauthenticated = errors.New("unauthenticated")
	errMissingSession  = errors.New("missing " + CartSessionHeader + " header")
)

type authUser struct {
	UserID string
	Email  string
	Name   string
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := a.tokenSvc.ParseToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserKey, &authUser{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getAuthUser(ctx context.Context) *authUser {
	val := ctx.Value(ctxUserKey)
	if user, ok := val.(*authUser); ok {
		return user
	}
	return nil
}

func (a *API) cartSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(CartSessionHeader))
		if sessionID == "" {
			respondError(w, http.StatusBadRequest, errMissingSession)
			return
		}
		ctx := context.WithValue(r.Context(), ctxCartSessionKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getCartSession(ctx context.Context) string {
	id, _ := ctx.Value(ctxCartSessionKey).(string)
	return id
}

// requestLogger writes one structured line per request.
func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			a.logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("request_id", chimw.GetReqID(r.Context())),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domuser "example.com/naturemart/app/internal/domain/user"
	authuc "example.com/naturemart/app/internal/usecase/auth"
)

const tokenIssuer = "naturemart"

var errInvalidToken = errors.New("invalid token")

type JWTService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewJWTService(secret string, expiration time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

type jwtClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (s *JWTService) GenerateToken(u *domuser.User) (string, error) {
	now := s.now()
	claims := jwtClaims{
		Email: u.Email,
		Name:  u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(token string) (*authuc.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, errInvalidToken
	}

	return &authuc.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
